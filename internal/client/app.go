// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-client/internal/logger"
)

// App is the terminal client process.
type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp returns a client that runs ui.
func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. A shutdown signal cancels the UI context.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil && ctx.Err() != nil {
		a.logger.Info().Msg("client interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
