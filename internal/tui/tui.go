// Package tui is the terminal user interface of the client: a single Bubble
// Tea program routing between the login, vault list and record form screens.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/crypto"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tunes the UI. Zero values select the defaults.
type Options struct {
	BuildInfo      models.AppBuildInfo
	CopyResetDelay time.Duration
	Clock          view.Clock
	Generator      crypto.SecretGenerator
	Clipboard      Clipboard
}

type TUI struct {
	services *service.Services
	opts     Options
	logger   *logger.Logger
}

func New(services *service.Services, opts Options, logger *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts, logger: logger}
}

// Run shows the UI until the user quits or ctx is cancelled. The session is
// checked with the backend before the first screen is chosen.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
