// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view of the reference API server.
type ServerConfig struct {
	HTTPAddress    string
	BasePath       string
	RequestTimeout time.Duration
	DatabaseDSN    string
	TokenSignKey   string `json:"-"`
	TokenIssuer    string
	TokenDuration  time.Duration
	LogLevel       string
}

// GetServerConfig builds and validates the reference API server config from
// the merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		BasePath:       cfg.Server.BasePath,
		RequestTimeout: cfg.Server.RequestTimeout,
		DatabaseDSN:    cfg.Storage.DB.DSN,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		LogLevel:       cfg.Log.Level,
	}
	return serverCfg, serverCfg.validate()
}
