// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources yields the defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that later configs override non-zero
// fields of earlier ones while zero fields are left alone.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://first/api", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://second/api"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://second/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultCopyResetDelay, cfg.App.CopyResetDelay)
}

// TestBuilder_JSONHasLowestPriority verifies that the JSON file is merged
// below env and flags.
func TestBuilder_JSONHasLowestPriority(t *testing.T) {
	p := writeJSONFile(t, `{
		"adapter": {"http_address": "http://from-json/api", "request_timeout": "7s"},
		"log": {"level": "error"}
	}`)
	t.Setenv("CONFIG", p)
	t.Setenv("ADAPTER_ADDRESS", "http://from-env/api")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-log-level", "debug"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestBuilder_MissingJSONFile verifies that a configured but absent JSON
// file fails the build.
func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/definitely/missing.json"}).
		withJSON().
		build()
	require.Error(t, err)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultCopyResetDelay, cfg.App.CopyResetDelay)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestGetServerConfig_Defaults(t *testing.T) {
	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultServerBasePath, cfg.BasePath)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.TokenDuration)
}
