// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8620, cfg.Server.Port)
	assert.Equal(t, 20, cfg.API.DefaultPageSize)
	assert.Equal(t, 100, cfg.API.MaxPageSize)
	assert.Equal(t, "http://localhost:8620", cfg.API.BaseURL)
}

func TestServerConfigAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8620}
	assert.Equal(t, "0.0.0.0:8620", cfg.Addr())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"base url without scheme", func(c *Config) { c.API.BaseURL = "localhost:8620" }},
		{"zero page size", func(c *Config) { c.API.DefaultPageSize = 0 }},
		{"max below default", func(c *Config) { c.API.MaxPageSize = 5 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"zero hub concurrency", func(c *Config) { c.Hub.MaxConcurrent = 0 }},
		{"zero delivery timeout", func(c *Config) { c.Hub.DeliveryTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("BASE_URL", "https://api.example.com")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Security.CORSOrigins)
}

func TestEnvTransformSkipsUnknownKeys(t *testing.T) {
	assert.Equal(t, "", envTransformFunc("PATH"))
	assert.Equal(t, "", envTransformFunc("HOME"))
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Equal(t, "api.base_url", envTransformFunc("BASE_URL"))
}
