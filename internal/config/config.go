// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package config defines the application configuration and its loading rules.
//
// Configuration is layered: struct defaults, then an optional YAML file,
// then environment variables (highest priority). See koanf.go for the
// loading pipeline and the environment variable mapping table.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Catalogus server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Hub      HubConfig      `koanf:"hub"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds settings for the TM Forum API surface.
type APIConfig struct {
	// BaseURL is the externally visible URL used to construct href values.
	// hrefs are computed once at creation time and never recomputed, so
	// changing this only affects entities created afterwards.
	BaseURL string `koanf:"base_url"`

	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	// Requests per minute per client IP. Zero disables rate limiting.
	RateLimitRead  int `koanf:"rate_limit_read"`
	RateLimitWrite int `koanf:"rate_limit_write"`
}

// HubConfig holds webhook delivery settings.
type HubConfig struct {
	// DeliveryTimeout bounds each outbound notification POST.
	DeliveryTimeout time.Duration `koanf:"delivery_timeout"`

	// MaxConcurrent bounds the number of in-flight deliveries per event.
	MaxConcurrent int `koanf:"max_concurrent"`
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must start with http:// or https://, got %q", c.API.BaseURL)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must not be smaller than api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Hub.MaxConcurrent < 1 {
		return fmt.Errorf("hub.max_concurrent must be positive, got %d", c.Hub.MaxConcurrent)
	}
	if c.Hub.DeliveryTimeout <= 0 {
		return fmt.Errorf("hub.delivery_timeout must be positive, got %s", c.Hub.DeliveryTimeout)
	}
	return nil
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8620,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			BaseURL:         "http://localhost:8620",
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Database: DatabaseConfig{
			Path:                   "/data/catalogus.duckdb",
			MaxMemory:              "1GB",
			Threads:                0, // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			CORSOrigins:    []string{"*"},
			RateLimitRead:  600,
			RateLimitWrite: 120,
		},
		Hub: HubConfig{
			DeliveryTimeout: 10 * time.Second,
			MaxConcurrent:   8,
		},
	}
}
