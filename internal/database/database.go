// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package database wraps the DuckDB connection and provides the per-entity
// data access methods for every TM Forum resource. Each entity family gets
// its own file (catalog.go, customer.go, party.go, address.go, hub.go)
// holding create/get/list/update/delete in the same shape.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/catalogus/internal/config"
	"github.com/tomtom215/catalogus/internal/logging"
	"github.com/tomtom215/catalogus/internal/metrics"
)

// DB wraps the DuckDB connection and provides data access methods.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	baseURL string
}

// New creates a new database connection and initializes the schema.
// baseURL is the externally visible URL used to construct href values;
// hrefs are computed at creation time and stored, never re-derived.
func New(cfg *config.DatabaseConfig, baseURL string) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure parent directory exists for database file
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%s",
		cfg.Path, numThreads, cfg.MaxMemory, preserveOrder)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	if err := db.createTables(context.Background()); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Msg("Database initialized")
	return db, nil
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// closeQuietly closes the connection, logging any error.
func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database connection")
	}
}

// href computes the self-link for a resource instance under a domain base
// path, e.g. href("productCatalogManagement", "catalog", id).
func (db *DB) href(domain, resource, id string) string {
	return fmt.Sprintf("%s/tmf-api/%s/v4/%s/%s", db.baseURL, domain, resource, id)
}

// trackQuery returns a completion callback recording query metrics.
//
//	done := trackQuery("create", "catalogs")
//	...
//	done(err)
func trackQuery(operation, table string) func(error) {
	start := time.Now()
	return func(err error) {
		metrics.RecordDBQuery(operation, table, time.Since(start), err)
	}
}
