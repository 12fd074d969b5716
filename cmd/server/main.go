// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package main is the entry point for the Catalogus server.
//
// Catalogus exposes four TM Forum Open APIs over a shared DuckDB store:
//
//   - Product Catalog Management (TMF620): catalog, category,
//     productOffering, productSpecification
//   - Customer Management (TMF629): customer
//   - Party Management (TMF632): individual, organization
//   - Geographic Address Management (TMF673): geographicAddress
//
// Each API root also carries a hub endpoint for webhook subscriptions;
// create, attribute-change, and delete events are fanned out to the
// registered listeners of the owning domain.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables over config file over defaults (Koanf v2)
//  2. Database: DuckDB with the TMF resource schema
//  3. Events: in-process pub/sub channel plus the hub dispatcher
//  4. HTTP server: Chi router with the four TMF API roots
//  5. Supervisor tree: suture keeps the dispatcher and server running
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the shutdown
// timeout, stops the dispatcher, and closes the database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/catalogus/internal/api"
	"github.com/tomtom215/catalogus/internal/config"
	"github.com/tomtom215/catalogus/internal/database"
	"github.com/tomtom215/catalogus/internal/events"
	"github.com/tomtom215/catalogus/internal/logging"
	"github.com/tomtom215/catalogus/internal/supervisor"
	"github.com/tomtom215/catalogus/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("address", cfg.Server.Addr()).
		Str("db_path", cfg.Database.Path).
		Str("base_url", cfg.API.BaseURL).
		Msg("Starting Catalogus")

	db, err := database.New(&cfg.Database, cfg.API.BaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// In-process pub/sub carries resource events from the handlers to the
	// hub dispatcher.
	pubsub := events.NewPubSub(logging.Logger())
	publisher := events.NewPublisher(pubsub, logging.Logger())
	dispatcher := events.NewDispatcher(pubsub, db, cfg.Hub.DeliveryTimeout, cfg.Hub.MaxConcurrent, logging.Logger())

	handler := api.NewHandler(db, cfg, publisher)
	chiMiddleware := api.NewChiMiddleware(&cfg.Security)
	router := api.NewRouter(handler, chiMiddleware, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// The zerolog-to-slog bridge keeps suture's events in the same stream.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddEventService(services.NewDispatcherService(dispatcher))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
