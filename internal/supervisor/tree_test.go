// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

type signalService struct {
	name    string
	started chan struct{}
}

func (s *signalService) Serve(ctx context.Context) error {
	select {
	case <-s.started:
	default:
		close(s.started)
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *signalService) String() string { return s.name }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultTreeConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5.0 || cfg.FailureDecay != 30.0 {
		t.Errorf("unexpected failure parameters: %+v", cfg)
	}
	if cfg.FailureBackoff != 15*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected timing parameters: %+v", cfg)
	}
}

func TestNewTreeAppliesDefaultsForZeroValues(t *testing.T) {
	t.Parallel()

	tree := NewTree(discardLogger(), TreeConfig{})
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("expected defaulted threshold, got %v", tree.config.FailureThreshold)
	}
	if tree.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected defaulted shutdown timeout, got %v", tree.config.ShutdownTimeout)
	}
}

func TestTreeRunsServicesInBothLayers(t *testing.T) {
	t.Parallel()

	tree := NewTree(discardLogger(), DefaultTreeConfig())
	apiSvc := &signalService{name: "api-probe", started: make(chan struct{})}
	eventSvc := &signalService{name: "event-probe", started: make(chan struct{})}

	tree.AddAPIService(apiSvc)
	tree.AddEventService(eventSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, svc := range []*signalService{apiSvc, eventSvc} {
		select {
		case <-svc.started:
		case <-time.After(5 * time.Second):
			t.Fatalf("service %s never started", svc)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop after cancellation")
	}
}
