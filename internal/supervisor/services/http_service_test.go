// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

// mockServer simulates an http.Server whose ListenAndServe blocks until
// Shutdown is called.
type mockServer struct {
	listenErr     error
	shutdownErr   error
	shutdownCalls atomic.Int32
	closed        chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{closed: make(chan struct{})}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.closed
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(_ context.Context) error {
	m.shutdownCalls.Add(1)
	close(m.closed)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newMockServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled after graceful shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if got := server.shutdownCalls.Load(); got != 1 {
		t.Errorf("expected exactly one Shutdown call, got %d", got)
	}
}

func TestHTTPServerServiceListenFailure(t *testing.T) {
	t.Parallel()

	server := newMockServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("expected wrapped listen error, got %v", err)
	}
}

func TestHTTPServerServiceShutdownFailure(t *testing.T) {
	t.Parallel()

	server := newMockServer()
	server.shutdownErr = errors.New("connections still draining")
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx)
	if err == nil || !errors.Is(err, server.shutdownErr) {
		t.Errorf("expected wrapped shutdown error, got %v", err)
	}
}

func TestHTTPServerServiceString(t *testing.T) {
	t.Parallel()

	if got := NewHTTPServerService(newMockServer(), 0).String(); got != "http-server" {
		t.Errorf("unexpected service name %q", got)
	}
}

type blockingRunner struct {
	started chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context) error {
	close(r.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestDispatcherServiceRunsUntilCanceled(t *testing.T) {
	t.Parallel()

	runner := &blockingRunner{started: make(chan struct{})}
	svc := NewDispatcherService(runner)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-runner.started:
	case <-time.After(time.Second):
		t.Fatal("runner did not start")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
