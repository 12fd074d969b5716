// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package services

import "context"

// Runner is the Run-until-canceled contract the hub dispatcher satisfies.
type Runner interface {
	Run(ctx context.Context) error
}

// DispatcherService wraps the hub event dispatcher as a supervised service.
// The dispatcher already blocks on its context, so the wrapper only exists
// to give suture a named service to restart.
type DispatcherService struct {
	runner Runner
}

// NewDispatcherService creates the wrapper.
func NewDispatcherService(runner Runner) *DispatcherService {
	return &DispatcherService{runner: runner}
}

// Serve implements suture.Service.
func (d *DispatcherService) Serve(ctx context.Context) error {
	return d.runner.Run(ctx)
}

// String implements fmt.Stringer so suture logs name the service.
func (d *DispatcherService) String() string {
	return "hub-dispatcher"
}
