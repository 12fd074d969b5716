// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// paginationKey is the context key for the parsed pagination parameters.
const paginationKey contextKey = "pagination"

// Pagination holds the parsed offset/limit for a list request.
type Pagination struct {
	Offset int
	Limit  int
}

// PaginationConfig controls parsing defaults and clamping.
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaginationConfig returns the standard defaults: limit 20, clamped to 100.
func DefaultPaginationConfig() PaginationConfig {
	return PaginationConfig{DefaultLimit: 20, MaxLimit: 100}
}

// Paginate parses the offset and limit query parameters into a Pagination
// value attached to the request context. Invalid values fall back to
// defaults rather than erroring: a non-numeric or negative offset becomes 0,
// a non-numeric or non-positive limit becomes the default, and any valid
// limit is clamped to the configured maximum.
func Paginate(cfg PaginationConfig) func(http.Handler) http.Handler {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := Pagination{Offset: 0, Limit: cfg.DefaultLimit}

			if raw := r.URL.Query().Get("offset"); raw != "" {
				if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
					p.Offset = v
				}
			}
			if raw := r.URL.Query().Get("limit"); raw != "" {
				if v, err := strconv.Atoi(raw); err == nil && v > 0 {
					p.Limit = v
				}
			}
			if p.Limit > cfg.MaxLimit {
				p.Limit = cfg.MaxLimit
			}

			ctx := context.WithValue(r.Context(), paginationKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPagination extracts the parsed pagination parameters from context.
// Returns the standard defaults if the middleware did not run.
func GetPagination(ctx context.Context) Pagination {
	if p, ok := ctx.Value(paginationKey).(Pagination); ok {
		return p
	}
	return Pagination{Offset: 0, Limit: 20}
}
