// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/catalogus/internal/config"
)

// ChiMiddleware provides Chi-compatible middleware factories built from the
// security configuration: CORS and read/write rate limiters.
type ChiMiddleware struct {
	cfg  *config.SecurityConfig
	cors func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(cfg *config.SecurityConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-Id"},
		ExposedHeaders: []string{"X-Total-Count", "X-Result-Count", "X-Request-Id"},
		MaxAge:         86400,
	})

	return &ChiMiddleware{
		cfg:  cfg,
		cors: corsHandler,
	}
}

// CORS returns the go-chi/cors handler. It must sit early in the global
// stack so OPTIONS preflights are answered on every route.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitRead limits GET traffic per client IP. A zero budget disables
// limiting.
func (m *ChiMiddleware) RateLimitRead() func(http.Handler) http.Handler {
	return rateLimit(m.cfg.RateLimitRead)
}

// RateLimitWrite limits mutating traffic per client IP, with a tighter
// budget than reads.
func (m *ChiMiddleware) RateLimitWrite() func(http.Handler) http.Handler {
	return rateLimit(m.cfg.RateLimitWrite)
}

// RateLimit applies the read budget to safe methods and the write budget to
// mutating ones, so a burst of writes cannot starve reads of their quota.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	read := m.RateLimitRead()
	write := m.RateLimitWrite()
	return func(next http.Handler) http.Handler {
		readNext := read(next)
		writeNext := write(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				readNext.ServeHTTP(w, r)
			default:
				writeNext.ServeHTTP(w, r)
			}
		})
	}
}

func rateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

// SecurityHeaders sets the standard response hardening headers.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "no-referrer")
			next.ServeHTTP(w, r)
		})
	}
}
