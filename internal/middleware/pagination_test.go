// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func paginate(t *testing.T, query string) Pagination {
	t.Helper()

	var got Pagination
	handler := Paginate(DefaultPaginationConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetPagination(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/catalog"+query, nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestPaginateDefaults(t *testing.T) {
	p := paginate(t, "")
	if p.Offset != 0 || p.Limit != 20 {
		t.Errorf("expected defaults {0 20}, got %+v", p)
	}
}

func TestPaginateParsesValidValues(t *testing.T) {
	p := paginate(t, "?offset=40&limit=10")
	if p.Offset != 40 || p.Limit != 10 {
		t.Errorf("expected {40 10}, got %+v", p)
	}
}

func TestPaginateInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		query string
		want  Pagination
	}{
		{"?offset=abc&limit=xyz", Pagination{0, 20}},
		{"?offset=-5", Pagination{0, 20}},
		{"?limit=0", Pagination{0, 20}},
		{"?limit=-1", Pagination{0, 20}},
		{"?offset=3.5&limit=2.7", Pagination{0, 20}},
	}

	for _, tt := range tests {
		if got := paginate(t, tt.query); got != tt.want {
			t.Errorf("query %q: expected %+v, got %+v", tt.query, tt.want, got)
		}
	}
}

func TestPaginateClampsToMax(t *testing.T) {
	p := paginate(t, "?limit=5000")
	if p.Limit != 100 {
		t.Errorf("expected limit clamped to 100, got %d", p.Limit)
	}
}

func TestGetPaginationWithoutMiddleware(t *testing.T) {
	p := GetPagination(context.Background())
	if p.Offset != 0 || p.Limit != 20 {
		t.Errorf("expected defaults when middleware absent, got %+v", p)
	}
}
