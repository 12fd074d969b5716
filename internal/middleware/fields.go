// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FieldsFilter post-processes successful JSON responses, keeping only the
// caller-requested top-level keys from the fields query parameter.
//
// The projection is shallow: nested objects and arrays pass through
// unfiltered as values of a kept key. Requesting a field an object does not
// have is not an error; the key is simply absent from the output. Responses
// without a fields parameter, non-JSON responses, and non-2xx responses pass
// through unchanged.
func FieldsFilter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := parseFields(r.URL.Query().Get("fields"))
		if len(fields) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		rec := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		body := rec.buf.Bytes()
		if rec.status >= 200 && rec.status < 300 && isJSONResponse(rec.Header()) {
			if filtered, ok := projectJSON(body, fields); ok {
				body = filtered
			}
		}

		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(rec.status)
		if len(body) > 0 {
			w.Write(body) //nolint:errcheck // response write failures are uninteresting here
		}
	})
}

// parseFields splits a comma-separated field list, trimming blanks.
func parseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	var fields []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

func isJSONResponse(h http.Header) bool {
	ct := h.Get("Content-Type")
	return ct == "" || strings.Contains(ct, "application/json")
}

// projectJSON rebuilds a JSON object or array of objects keeping only the
// requested top-level keys. Returns false when the body is not JSON or is
// not an object/array shape, in which case the caller passes it through.
func projectJSON(body []byte, fields []string) ([]byte, bool) {
	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false
	}

	keep := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		keep[f] = struct{}{}
	}

	switch v := parsed.(type) {
	case map[string]interface{}:
		out, err := json.Marshal(projectObject(v, keep))
		if err != nil {
			return nil, false
		}
		return out, true
	case []interface{}:
		projected := make([]interface{}, len(v))
		for i, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				projected[i] = projectObject(obj, keep)
			} else {
				projected[i] = item
			}
		}
		out, err := json.Marshal(projected)
		if err != nil {
			return nil, false
		}
		return out, true
	default:
		return nil, false
	}
}

func projectObject(obj map[string]interface{}, keep map[string]struct{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keep))
	for key, val := range obj {
		if _, ok := keep[key]; ok {
			out[key] = val
		}
	}
	return out
}

// bufferedResponseWriter captures the response so the filter can rewrite it.
type bufferedResponseWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	w.status = code
}

func (w *bufferedResponseWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}
