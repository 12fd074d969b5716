// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package api provides the HTTP handlers and Chi router for the four TM
// Forum domains, plus the shared error envelope and response helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/catalogus/internal/logging"
	"github.com/tomtom215/catalogus/internal/models"
)

// errorKind classifies a failure into the TMF error taxonomy. Each kind maps
// to a fixed HTTP status, TMF code, and reason string.
type errorKind int

const (
	errNotFound errorKind = iota
	errBadRequest
	errValidation
	errConflict
	errInternal
)

// apiError pairs an error kind with a human-readable detail message.
type apiError struct {
	kind    errorKind
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func notFoundError(message string) *apiError {
	return &apiError{kind: errNotFound, message: message}
}

func badRequestError(message string) *apiError {
	return &apiError{kind: errBadRequest, message: message}
}

func validationError(message string) *apiError {
	return &apiError{kind: errValidation, message: message}
}

//nolint:unused // conflict responses are reserved for optimistic-locking support
func conflictError(message string) *apiError {
	return &apiError{kind: errConflict, message: message}
}

func internalError(message string) *apiError {
	return &apiError{kind: errInternal, message: message}
}

// taxonomy maps each kind to its wire representation.
var taxonomy = map[errorKind]struct {
	httpStatus int
	code       string
	reason     string
}{
	errNotFound:   {http.StatusNotFound, "60", "Not Found"},
	errBadRequest: {http.StatusBadRequest, "20", "Bad Request"},
	errValidation: {http.StatusBadRequest, "21", "Validation Error"},
	errConflict:   {http.StatusConflict, "62", "Conflict"},
	errInternal:   {http.StatusInternalServerError, "1", "Internal Server Error"},
}

// sendError writes the standardized TMF error envelope. Internal failures
// never leak their detail message to the client.
func sendError(w http.ResponseWriter, r *http.Request, apiErr *apiError) {
	entry := taxonomy[apiErr.kind]

	message := apiErr.message
	if apiErr.kind == errInternal {
		logging.Ctx(r.Context()).Error().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(apiErr.message)
		message = "An internal error occurred"
	}

	envelope := models.TMFError{
		Code:    entry.code,
		Reason:  entry.reason,
		Message: message,
		Status:  strconv.Itoa(entry.httpStatus),
		Type:    "Error",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(entry.httpStatus)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write error response")
	}
}
