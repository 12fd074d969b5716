// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/catalogus/internal/logging"
	"github.com/tomtom215/catalogus/internal/validation"
)

// maxRequestBody caps request body reads at 1 MiB.
const maxRequestBody = 1 << 20

// decodeJSON parses the request body into out. A syntactically broken body
// is a Bad Request; a body that parses but fails struct validation is a
// Validation Error.
func decodeJSON(r *http.Request, out interface{}) *apiError {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBody)
	defer func() { _, _ = io.Copy(io.Discard, body) }()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return badRequestError("invalid request body: " + err.Error())
	}

	if err := validation.ValidateStruct(out); err != nil {
		return validationError(err.Error())
	}
	return nil
}

// sendJSON writes a 200 response with the given payload.
func sendJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	writeJSON(w, r, http.StatusOK, payload)
}

// sendCreated writes a 201 response with the created resource.
func sendCreated(w http.ResponseWriter, r *http.Request, payload interface{}) {
	writeJSON(w, r, http.StatusCreated, payload)
}

// sendNoContent writes an empty 204 response.
func sendNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// sendList writes a 200 response carrying one page of resources together
// with the X-Total-Count (unfiltered total) and X-Result-Count (page size)
// headers.
func sendList(w http.ResponseWriter, r *http.Request, payload interface{}, total, count int) {
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	w.Header().Set("X-Result-Count", strconv.Itoa(count))
	writeJSON(w, r, http.StatusOK, payload)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		sendError(w, r, internalError("failed to marshal response: "+err.Error()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}
