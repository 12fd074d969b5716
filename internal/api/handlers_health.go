// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"
	"time"
)

// healthResponse is the /health payload.
type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// Health reports liveness and database reachability. The endpoint returns
// 503 when the database does not answer a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
		Database: "ok",
	}

	if err := h.db.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		writeJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	sendJSON(w, r, resp)
}
