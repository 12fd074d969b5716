// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogus/internal/middleware"
	"github.com/tomtom215/catalogus/internal/models"
)

// TMF673 Geographic Address Management handlers.

func (h *Handler) CreateGeographicAddress(w http.ResponseWriter, r *http.Request) {
	var req models.GeographicAddressCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	address, err := h.db.CreateGeographicAddress(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create geographic address: "+err.Error()))
		return
	}

	h.publishEvent(domainAddress, "GeographicAddressCreateEvent", "geographicAddress", address)
	sendCreated(w, r, address)
}

func (h *Handler) GetGeographicAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.db.GetGeographicAddress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get geographic address: "+err.Error()))
		return
	}
	if address == nil {
		sendError(w, r, notFoundError("geographic address not found"))
		return
	}
	sendJSON(w, r, address)
}

func (h *Handler) ListGeographicAddresses(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	addresses, total, err := h.db.ListGeographicAddresses(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list geographic addresses: "+err.Error()))
		return
	}
	sendList(w, r, addresses, total, len(addresses))
}

func (h *Handler) UpdateGeographicAddress(w http.ResponseWriter, r *http.Request) {
	var patch models.GeographicAddressUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	address, err := h.db.UpdateGeographicAddress(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update geographic address: "+err.Error()))
		return
	}
	if address == nil {
		sendError(w, r, notFoundError("geographic address not found"))
		return
	}

	h.publishEvent(domainAddress, "GeographicAddressAttributeValueChangeEvent", "geographicAddress", address)
	sendJSON(w, r, address)
}

func (h *Handler) DeleteGeographicAddress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteGeographicAddress(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete geographic address: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("geographic address not found"))
		return
	}

	h.publishEvent(domainAddress, "GeographicAddressDeleteEvent", "geographicAddress", map[string]interface{}{"id": id})
	sendNoContent(w)
}
