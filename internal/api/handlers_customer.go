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

// TMF629 Customer Management handlers.

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	customer, err := h.db.CreateCustomer(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create customer: "+err.Error()))
		return
	}

	h.publishEvent(domainCustomer, "CustomerCreateEvent", "customer", customer)
	sendCreated(w, r, customer)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.db.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get customer: "+err.Error()))
		return
	}
	if customer == nil {
		sendError(w, r, notFoundError("customer not found"))
		return
	}
	sendJSON(w, r, customer)
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	customers, total, err := h.db.ListCustomers(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list customers: "+err.Error()))
		return
	}
	sendList(w, r, customers, total, len(customers))
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch models.CustomerUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	customer, err := h.db.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update customer: "+err.Error()))
		return
	}
	if customer == nil {
		sendError(w, r, notFoundError("customer not found"))
		return
	}

	h.publishEvent(domainCustomer, "CustomerAttributeValueChangeEvent", "customer", customer)
	sendJSON(w, r, customer)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteCustomer(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete customer: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("customer not found"))
		return
	}

	h.publishEvent(domainCustomer, "CustomerDeleteEvent", "customer", map[string]interface{}{"id": id})
	sendNoContent(w)
}
