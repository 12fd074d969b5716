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

// TMF632 Party Management handlers. An id belonging to the other party type
// is indistinguishable from a missing id, so misses here are plain 404s.

func (h *Handler) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	var req models.IndividualCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	individual, err := h.db.CreateIndividual(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create individual: "+err.Error()))
		return
	}

	h.publishEvent(domainParty, "IndividualCreateEvent", "individual", individual)
	sendCreated(w, r, individual)
}

func (h *Handler) GetIndividual(w http.ResponseWriter, r *http.Request) {
	individual, err := h.db.GetIndividual(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get individual: "+err.Error()))
		return
	}
	if individual == nil {
		sendError(w, r, notFoundError("individual not found"))
		return
	}
	sendJSON(w, r, individual)
}

func (h *Handler) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	individuals, total, err := h.db.ListIndividuals(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list individuals: "+err.Error()))
		return
	}
	sendList(w, r, individuals, total, len(individuals))
}

func (h *Handler) UpdateIndividual(w http.ResponseWriter, r *http.Request) {
	var patch models.IndividualUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	individual, err := h.db.UpdateIndividual(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update individual: "+err.Error()))
		return
	}
	if individual == nil {
		sendError(w, r, notFoundError("individual not found"))
		return
	}

	h.publishEvent(domainParty, "IndividualAttributeValueChangeEvent", "individual", individual)
	sendJSON(w, r, individual)
}

func (h *Handler) DeleteIndividual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteIndividual(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete individual: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("individual not found"))
		return
	}

	h.publishEvent(domainParty, "IndividualDeleteEvent", "individual", map[string]interface{}{"id": id})
	sendNoContent(w)
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req models.OrganizationCreate
	if apiErr := decodeJSON(r, &req); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	organization, err := h.db.CreateOrganization(r.Context(), &req)
	if err != nil {
		sendError(w, r, internalError("failed to create organization: "+err.Error()))
		return
	}

	h.publishEvent(domainParty, "OrganizationCreateEvent", "organization", organization)
	sendCreated(w, r, organization)
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	organization, err := h.db.GetOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, r, internalError("failed to get organization: "+err.Error()))
		return
	}
	if organization == nil {
		sendError(w, r, notFoundError("organization not found"))
		return
	}
	sendJSON(w, r, organization)
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	page := middleware.GetPagination(r.Context())
	organizations, total, err := h.db.ListOrganizations(r.Context(), page.Offset, page.Limit)
	if err != nil {
		sendError(w, r, internalError("failed to list organizations: "+err.Error()))
		return
	}
	sendList(w, r, organizations, total, len(organizations))
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	var patch models.OrganizationUpdate
	if apiErr := decodeJSON(r, &patch); apiErr != nil {
		sendError(w, r, apiErr)
		return
	}

	organization, err := h.db.UpdateOrganization(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		sendError(w, r, internalError("failed to update organization: "+err.Error()))
		return
	}
	if organization == nil {
		sendError(w, r, notFoundError("organization not found"))
		return
	}

	h.publishEvent(domainParty, "OrganizationAttributeValueChangeEvent", "organization", organization)
	sendJSON(w, r, organization)
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.db.DeleteOrganization(r.Context(), id)
	if err != nil {
		sendError(w, r, internalError("failed to delete organization: "+err.Error()))
		return
	}
	if !deleted {
		sendError(w, r, notFoundError("organization not found"))
		return
	}

	h.publishEvent(domainParty, "OrganizationDeleteEvent", "organization", map[string]interface{}{"id": id})
	sendNoContent(w)
}
