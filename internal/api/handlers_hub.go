// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogus/internal/logging"
	"github.com/tomtom215/catalogus/internal/models"
)

// Hub handlers. Every domain exposes the same POST /hub and
// DELETE /hub/{id} pair; the domain is bound when the route is mounted, so
// a subscription only ever receives its own domain's events.

// RegisterSubscription returns the POST /hub handler for one domain.
func (h *Handler) RegisterSubscription(domain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SubscriptionCreate
		if apiErr := decodeJSON(r, &req); apiErr != nil {
			sendError(w, r, apiErr)
			return
		}

		subscription, err := h.db.CreateSubscription(r.Context(), domain, &req)
		if err != nil {
			sendError(w, r, internalError("failed to create subscription: "+err.Error()))
			return
		}

		logging.Ctx(r.Context()).Info().
			Str("domain", domain).
			Str("subscription_id", subscription.ID).
			Str("callback", subscription.Callback).
			Msg("Hub subscription registered")
		sendCreated(w, r, subscription)
	}
}

// UnregisterSubscription returns the DELETE /hub/{id} handler for one domain.
func (h *Handler) UnregisterSubscription(domain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		deleted, err := h.db.DeleteSubscription(r.Context(), domain, id)
		if err != nil {
			sendError(w, r, internalError("failed to delete subscription: "+err.Error()))
			return
		}
		if !deleted {
			sendError(w, r, notFoundError("subscription not found"))
			return
		}

		logging.Ctx(r.Context()).Info().
			Str("domain", domain).
			Str("subscription_id", id).
			Msg("Hub subscription removed")
		sendNoContent(w)
	}
}
