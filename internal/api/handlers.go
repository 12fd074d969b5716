// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package api

import (
	"time"

	"github.com/tomtom215/catalogus/internal/config"
	"github.com/tomtom215/catalogus/internal/database"
	"github.com/tomtom215/catalogus/internal/events"
)

// Domain path segments, also used as hub subscription scopes and event
// metadata.
const (
	domainCatalog  = "productCatalogManagement"
	domainCustomer = "customerManagement"
	domainParty    = "partyManagement"
	domainAddress  = "geographicAddressManagement"
)

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files by domain:
//   - handlers_catalog.go: TMF620 catalog, category, offering, specification
//   - handlers_customer.go: TMF629 customer
//   - handlers_party.go: TMF632 individual and organization
//   - handlers_address.go: TMF673 geographic address
//   - handlers_hub.go: per-domain event subscriptions
//   - handlers_health.go: health endpoint
type Handler struct {
	db        *database.DB
	config    *config.Config
	publisher *events.Publisher
	startTime time.Time
}

// NewHandler creates the API handler with its dependencies.
func NewHandler(db *database.DB, cfg *config.Config, publisher *events.Publisher) *Handler {
	return &Handler{
		db:        db,
		config:    cfg,
		publisher: publisher,
		startTime: time.Now(),
	}
}

// publishEvent emits a change event when a publisher is wired. Handlers call
// this after the write has committed, so delivery problems cannot fail the
// request.
func (h *Handler) publishEvent(domain, eventType, entityKey string, payload interface{}) {
	if h.publisher == nil {
		return
	}
	h.publisher.PublishOrLog(domain, events.NewEvent(eventType, entityKey, payload))
}
