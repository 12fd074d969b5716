// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package models

import "time"

// Subscription is a registered hub listener: a callback URL and an optional
// opaque filter query. Subscriptions are scoped to the domain whose /hub
// endpoint registered them.
type Subscription struct {
	ID       string `json:"id"`
	Callback string `json:"callback"`
	Query    string `json:"query,omitempty"`
}

// SubscriptionCreate is the request body for POST /hub.
type SubscriptionCreate struct {
	Callback string `json:"callback" validate:"required,url"`
	Query    string `json:"query,omitempty"`
}

// Event is the TMF change-event envelope delivered to hub subscribers. The
// payload holds the post-operation resource keyed by its lowerCamel entity
// name, e.g. {"catalog": {...}}.
type Event struct {
	EventID   string                 `json:"eventId"`
	EventTime time.Time              `json:"eventTime"`
	EventType string                 `json:"eventType"`
	Event     map[string]interface{} `json:"event"`
}
