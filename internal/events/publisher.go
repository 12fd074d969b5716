// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package events implements the change-event pipeline: resource mutations
// are published to an in-process Watermill pub/sub, and a dispatcher fans
// each event out to the hub subscribers registered for its domain.
package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogus/internal/metrics"
	"github.com/tomtom215/catalogus/internal/models"
)

// Topic is the single pub/sub topic carrying all resource change events.
// The owning domain travels in message metadata.
const Topic = "resource.events"

// Metadata keys set on every published message.
const (
	MetadataDomain    = "domain"
	MetadataEventType = "event_type"
)

// NewPubSub creates the in-process channel pub/sub shared by the publisher
// and the dispatcher. Buffering decouples request handling from delivery.
func NewPubSub(logger zerolog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, NewLoggerAdapter(logger))
}

// Publisher emits TMF change events for resource mutations. Publishing is
// best-effort: a failed publish is logged and never fails the originating
// request.
type Publisher struct {
	publisher message.Publisher
	logger    zerolog.Logger
}

// NewPublisher wraps a Watermill publisher.
func NewPublisher(publisher message.Publisher, logger zerolog.Logger) *Publisher {
	return &Publisher{
		publisher: publisher,
		logger:    logger.With().Str("component", "event_publisher").Logger(),
	}
}

// NewEvent builds the TMF event envelope for a mutated resource. entityKey
// is the lowerCamel entity name the payload is keyed under, e.g. "catalog".
func NewEvent(eventType, entityKey string, payload interface{}) *models.Event {
	return &models.Event{
		EventID:   uuid.New().String(),
		EventTime: time.Now().UTC(),
		EventType: eventType,
		Event: map[string]interface{}{
			entityKey: payload,
		},
	}
}

// Publish serializes the event and emits it on the shared topic, tagged with
// the domain whose hub subscribers should receive it.
func (p *Publisher) Publish(domain string, event *models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set(MetadataDomain, domain)
	msg.Metadata.Set(MetadataEventType, event.EventType)

	if err := p.publisher.Publish(Topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	metrics.RecordEventPublished(event.EventType)
	p.logger.Debug().
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("domain", domain).
		Msg("Event published")
	return nil
}

// PublishOrLog publishes and downgrades any failure to a log line. Mutation
// handlers use this so event plumbing cannot fail an otherwise committed
// write.
func (p *Publisher) PublishOrLog(domain string, event *models.Event) {
	if err := p.Publish(domain, event); err != nil {
		p.logger.Error().Err(err).
			Str("event_type", event.EventType).
			Str("domain", domain).
			Msg("Failed to publish event")
	}
}
