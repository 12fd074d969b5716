// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package events

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogus/internal/metrics"
	"github.com/tomtom215/catalogus/internal/models"
)

// SubscriptionStore lists the hub listeners registered for a domain.
type SubscriptionStore interface {
	ListSubscriptions(ctx context.Context, domain string) ([]models.Subscription, error)
}

// Dispatcher consumes published events and POSTs each one to every callback
// registered for the event's domain. Deliveries for one event run
// concurrently under a fixed limit; a failed delivery is logged and dropped,
// never retried, and never blocks the other callbacks.
type Dispatcher struct {
	subscriber    message.Subscriber
	store         SubscriptionStore
	client        *http.Client
	maxConcurrent int
	logger        zerolog.Logger

	ready     chan struct{}
	readyOnce sync.Once
}

// NewDispatcher wires a Watermill subscriber to the subscription store.
// deliveryTimeout bounds each callback POST; maxConcurrent bounds the
// parallel deliveries per event.
func NewDispatcher(subscriber message.Subscriber, store SubscriptionStore, deliveryTimeout time.Duration, maxConcurrent int, logger zerolog.Logger) *Dispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Dispatcher{
		subscriber:    subscriber,
		store:         store,
		client:        &http.Client{Timeout: deliveryTimeout},
		maxConcurrent: maxConcurrent,
		logger:        logger.With().Str("component", "event_dispatcher").Logger(),
		ready:         make(chan struct{}),
	}
}

// Ready is closed once Run has subscribed to the event topic. The in-memory
// pub/sub drops messages published before a subscriber exists, so anything
// that publishes right after startup must wait on this channel first.
func (d *Dispatcher) Ready() <-chan struct{} {
	return d.ready
}

// Run consumes events until the context is canceled. It returns the error
// from the initial subscribe; once consuming, it only stops with ctx.Err().
func (d *Dispatcher) Run(ctx context.Context) error {
	messages, err := d.subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", Topic, err)
	}
	d.readyOnce.Do(func() { close(d.ready) })

	d.logger.Info().Str("topic", Topic).Msg("Event dispatcher started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			d.dispatch(ctx, msg)
			msg.Ack()
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, msg *message.Message) {
	domain := msg.Metadata.Get(MetadataDomain)
	eventType := msg.Metadata.Get(MetadataEventType)

	subscriptions, err := d.store.ListSubscriptions(ctx, domain)
	if err != nil {
		d.logger.Error().Err(err).
			Str("domain", domain).
			Str("event_type", eventType).
			Msg("Failed to list subscriptions for event")
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	sem := make(chan struct{}, d.maxConcurrent)
	var wg sync.WaitGroup
	for _, sub := range subscriptions {
		wg.Add(1)
		sem <- struct{}{}
		go func(sub models.Subscription) {
			defer wg.Done()
			defer func() { <-sem }()
			d.deliver(ctx, sub, eventType, msg.Payload)
		}(sub)
	}
	wg.Wait()
}

// deliver POSTs one event to one callback and records the outcome.
func (d *Dispatcher) deliver(ctx context.Context, sub models.Subscription, eventType string, payload []byte) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.Callback, bytes.NewReader(payload))
	if err != nil {
		metrics.RecordHubDelivery(false, time.Since(start))
		d.logger.Error().Err(err).
			Str("callback", sub.Callback).
			Str("subscription_id", sub.ID).
			Msg("Failed to build delivery request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.RecordHubDelivery(false, time.Since(start))
		d.logger.Warn().Err(err).
			Str("callback", sub.Callback).
			Str("subscription_id", sub.ID).
			Str("event_type", eventType).
			Msg("Event delivery failed")
		return
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	metrics.RecordHubDelivery(success, time.Since(start))

	if success {
		d.logger.Debug().
			Str("callback", sub.Callback).
			Str("subscription_id", sub.ID).
			Str("event_type", eventType).
			Int("status", resp.StatusCode).
			Msg("Event delivered")
	} else {
		d.logger.Warn().
			Str("callback", sub.Callback).
			Str("subscription_id", sub.ID).
			Str("event_type", eventType).
			Int("status", resp.StatusCode).
			Msg("Event delivery rejected by subscriber")
	}
}
