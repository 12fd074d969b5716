// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogus/internal/models"
)

type fakeStore struct {
	mu            sync.Mutex
	subscriptions map[string][]models.Subscription
}

func (s *fakeStore) ListSubscriptions(_ context.Context, domain string) ([]models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions[domain], nil
}

func TestNewEventEnvelope(t *testing.T) {
	event := NewEvent("CatalogCreateEvent", "catalog", map[string]interface{}{"id": "abc"})

	if event.EventID == "" {
		t.Error("expected generated eventId")
	}
	if event.EventType != "CatalogCreateEvent" {
		t.Errorf("eventType = %q", event.EventType)
	}
	if event.EventTime.IsZero() {
		t.Error("expected eventTime to be set")
	}
	payload, ok := event.Event["catalog"].(map[string]interface{})
	if !ok {
		t.Fatalf("payload not keyed under entity name: %+v", event.Event)
	}
	if payload["id"] != "abc" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestPublishSetsMetadata(t *testing.T) {
	logger := zerolog.Nop()
	pubsub := NewPubSub(logger)
	defer pubsub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubsub.Subscribe(ctx, Topic)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	publisher := NewPublisher(pubsub, logger)
	event := NewEvent("CustomerDeleteEvent", "customer", map[string]interface{}{"id": "c-1"})
	if err := publisher.Publish("customerManagement", event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case msg := <-messages:
		if msg.Metadata.Get(MetadataDomain) != "customerManagement" {
			t.Errorf("domain metadata = %q", msg.Metadata.Get(MetadataDomain))
		}
		if msg.Metadata.Get(MetadataEventType) != "CustomerDeleteEvent" {
			t.Errorf("event_type metadata = %q", msg.Metadata.Get(MetadataEventType))
		}
		var decoded models.Event
		if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
			t.Fatalf("payload not valid JSON: %v", err)
		}
		if decoded.EventID != event.EventID {
			t.Errorf("eventId = %q, want %q", decoded.EventID, event.EventID)
		}
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestDispatcherDeliversToDomainSubscribers(t *testing.T) {
	logger := zerolog.Nop()
	pubsub := NewPubSub(logger)
	defer pubsub.Close()

	received := make(chan models.Event, 1)
	listener := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			t.Errorf("bad delivery body: %v", err)
		}
		received <- event
		w.WriteHeader(http.StatusNoContent)
	}))
	defer listener.Close()

	// The other-domain listener must never be called.
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("listener for another domain received a delivery")
	}))
	defer other.Close()

	store := &fakeStore{subscriptions: map[string][]models.Subscription{
		"productCatalogManagement": {{ID: "sub-1", Callback: listener.URL}},
		"customerManagement":       {{ID: "sub-2", Callback: other.URL}},
	}}

	dispatcher := NewDispatcher(pubsub, store, 5*time.Second, 4, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dispatcher.Run(ctx)
	}()
	select {
	case <-dispatcher.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher never became ready")
	}

	publisher := NewPublisher(pubsub, logger)
	event := NewEvent("CatalogCreateEvent", "catalog", map[string]interface{}{"id": "abc"})
	if err := publisher.Publish("productCatalogManagement", event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case delivered := <-received:
		if delivered.EventType != "CatalogCreateEvent" {
			t.Errorf("delivered eventType = %q", delivered.EventType)
		}
		if delivered.EventID != event.EventID {
			t.Errorf("delivered eventId = %q, want %q", delivered.EventID, event.EventID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop on context cancellation")
	}
}

func TestDispatcherReadyAfterSubscribe(t *testing.T) {
	logger := zerolog.Nop()
	pubsub := NewPubSub(logger)
	defer pubsub.Close()

	dispatcher := NewDispatcher(pubsub, &fakeStore{}, time.Second, 1, logger)

	select {
	case <-dispatcher.Ready():
		t.Fatal("ready before Run was called")
	default:
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	select {
	case <-dispatcher.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher never became ready")
	}
}

func TestDispatcherSurvivesFailedDelivery(t *testing.T) {
	logger := zerolog.Nop()
	pubsub := NewPubSub(logger)
	defer pubsub.Close()

	received := make(chan struct{}, 1)
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
	}))
	defer healthy.Close()

	store := &fakeStore{subscriptions: map[string][]models.Subscription{
		"partyManagement": {
			// Unreachable callback; the dispatcher must log and move on.
			{ID: "sub-dead", Callback: "http://127.0.0.1:1/hook"},
			{ID: "sub-live", Callback: healthy.URL},
		},
	}}

	dispatcher := NewDispatcher(pubsub, store, 2*time.Second, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()
	select {
	case <-dispatcher.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher never became ready")
	}

	publisher := NewPublisher(pubsub, logger)
	if err := publisher.Publish("partyManagement", NewEvent("IndividualCreateEvent", "individual", map[string]interface{}{"id": "i-1"})); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case <-received:
	case <-time.After(10 * time.Second):
		t.Fatal("healthy subscriber never received a delivery")
	}
}
