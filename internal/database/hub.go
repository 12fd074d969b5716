// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/catalogus/internal/metrics"
	"github.com/tomtom215/catalogus/internal/models"
)

// CreateSubscription registers a hub listener for the given domain.
func (db *DB) CreateSubscription(ctx context.Context, domain string, req *models.SubscriptionCreate) (*models.Subscription, error) {
	done := trackQuery("create", "event_subscriptions")

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO event_subscriptions (id, domain, callback, query, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, domain, req.Callback, nullable(req.Query), now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	done(nil)
	db.updateSubscriptionGauge(ctx, domain)
	return &models.Subscription{ID: id, Callback: req.Callback, Query: req.Query}, nil
}

// DeleteSubscription removes a hub listener. The domain must match the one
// the subscription was registered under. Returns false without error when no
// such subscription exists.
func (db *DB) DeleteSubscription(ctx context.Context, domain, id string) (bool, error) {
	done := trackQuery("delete", "event_subscriptions")

	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM event_subscriptions WHERE id = ? AND domain = ?`, id, domain)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to get rows affected for delete subscription: %w", err)
	}

	done(nil)
	db.updateSubscriptionGauge(ctx, domain)
	return rows > 0, nil
}

// ListSubscriptions returns every hub listener registered for the domain.
func (db *DB) ListSubscriptions(ctx context.Context, domain string) ([]models.Subscription, error) {
	done := trackQuery("list", "event_subscriptions")

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, callback, query
		FROM event_subscriptions WHERE domain = ?`, domain)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subscriptions := []models.Subscription{}
	for rows.Next() {
		var (
			sub   models.Subscription
			query sql.NullString
		)
		if err := rows.Scan(&sub.ID, &sub.Callback, &query); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		sub.Query = stringValue(query)
		subscriptions = append(subscriptions, sub)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	done(nil)
	return subscriptions, nil
}

// updateSubscriptionGauge refreshes the per-domain subscription count gauge.
// Failures only lose a metric sample, so they are swallowed.
func (db *DB) updateSubscriptionGauge(ctx context.Context, domain string) {
	var count int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_subscriptions WHERE domain = ?`, domain).Scan(&count); err != nil {
		return
	}
	metrics.HubSubscriptions.WithLabelValues(domain).Set(float64(count))
}
