// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/catalogus/internal/models"
)

// nullable converts an empty string to nil for insert parameters so optional
// scalar columns store NULL rather than "".
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime converts a nil time pointer to nil for insert parameters.
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

// nullableBool converts a nil bool pointer to nil for insert parameters.
func nullableBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}

// boolOrDefault resolves an optional boolean to a concrete column value,
// falling back to the entity's documented default when the request omits it.
func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// validForBounds splits an optional validity window into its two nullable
// column values.
func validForBounds(p *models.TimePeriod) (interface{}, interface{}) {
	if p == nil {
		return nil, nil
	}
	return nullableTime(p.StartDateTime), nullableTime(p.EndDateTime)
}

// buildValidFor reconstructs the wire validFor object from the two nullable
// columns. Returns nil unless at least one bound is present.
func buildValidFor(from, to sql.NullTime) *models.TimePeriod {
	if !from.Valid && !to.Valid {
		return nil
	}
	p := &models.TimePeriod{}
	if from.Valid {
		t := from.Time
		p.StartDateTime = &t
	}
	if to.Valid {
		t := to.Time
		p.EndDateTime = &t
	}
	return p
}

// stringValue unwraps a nullable string column, returning "" for NULL.
func stringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// timeValue unwraps a nullable timestamp column into an optional pointer.
func timeValue(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// boolValue unwraps a nullable boolean column into an optional pointer.
func boolValue(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	b := nb.Bool
	return &b
}

// marshalOrNil serializes a value to a JSON column, storing NULL for nil.
func marshalOrNil(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return string(data), nil
}

// unmarshalColumn deserializes a JSON column into out. NULL columns leave
// out untouched.
func unmarshalColumn(col sql.NullString, out interface{}) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(col.String), out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return nil
}

// checkRowsAffected verifies an exec touched at least one row.
func checkRowsAffected(result sql.Result, operation string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s: %w", operation, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s affected no rows", operation)
	}
	return nil
}
