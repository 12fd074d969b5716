// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

// Package models defines the wire-format (TM Forum JSON) representations of
// every resource, the create and patch request shapes, and the shared
// sub-structures (time periods, references, characteristics).
//
// Optional scalar fields are omitted from output when absent, never emitted
// as null. Patch structs use pointer fields throughout: a nil pointer means
// "no change", a non-nil pointer overwrites. Child collections in patch
// structs are pointers to slices so that a present-but-empty list clears the
// collection while an absent key leaves it untouched.
package models

import "time"

// TimePeriod is an optional validity window. It is surfaced in wire form
// only when at least one bound is present.
type TimePeriod struct {
	StartDateTime *time.Time `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time `json:"endDateTime,omitempty"`
}

// Empty reports whether neither bound is set.
func (p *TimePeriod) Empty() bool {
	return p == nil || (p.StartDateTime == nil && p.EndDateTime == nil)
}

// CategoryRef is a reference to a category, denormalized at write time.
type CategoryRef struct {
	ID           string `json:"id"`
	Href         string `json:"href,omitempty"`
	Name         string `json:"name,omitempty"`
	Version      string `json:"version,omitempty"`
	ReferredType string `json:"@referredType,omitempty"`
}

// RelatedParty is a reference to a party playing a role on a resource.
// Display fields are copied at write time, not dynamically resolved.
type RelatedParty struct {
	ID           string `json:"id"`
	Href         string `json:"href,omitempty"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	ReferredType string `json:"@referredType,omitempty"`
}

// Characteristic is a name/value pair describing a resource.
type Characteristic struct {
	Name      string      `json:"name"`
	ValueType string      `json:"valueType,omitempty"`
	Value     interface{} `json:"value,omitempty"`
}

// ContactMedium describes a way to contact a party.
type ContactMedium struct {
	MediumType     string                 `json:"mediumType"`
	Preferred      *bool                  `json:"preferred,omitempty"`
	Characteristic map[string]interface{} `json:"characteristic,omitempty"`
	ValidFor       *TimePeriod            `json:"validFor,omitempty"`
}

// TMFError is the standardized error envelope returned on every non-2xx
// response.
type TMFError struct {
	Code           string `json:"code"`
	Reason         string `json:"reason"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status"`
	ReferenceError string `json:"referenceError,omitempty"`
	Type           string `json:"@type"`
}
