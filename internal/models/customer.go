// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package models

// Customer is the TMF629 Customer resource. The engaged party reference is
// denormalized onto the customer row at write time.
type Customer struct {
	ID             string           `json:"id"`
	Href           string           `json:"href,omitempty"`
	Name           string           `json:"name,omitempty"`
	Status         string           `json:"status,omitempty"`
	StatusReason   string           `json:"statusReason,omitempty"`
	EngagedParty   *RelatedParty    `json:"engagedParty,omitempty"`
	Characteristic []Characteristic `json:"characteristic,omitempty"`
	ContactMedium  []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty   []RelatedParty   `json:"relatedParty,omitempty"`
	ValidFor       *TimePeriod      `json:"validFor,omitempty"`
	Type           string           `json:"@type"`
	BaseType       string           `json:"@baseType,omitempty"`
	SchemaLocation string           `json:"@schemaLocation,omitempty"`
}

// CustomerCreate is the request body for POST /customer.
type CustomerCreate struct {
	Name           string           `json:"name" validate:"required"`
	Status         string           `json:"status,omitempty"`
	StatusReason   string           `json:"statusReason,omitempty"`
	EngagedParty   *RelatedParty    `json:"engagedParty" validate:"required"`
	Characteristic []Characteristic `json:"characteristic,omitempty"`
	ContactMedium  []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty   []RelatedParty   `json:"relatedParty,omitempty"`
	ValidFor       *TimePeriod      `json:"validFor,omitempty"`
	Type           string           `json:"@type,omitempty"`
	BaseType       string           `json:"@baseType,omitempty"`
	SchemaLocation string           `json:"@schemaLocation,omitempty"`
}

// CustomerUpdate is the request body for PATCH /customer/{id}.
type CustomerUpdate struct {
	Name           *string           `json:"name,omitempty"`
	Status         *string           `json:"status,omitempty"`
	StatusReason   *string           `json:"statusReason,omitempty"`
	EngagedParty   *RelatedParty     `json:"engagedParty,omitempty"`
	Characteristic *[]Characteristic `json:"characteristic,omitempty"`
	ContactMedium  *[]ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty   *[]RelatedParty   `json:"relatedParty,omitempty"`
	ValidFor       *TimePeriod       `json:"validFor,omitempty"`
}
