// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package models

// GeographicAddress is the TMF673 GeographicAddress resource.
type GeographicAddress struct {
	ID                   string                 `json:"id"`
	Href                 string                 `json:"href,omitempty"`
	Name                 string                 `json:"name,omitempty"`
	StreetNr             string                 `json:"streetNr,omitempty"`
	StreetNrSuffix       string                 `json:"streetNrSuffix,omitempty"`
	StreetName           string                 `json:"streetName,omitempty"`
	StreetType           string                 `json:"streetType,omitempty"`
	StreetSuffix         string                 `json:"streetSuffix,omitempty"`
	PostCode             string                 `json:"postcode,omitempty"`
	Locality             string                 `json:"locality,omitempty"`
	City                 string                 `json:"city,omitempty"`
	StateOrProvince      string                 `json:"stateOrProvince,omitempty"`
	Country              string                 `json:"country,omitempty"`
	GeographicLocation   map[string]interface{} `json:"geographicLocation,omitempty"`
	GeographicSubAddress []GeographicSubAddress `json:"geographicSubAddress,omitempty"`
	Type                 string                 `json:"@type"`
	BaseType             string                 `json:"@baseType,omitempty"`
	SchemaLocation       string                 `json:"@schemaLocation,omitempty"`
}

// GeographicSubAddress identifies a unit within an address (apartment,
// suite, floor). Sub-addresses carry their own href, assigned the same
// two-phase way as their parent.
type GeographicSubAddress struct {
	ID                  string `json:"id,omitempty"`
	Href                string `json:"href,omitempty"`
	Name                string `json:"name,omitempty"`
	SubAddressType      string `json:"subAddressType,omitempty"`
	SubUnitType         string `json:"subUnitType,omitempty"`
	SubUnitNumber       string `json:"subUnitNumber,omitempty"`
	LevelType           string `json:"levelType,omitempty"`
	LevelNumber         string `json:"levelNumber,omitempty"`
	BuildingName        string `json:"buildingName,omitempty"`
	PrivateStreetName   string `json:"privateStreetName,omitempty"`
	PrivateStreetNumber string `json:"privateStreetNumber,omitempty"`
	Type                string `json:"@type,omitempty"`
}

// GeographicAddressCreate is the request body for POST /geographicAddress.
type GeographicAddressCreate struct {
	Name                 string                 `json:"name,omitempty"`
	StreetNr             string                 `json:"streetNr,omitempty"`
	StreetNrSuffix       string                 `json:"streetNrSuffix,omitempty"`
	StreetName           string                 `json:"streetName,omitempty"`
	StreetType           string                 `json:"streetType,omitempty"`
	StreetSuffix         string                 `json:"streetSuffix,omitempty"`
	PostCode             string                 `json:"postcode,omitempty"`
	Locality             string                 `json:"locality,omitempty"`
	City                 string                 `json:"city" validate:"required"`
	StateOrProvince      string                 `json:"stateOrProvince,omitempty"`
	Country              string                 `json:"country" validate:"required"`
	GeographicLocation   map[string]interface{} `json:"geographicLocation,omitempty"`
	GeographicSubAddress []GeographicSubAddress `json:"geographicSubAddress,omitempty"`
	Type                 string                 `json:"@type,omitempty"`
	BaseType             string                 `json:"@baseType,omitempty"`
	SchemaLocation       string                 `json:"@schemaLocation,omitempty"`
}

// GeographicAddressUpdate is the request body for PATCH /geographicAddress/{id}.
type GeographicAddressUpdate struct {
	Name                 *string                 `json:"name,omitempty"`
	StreetNr             *string                 `json:"streetNr,omitempty"`
	StreetNrSuffix       *string                 `json:"streetNrSuffix,omitempty"`
	StreetName           *string                 `json:"streetName,omitempty"`
	StreetType           *string                 `json:"streetType,omitempty"`
	StreetSuffix         *string                 `json:"streetSuffix,omitempty"`
	PostCode             *string                 `json:"postcode,omitempty"`
	Locality             *string                 `json:"locality,omitempty"`
	City                 *string                 `json:"city,omitempty"`
	StateOrProvince      *string                 `json:"stateOrProvince,omitempty"`
	Country              *string                 `json:"country,omitempty"`
	GeographicLocation   *map[string]interface{} `json:"geographicLocation,omitempty"`
	GeographicSubAddress *[]GeographicSubAddress `json:"geographicSubAddress,omitempty"`
}
