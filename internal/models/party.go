// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package models

import "time"

// Party type discriminator values. Individuals and organizations share one
// physical table; every lookup must match the discriminator as well as the
// id and treat a mismatch identically to absence.
const (
	PartyTypeIndividual   = "Individual"
	PartyTypeOrganization = "Organization"
)

// Individual is the TMF632 Individual resource.
type Individual struct {
	ID                  string           `json:"id"`
	Href                string           `json:"href,omitempty"`
	GivenName           string           `json:"givenName,omitempty"`
	FamilyName          string           `json:"familyName,omitempty"`
	MiddleName          string           `json:"middleName,omitempty"`
	FullName            string           `json:"fullName,omitempty"`
	FormattedName       string           `json:"formattedName,omitempty"`
	Title               string           `json:"title,omitempty"`
	Gender              string           `json:"gender,omitempty"`
	MaritalStatus       string           `json:"maritalStatus,omitempty"`
	Nationality         string           `json:"nationality,omitempty"`
	CountryOfBirth      string           `json:"countryOfBirth,omitempty"`
	PlaceOfBirth        string           `json:"placeOfBirth,omitempty"`
	Location            string           `json:"location,omitempty"`
	BirthDate           *time.Time       `json:"birthDate,omitempty"`
	DeathDate           *time.Time       `json:"deathDate,omitempty"`
	Status              string           `json:"status,omitempty"`
	ValidFor            *TimePeriod      `json:"validFor,omitempty"`
	PartyCharacteristic []Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        []RelatedParty   `json:"relatedParty,omitempty"`
	Type                string           `json:"@type"`
	BaseType            string           `json:"@baseType,omitempty"`
	SchemaLocation      string           `json:"@schemaLocation,omitempty"`
}

// IndividualCreate is the request body for POST /individual.
type IndividualCreate struct {
	GivenName           string           `json:"givenName" validate:"required"`
	FamilyName          string           `json:"familyName" validate:"required"`
	MiddleName          string           `json:"middleName,omitempty"`
	FullName            string           `json:"fullName,omitempty"`
	FormattedName       string           `json:"formattedName,omitempty"`
	Title               string           `json:"title,omitempty"`
	Gender              string           `json:"gender,omitempty"`
	MaritalStatus       string           `json:"maritalStatus,omitempty"`
	Nationality         string           `json:"nationality,omitempty"`
	CountryOfBirth      string           `json:"countryOfBirth,omitempty"`
	PlaceOfBirth        string           `json:"placeOfBirth,omitempty"`
	Location            string           `json:"location,omitempty"`
	BirthDate           *time.Time       `json:"birthDate,omitempty"`
	DeathDate           *time.Time       `json:"deathDate,omitempty"`
	Status              string           `json:"status,omitempty"`
	ValidFor            *TimePeriod      `json:"validFor,omitempty"`
	PartyCharacteristic []Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        []RelatedParty   `json:"relatedParty,omitempty"`
	SchemaLocation      string           `json:"@schemaLocation,omitempty"`
}

// IndividualUpdate is the request body for PATCH /individual/{id}.
type IndividualUpdate struct {
	GivenName           *string           `json:"givenName,omitempty"`
	FamilyName          *string           `json:"familyName,omitempty"`
	MiddleName          *string           `json:"middleName,omitempty"`
	FullName            *string           `json:"fullName,omitempty"`
	FormattedName       *string           `json:"formattedName,omitempty"`
	Title               *string           `json:"title,omitempty"`
	Gender              *string           `json:"gender,omitempty"`
	MaritalStatus       *string           `json:"maritalStatus,omitempty"`
	Nationality         *string           `json:"nationality,omitempty"`
	CountryOfBirth      *string           `json:"countryOfBirth,omitempty"`
	PlaceOfBirth        *string           `json:"placeOfBirth,omitempty"`
	Location            *string           `json:"location,omitempty"`
	BirthDate           *time.Time        `json:"birthDate,omitempty"`
	DeathDate           *time.Time        `json:"deathDate,omitempty"`
	Status              *string           `json:"status,omitempty"`
	ValidFor            *TimePeriod       `json:"validFor,omitempty"`
	PartyCharacteristic *[]Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       *[]ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        *[]RelatedParty   `json:"relatedParty,omitempty"`
}

// Organization is the TMF632 Organization resource.
type Organization struct {
	ID                  string           `json:"id"`
	Href                string           `json:"href,omitempty"`
	Name                string           `json:"name,omitempty"`
	NameType            string           `json:"nameType,omitempty"`
	TradingName         string           `json:"tradingName,omitempty"`
	OrganizationType    string           `json:"organizationType,omitempty"`
	IsLegalEntity       *bool            `json:"isLegalEntity,omitempty"`
	IsHeadOffice        *bool            `json:"isHeadOffice,omitempty"`
	ExistsDuring        *TimePeriod      `json:"existsDuring,omitempty"`
	Status              string           `json:"status,omitempty"`
	PartyCharacteristic []Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        []RelatedParty   `json:"relatedParty,omitempty"`
	Type                string           `json:"@type"`
	BaseType            string           `json:"@baseType,omitempty"`
	SchemaLocation      string           `json:"@schemaLocation,omitempty"`
}

// OrganizationCreate is the request body for POST /organization.
type OrganizationCreate struct {
	Name                string           `json:"name" validate:"required"`
	NameType            string           `json:"nameType,omitempty"`
	TradingName         string           `json:"tradingName,omitempty"`
	OrganizationType    string           `json:"organizationType,omitempty"`
	IsLegalEntity       *bool            `json:"isLegalEntity,omitempty"`
	IsHeadOffice        *bool            `json:"isHeadOffice,omitempty"`
	ExistsDuring        *TimePeriod      `json:"existsDuring,omitempty"`
	Status              string           `json:"status,omitempty"`
	PartyCharacteristic []Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       []ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        []RelatedParty   `json:"relatedParty,omitempty"`
	SchemaLocation      string           `json:"@schemaLocation,omitempty"`
}

// OrganizationUpdate is the request body for PATCH /organization/{id}.
type OrganizationUpdate struct {
	Name                *string           `json:"name,omitempty"`
	NameType            *string           `json:"nameType,omitempty"`
	TradingName         *string           `json:"tradingName,omitempty"`
	OrganizationType    *string           `json:"organizationType,omitempty"`
	IsLegalEntity       *bool             `json:"isLegalEntity,omitempty"`
	IsHeadOffice        *bool             `json:"isHeadOffice,omitempty"`
	ExistsDuring        *TimePeriod       `json:"existsDuring,omitempty"`
	Status              *string           `json:"status,omitempty"`
	PartyCharacteristic *[]Characteristic `json:"partyCharacteristic,omitempty"`
	ContactMedium       *[]ContactMedium  `json:"contactMedium,omitempty"`
	RelatedParty        *[]RelatedParty   `json:"relatedParty,omitempty"`
}
