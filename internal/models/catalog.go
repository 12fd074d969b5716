// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package models

import "time"

// Catalog is the TMF620 Catalog resource.
type Catalog struct {
	ID              string         `json:"id"`
	Href            string         `json:"href,omitempty"`
	Name            string         `json:"name,omitempty"`
	Description     string         `json:"description,omitempty"`
	CatalogType     string         `json:"catalogType,omitempty"`
	Version         string         `json:"version,omitempty"`
	LifecycleStatus string         `json:"lifecycleStatus,omitempty"`
	LastUpdate      *time.Time     `json:"lastUpdate,omitempty"`
	ValidFor        *TimePeriod    `json:"validFor,omitempty"`
	Category        []CategoryRef  `json:"category,omitempty"`
	RelatedParty    []RelatedParty `json:"relatedParty,omitempty"`
	Type            string         `json:"@type"`
	BaseType        string         `json:"@baseType,omitempty"`
	SchemaLocation  string         `json:"@schemaLocation,omitempty"`
}

// CatalogCreate is the request body for POST /catalog.
type CatalogCreate struct {
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description,omitempty"`
	CatalogType     string         `json:"catalogType,omitempty"`
	Version         string         `json:"version,omitempty"`
	LifecycleStatus string         `json:"lifecycleStatus,omitempty"`
	ValidFor        *TimePeriod    `json:"validFor,omitempty"`
	Category        []CategoryRef  `json:"category,omitempty"`
	RelatedParty    []RelatedParty `json:"relatedParty,omitempty"`
	Type            string         `json:"@type,omitempty"`
	BaseType        string         `json:"@baseType,omitempty"`
	SchemaLocation  string         `json:"@schemaLocation,omitempty"`
}

// CatalogUpdate is the request body for PATCH /catalog/{id}.
type CatalogUpdate struct {
	Name            *string         `json:"name,omitempty"`
	Description     *string         `json:"description,omitempty"`
	CatalogType     *string         `json:"catalogType,omitempty"`
	Version         *string         `json:"version,omitempty"`
	LifecycleStatus *string         `json:"lifecycleStatus,omitempty"`
	ValidFor        *TimePeriod     `json:"validFor,omitempty"`
	Category        *[]CategoryRef  `json:"category,omitempty"`
	RelatedParty    *[]RelatedParty `json:"relatedParty,omitempty"`
}

// Category is the TMF620 Category resource. Categories nest through
// parentId and the subCategory reference list.
type Category struct {
	ID              string        `json:"id"`
	Href            string        `json:"href,omitempty"`
	Name            string        `json:"name,omitempty"`
	Description     string        `json:"description,omitempty"`
	Version         string        `json:"version,omitempty"`
	LifecycleStatus string        `json:"lifecycleStatus,omitempty"`
	LastUpdate      *time.Time    `json:"lastUpdate,omitempty"`
	IsRoot          *bool         `json:"isRoot,omitempty"`
	ParentID        string        `json:"parentId,omitempty"`
	ValidFor        *TimePeriod   `json:"validFor,omitempty"`
	SubCategory     []CategoryRef `json:"subCategory,omitempty"`
	Type            string        `json:"@type"`
	BaseType        string        `json:"@baseType,omitempty"`
	SchemaLocation  string        `json:"@schemaLocation,omitempty"`
}

// CategoryCreate is the request body for POST /category.
type CategoryCreate struct {
	Name            string        `json:"name" validate:"required"`
	Description     string        `json:"description,omitempty"`
	Version         string        `json:"version,omitempty"`
	LifecycleStatus string        `json:"lifecycleStatus,omitempty"`
	IsRoot          *bool         `json:"isRoot,omitempty"`
	ParentID        string        `json:"parentId,omitempty"`
	ValidFor        *TimePeriod   `json:"validFor,omitempty"`
	SubCategory     []CategoryRef `json:"subCategory,omitempty"`
	Type            string        `json:"@type,omitempty"`
	BaseType        string        `json:"@baseType,omitempty"`
	SchemaLocation  string        `json:"@schemaLocation,omitempty"`
}

// CategoryUpdate is the request body for PATCH /category/{id}.
type CategoryUpdate struct {
	Name            *string        `json:"name,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Version         *string        `json:"version,omitempty"`
	LifecycleStatus *string        `json:"lifecycleStatus,omitempty"`
	IsRoot          *bool          `json:"isRoot,omitempty"`
	ParentID        *string        `json:"parentId,omitempty"`
	ValidFor        *TimePeriod    `json:"validFor,omitempty"`
	SubCategory     *[]CategoryRef `json:"subCategory,omitempty"`
}

// ProductOffering is the TMF620 ProductOffering resource.
type ProductOffering struct {
	ID              string        `json:"id"`
	Href            string        `json:"href,omitempty"`
	Name            string        `json:"name,omitempty"`
	Description     string        `json:"description,omitempty"`
	Version         string        `json:"version,omitempty"`
	IsBundle        *bool         `json:"isBundle,omitempty"`
	IsSellable      *bool         `json:"isSellable,omitempty"`
	StatusReason    string        `json:"statusReason,omitempty"`
	LifecycleStatus string        `json:"lifecycleStatus,omitempty"`
	LastUpdate      *time.Time    `json:"lastUpdate,omitempty"`
	ValidFor        *TimePeriod   `json:"validFor,omitempty"`
	Category        []CategoryRef `json:"category,omitempty"`
	Type            string        `json:"@type"`
	BaseType        string        `json:"@baseType,omitempty"`
	SchemaLocation  string        `json:"@schemaLocation,omitempty"`
}

// ProductOfferingCreate is the request body for POST /productOffering.
type ProductOfferingCreate struct {
	Name            string        `json:"name" validate:"required"`
	Description     string        `json:"description,omitempty"`
	Version         string        `json:"version,omitempty"`
	IsBundle        *bool         `json:"isBundle,omitempty"`
	IsSellable      *bool         `json:"isSellable,omitempty"`
	StatusReason    string        `json:"statusReason,omitempty"`
	LifecycleStatus string        `json:"lifecycleStatus,omitempty"`
	ValidFor        *TimePeriod   `json:"validFor,omitempty"`
	Category        []CategoryRef `json:"category,omitempty"`
	Type            string        `json:"@type,omitempty"`
	BaseType        string        `json:"@baseType,omitempty"`
	SchemaLocation  string        `json:"@schemaLocation,omitempty"`
}

// ProductOfferingUpdate is the request body for PATCH /productOffering/{id}.
type ProductOfferingUpdate struct {
	Name            *string        `json:"name,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Version         *string        `json:"version,omitempty"`
	IsBundle        *bool          `json:"isBundle,omitempty"`
	IsSellable      *bool          `json:"isSellable,omitempty"`
	StatusReason    *string        `json:"statusReason,omitempty"`
	LifecycleStatus *string        `json:"lifecycleStatus,omitempty"`
	ValidFor        *TimePeriod    `json:"validFor,omitempty"`
	Category        *[]CategoryRef `json:"category,omitempty"`
}

// CharacteristicValue is one allowed value of a specification characteristic.
type CharacteristicValue struct {
	ValueType string      `json:"valueType,omitempty"`
	Value     interface{} `json:"value,omitempty"`
	IsDefault *bool       `json:"isDefault,omitempty"`
	ValidFor  *TimePeriod `json:"validFor,omitempty"`
}

// ProductSpecCharacteristic describes one configurable characteristic of a
// product specification together with its value set.
type ProductSpecCharacteristic struct {
	Name                           string                `json:"name"`
	Description                    string                `json:"description,omitempty"`
	ValueType                      string                `json:"valueType,omitempty"`
	Configurable                   *bool                 `json:"configurable,omitempty"`
	ProductSpecCharacteristicValue []CharacteristicValue `json:"productSpecCharacteristicValue,omitempty"`
}

// ProductSpecification is the TMF620 ProductSpecification resource.
type ProductSpecification struct {
	ID                        string                      `json:"id"`
	Href                      string                      `json:"href,omitempty"`
	Name                      string                      `json:"name,omitempty"`
	Description               string                      `json:"description,omitempty"`
	Brand                     string                      `json:"brand,omitempty"`
	Version                   string                      `json:"version,omitempty"`
	IsBundle                  *bool                       `json:"isBundle,omitempty"`
	LifecycleStatus           string                      `json:"lifecycleStatus,omitempty"`
	LastUpdate                *time.Time                  `json:"lastUpdate,omitempty"`
	ValidFor                  *TimePeriod                 `json:"validFor,omitempty"`
	ProductSpecCharacteristic []ProductSpecCharacteristic `json:"productSpecCharacteristic,omitempty"`
	Type                      string                      `json:"@type"`
	BaseType                  string                      `json:"@baseType,omitempty"`
	SchemaLocation            string                      `json:"@schemaLocation,omitempty"`
}

// ProductSpecificationCreate is the request body for POST /productSpecification.
type ProductSpecificationCreate struct {
	Name                      string                      `json:"name" validate:"required"`
	Description               string                      `json:"description,omitempty"`
	Brand                     string                      `json:"brand,omitempty"`
	Version                   string                      `json:"version,omitempty"`
	IsBundle                  *bool                       `json:"isBundle,omitempty"`
	LifecycleStatus           string                      `json:"lifecycleStatus,omitempty"`
	ValidFor                  *TimePeriod                 `json:"validFor,omitempty"`
	ProductSpecCharacteristic []ProductSpecCharacteristic `json:"productSpecCharacteristic,omitempty"`
	Type                      string                      `json:"@type,omitempty"`
	BaseType                  string                      `json:"@baseType,omitempty"`
	SchemaLocation            string                      `json:"@schemaLocation,omitempty"`
}

// ProductSpecificationUpdate is the request body for PATCH /productSpecification/{id}.
type ProductSpecificationUpdate struct {
	Name                      *string                      `json:"name,omitempty"`
	Description               *string                      `json:"description,omitempty"`
	Brand                     *string                      `json:"brand,omitempty"`
	Version                   *string                      `json:"version,omitempty"`
	IsBundle                  *bool                        `json:"isBundle,omitempty"`
	LifecycleStatus           *string                      `json:"lifecycleStatus,omitempty"`
	ValidFor                  *TimePeriod                  `json:"validFor,omitempty"`
	ProductSpecCharacteristic *[]ProductSpecCharacteristic `json:"productSpecCharacteristic,omitempty"`
}
