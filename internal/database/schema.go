// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"context"
	"fmt"
)

// createTables creates all tables if they do not exist. Child tables carry
// the parent id; cascade semantics are enforced by the delete methods, which
// remove children in the same call as the parent.
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		// TMF620 Product Catalog
		`CREATE TABLE IF NOT EXISTS catalogs (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR NOT NULL,
			description VARCHAR,
			catalog_type VARCHAR,
			version VARCHAR,
			lifecycle_status VARCHAR,
			last_update TIMESTAMP,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_categories (
			id VARCHAR PRIMARY KEY,
			catalog_id VARCHAR NOT NULL,
			category_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			version VARCHAR,
			referred_type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_related_parties (
			id VARCHAR PRIMARY KEY,
			catalog_id VARCHAR NOT NULL,
			party_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			role VARCHAR,
			referred_type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR NOT NULL,
			description VARCHAR,
			version VARCHAR,
			lifecycle_status VARCHAR,
			last_update TIMESTAMP,
			is_root BOOLEAN,
			parent_id VARCHAR,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS category_subcategories (
			id VARCHAR PRIMARY KEY,
			category_id VARCHAR NOT NULL,
			subcategory_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			version VARCHAR,
			referred_type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS product_offerings (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR NOT NULL,
			description VARCHAR,
			version VARCHAR,
			is_bundle BOOLEAN,
			is_sellable BOOLEAN,
			status_reason VARCHAR,
			lifecycle_status VARCHAR,
			last_update TIMESTAMP,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS product_offering_categories (
			id VARCHAR PRIMARY KEY,
			offering_id VARCHAR NOT NULL,
			category_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			version VARCHAR,
			referred_type VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS product_specifications (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR NOT NULL,
			description VARCHAR,
			brand VARCHAR,
			version VARCHAR,
			is_bundle BOOLEAN,
			lifecycle_status VARCHAR,
			last_update TIMESTAMP,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS product_spec_characteristics (
			id VARCHAR PRIMARY KEY,
			specification_id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			description VARCHAR,
			value_type VARCHAR,
			configurable BOOLEAN,
			char_values VARCHAR
		)`,
		// TMF629 Customer
		`CREATE TABLE IF NOT EXISTS customers (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR NOT NULL,
			status VARCHAR,
			status_reason VARCHAR,
			engaged_party_id VARCHAR,
			engaged_party_href VARCHAR,
			engaged_party_name VARCHAR,
			engaged_party_referred_type VARCHAR,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customer_characteristics (
			id VARCHAR PRIMARY KEY,
			customer_id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			value_type VARCHAR,
			value VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS customer_contact_mediums (
			id VARCHAR PRIMARY KEY,
			customer_id VARCHAR NOT NULL,
			medium_type VARCHAR NOT NULL,
			preferred BOOLEAN,
			characteristic VARCHAR,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS customer_related_parties (
			id VARCHAR PRIMARY KEY,
			customer_id VARCHAR NOT NULL,
			party_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			role VARCHAR,
			referred_type VARCHAR
		)`,
		// TMF632 Party: Individual and Organization share one table with a
		// party_type discriminator and disjoint optional column sets.
		`CREATE TABLE IF NOT EXISTS parties (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			party_type VARCHAR NOT NULL,
			given_name VARCHAR,
			family_name VARCHAR,
			middle_name VARCHAR,
			full_name VARCHAR,
			formatted_name VARCHAR,
			title VARCHAR,
			gender VARCHAR,
			marital_status VARCHAR,
			nationality VARCHAR,
			country_of_birth VARCHAR,
			place_of_birth VARCHAR,
			location VARCHAR,
			birth_date TIMESTAMP,
			death_date TIMESTAMP,
			name VARCHAR,
			name_type VARCHAR,
			trading_name VARCHAR,
			organization_type VARCHAR,
			is_legal_entity BOOLEAN,
			is_head_office BOOLEAN,
			exists_from TIMESTAMP,
			exists_to TIMESTAMP,
			status VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS party_characteristics (
			id VARCHAR PRIMARY KEY,
			party_id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			value_type VARCHAR,
			value VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS party_contact_mediums (
			id VARCHAR PRIMARY KEY,
			party_id VARCHAR NOT NULL,
			medium_type VARCHAR NOT NULL,
			preferred BOOLEAN,
			characteristic VARCHAR,
			valid_from TIMESTAMP,
			valid_to TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS party_related_parties (
			id VARCHAR PRIMARY KEY,
			source_party_id VARCHAR NOT NULL,
			party_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			role VARCHAR,
			referred_type VARCHAR
		)`,
		// TMF673 Geographic Address
		`CREATE TABLE IF NOT EXISTS geographic_addresses (
			id VARCHAR PRIMARY KEY,
			href VARCHAR,
			name VARCHAR,
			street_nr VARCHAR,
			street_nr_suffix VARCHAR,
			street_name VARCHAR,
			street_type VARCHAR,
			street_suffix VARCHAR,
			postcode VARCHAR,
			locality VARCHAR,
			city VARCHAR NOT NULL,
			state_or_province VARCHAR,
			country VARCHAR NOT NULL,
			geographic_location VARCHAR,
			type VARCHAR NOT NULL,
			base_type VARCHAR,
			schema_location VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS geographic_sub_addresses (
			id VARCHAR PRIMARY KEY,
			address_id VARCHAR NOT NULL,
			href VARCHAR,
			name VARCHAR,
			sub_address_type VARCHAR,
			sub_unit_type VARCHAR,
			sub_unit_number VARCHAR,
			level_type VARCHAR,
			level_number VARCHAR,
			building_name VARCHAR,
			private_street_name VARCHAR,
			private_street_number VARCHAR,
			type VARCHAR
		)`,
		// Hub subscriptions, shared across domains and keyed by domain
		`CREATE TABLE IF NOT EXISTS event_subscriptions (
			id VARCHAR PRIMARY KEY,
			domain VARCHAR NOT NULL,
			callback VARCHAR NOT NULL,
			query VARCHAR,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_catalog_categories_catalog ON catalog_categories(catalog_id)`,
		`CREATE INDEX IF NOT EXISTS idx_catalog_parties_catalog ON catalog_related_parties(catalog_id)`,
		`CREATE INDEX IF NOT EXISTS idx_category_subcategories_category ON category_subcategories(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_offering_categories_offering ON product_offering_categories(offering_id)`,
		`CREATE INDEX IF NOT EXISTS idx_spec_characteristics_spec ON product_spec_characteristics(specification_id)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_characteristics_customer ON customer_characteristics(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_mediums_customer ON customer_contact_mediums(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_parties_customer ON customer_related_parties(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_parties_party_type ON parties(party_type)`,
		`CREATE INDEX IF NOT EXISTS idx_party_characteristics_party ON party_characteristics(party_id)`,
		`CREATE INDEX IF NOT EXISTS idx_party_mediums_party ON party_contact_mediums(party_id)`,
		`CREATE INDEX IF NOT EXISTS idx_party_parties_source ON party_related_parties(source_party_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sub_addresses_address ON geographic_sub_addresses(address_id)`,
		`CREATE INDEX IF NOT EXISTS idx_subscriptions_domain ON event_subscriptions(domain)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	for _, stmt := range indexes {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
