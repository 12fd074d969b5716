// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/catalogus/internal/models"
)

const addressDomain = "geographicAddressManagement"

// CreateGeographicAddress inserts an address with its sub-addresses and
// returns the persisted resource. Sub-addresses get their own ids and hrefs
// nested under the parent address path.
func (db *DB) CreateGeographicAddress(ctx context.Context, req *models.GeographicAddressCreate) (*models.GeographicAddress, error) {
	done := trackQuery("create", "geographic_addresses")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "GeographicAddress"
	}

	location, err := marshalOrNil(mapOrNil(req.GeographicLocation))
	if err != nil {
		done(err)
		return nil, err
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO geographic_addresses (
			id, name, street_nr, street_nr_suffix, street_name, street_type,
			street_suffix, postcode, locality, city, state_or_province,
			country, geographic_location, type, base_type, schema_location,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, nullable(req.Name), nullable(req.StreetNr),
		nullable(req.StreetNrSuffix), nullable(req.StreetName),
		nullable(req.StreetType), nullable(req.StreetSuffix),
		nullable(req.PostCode), nullable(req.Locality), req.City,
		nullable(req.StateOrProvince), req.Country, location, entityType,
		nullable(req.BaseType), nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert geographic address: %w", err)
	}

	href := db.href(addressDomain, "geographicAddress", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE geographic_addresses SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set geographic address href: %w", err)
	}

	if err := db.insertSubAddresses(ctx, id, req.GeographicSubAddress); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetGeographicAddress(ctx, id)
}

// GetGeographicAddress returns the address with the given id, or nil if
// absent.
func (db *DB) GetGeographicAddress(ctx context.Context, id string) (*models.GeographicAddress, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, street_nr, street_nr_suffix, street_name,
		       street_type, street_suffix, postcode, locality, city,
		       state_or_province, country, geographic_location, type,
		       base_type, schema_location
		FROM geographic_addresses WHERE id = ?`, id)

	address, err := scanGeographicAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geographic address: %w", err)
	}

	if err := db.loadSubAddresses(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// ListGeographicAddresses returns one page of addresses plus the unfiltered
// total count.
func (db *DB) ListGeographicAddresses(ctx context.Context, offset, limit int) ([]models.GeographicAddress, int, error) {
	done := trackQuery("list", "geographic_addresses")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM geographic_addresses`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count geographic addresses: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, street_nr, street_nr_suffix, street_name,
		       street_type, street_suffix, postcode, locality, city,
		       state_or_province, country, geographic_location, type,
		       base_type, schema_location
		FROM geographic_addresses LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list geographic addresses: %w", err)
	}
	defer rows.Close()

	addresses := []models.GeographicAddress{}
	for rows.Next() {
		address, err := scanGeographicAddress(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan geographic address: %w", err)
		}
		addresses = append(addresses, *address)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate geographic addresses: %w", err)
	}

	for i := range addresses {
		if err := db.loadSubAddresses(ctx, &addresses[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return addresses, total, nil
}

// UpdateGeographicAddress applies a partial update. Returns nil if the
// address does not exist.
func (db *DB) UpdateGeographicAddress(ctx context.Context, id string, patch *models.GeographicAddressUpdate) (*models.GeographicAddress, error) {
	existing, err := db.GetGeographicAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "geographic_addresses")

	now := time.Now().UTC()
	set := []string{"updated_at = ?"}
	args := []interface{}{now}

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, nullable(*patch.Name))
	}
	if patch.StreetNr != nil {
		set = append(set, "street_nr = ?")
		args = append(args, nullable(*patch.StreetNr))
	}
	if patch.StreetNrSuffix != nil {
		set = append(set, "street_nr_suffix = ?")
		args = append(args, nullable(*patch.StreetNrSuffix))
	}
	if patch.StreetName != nil {
		set = append(set, "street_name = ?")
		args = append(args, nullable(*patch.StreetName))
	}
	if patch.StreetType != nil {
		set = append(set, "street_type = ?")
		args = append(args, nullable(*patch.StreetType))
	}
	if patch.StreetSuffix != nil {
		set = append(set, "street_suffix = ?")
		args = append(args, nullable(*patch.StreetSuffix))
	}
	if patch.PostCode != nil {
		set = append(set, "postcode = ?")
		args = append(args, nullable(*patch.PostCode))
	}
	if patch.Locality != nil {
		set = append(set, "locality = ?")
		args = append(args, nullable(*patch.Locality))
	}
	if patch.City != nil {
		set = append(set, "city = ?")
		args = append(args, *patch.City)
	}
	if patch.StateOrProvince != nil {
		set = append(set, "state_or_province = ?")
		args = append(args, nullable(*patch.StateOrProvince))
	}
	if patch.Country != nil {
		set = append(set, "country = ?")
		args = append(args, *patch.Country)
	}
	if patch.GeographicLocation != nil {
		location, err := marshalOrNil(mapOrNil(*patch.GeographicLocation))
		if err != nil {
			done(err)
			return nil, err
		}
		set = append(set, "geographic_location = ?")
		args = append(args, location)
	}

	args = append(args, id)
	query := "UPDATE geographic_addresses SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update geographic address: %w", err)
	}

	if patch.GeographicSubAddress != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM geographic_sub_addresses WHERE address_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear sub-addresses: %w", err)
		}
		if err := db.insertSubAddresses(ctx, id, *patch.GeographicSubAddress); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetGeographicAddress(ctx, id)
}

// DeleteGeographicAddress removes the address and its sub-addresses.
// Returns false without error when the id does not exist.
func (db *DB) DeleteGeographicAddress(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "geographic_addresses")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM geographic_addresses WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check geographic address existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM geographic_sub_addresses WHERE address_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete sub-addresses: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM geographic_addresses WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete geographic address: %w", err)
	}
	if err := checkRowsAffected(result, "delete geographic address"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

// mapOrNil converts an empty map to nil so the JSON column stores NULL.
func mapOrNil(m map[string]interface{}) interface{} {
	if len(m) == 0 {
		return nil
	}
	return m
}

func scanGeographicAddress(row interface{ Scan(...interface{}) error }) (*models.GeographicAddress, error) {
	var (
		address                  models.GeographicAddress
		href, name               sql.NullString
		streetNr, streetNrSuffix sql.NullString
		streetName, streetType   sql.NullString
		streetSuffix, postCode   sql.NullString
		locality                 sql.NullString
		stateOrProvince          sql.NullString
		location                 sql.NullString
		baseType, schemaLocation sql.NullString
	)

	err := row.Scan(&address.ID, &href, &name, &streetNr, &streetNrSuffix,
		&streetName, &streetType, &streetSuffix, &postCode, &locality,
		&address.City, &stateOrProvince, &address.Country, &location,
		&address.Type, &baseType, &schemaLocation)
	if err != nil {
		return nil, err
	}

	address.Href = stringValue(href)
	address.Name = stringValue(name)
	address.StreetNr = stringValue(streetNr)
	address.StreetNrSuffix = stringValue(streetNrSuffix)
	address.StreetName = stringValue(streetName)
	address.StreetType = stringValue(streetType)
	address.StreetSuffix = stringValue(streetSuffix)
	address.PostCode = stringValue(postCode)
	address.Locality = stringValue(locality)
	address.StateOrProvince = stringValue(stateOrProvince)
	address.BaseType = stringValue(baseType)
	address.SchemaLocation = stringValue(schemaLocation)
	if err := unmarshalColumn(location, &address.GeographicLocation); err != nil {
		return nil, err
	}
	return &address, nil
}

func (db *DB) loadSubAddresses(ctx context.Context, address *models.GeographicAddress) error {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, sub_address_type, sub_unit_type,
		       sub_unit_number, level_type, level_number, building_name,
		       private_street_name, private_street_number, type
		FROM geographic_sub_addresses WHERE address_id = ?`, address.ID)
	if err != nil {
		return fmt.Errorf("failed to load sub-addresses: %w", err)
	}
	defer rows.Close()

	var subAddresses []models.GeographicSubAddress
	for rows.Next() {
		var (
			sub                         models.GeographicSubAddress
			href, name                  sql.NullString
			subAddressType, subUnitType sql.NullString
			subUnitNumber, levelType    sql.NullString
			levelNumber, buildingName   sql.NullString
			privateStreetName           sql.NullString
			privateStreetNumber         sql.NullString
			subType                     sql.NullString
		)
		err := rows.Scan(&sub.ID, &href, &name, &subAddressType,
			&subUnitType, &subUnitNumber, &levelType, &levelNumber,
			&buildingName, &privateStreetName, &privateStreetNumber, &subType)
		if err != nil {
			return fmt.Errorf("failed to scan sub-address: %w", err)
		}
		sub.Href = stringValue(href)
		sub.Name = stringValue(name)
		sub.SubAddressType = stringValue(subAddressType)
		sub.SubUnitType = stringValue(subUnitType)
		sub.SubUnitNumber = stringValue(subUnitNumber)
		sub.LevelType = stringValue(levelType)
		sub.LevelNumber = stringValue(levelNumber)
		sub.BuildingName = stringValue(buildingName)
		sub.PrivateStreetName = stringValue(privateStreetName)
		sub.PrivateStreetNumber = stringValue(privateStreetNumber)
		sub.Type = stringValue(subType)
		subAddresses = append(subAddresses, sub)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate sub-addresses: %w", err)
	}

	address.GeographicSubAddress = subAddresses
	return nil
}

func (db *DB) insertSubAddresses(ctx context.Context, addressID string, subs []models.GeographicSubAddress) error {
	for _, sub := range subs {
		subID := uuid.New().String()
		subType := sub.Type
		if subType == "" {
			subType = "GeographicSubAddress"
		}
		href := db.href(addressDomain, "geographicAddress", addressID) + "/geographicSubAddress/" + subID
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO geographic_sub_addresses (
				id, address_id, href, name, sub_address_type, sub_unit_type,
				sub_unit_number, level_type, level_number, building_name,
				private_street_name, private_street_number, type
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			subID, addressID, href, nullable(sub.Name),
			nullable(sub.SubAddressType), nullable(sub.SubUnitType),
			nullable(sub.SubUnitNumber), nullable(sub.LevelType),
			nullable(sub.LevelNumber), nullable(sub.BuildingName),
			nullable(sub.PrivateStreetName), nullable(sub.PrivateStreetNumber),
			subType)
		if err != nil {
			return fmt.Errorf("failed to insert sub-address: %w", err)
		}
	}
	return nil
}
