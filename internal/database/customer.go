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

const customerDomain = "customerManagement"

// CreateCustomer inserts a customer with its child collections and returns
// the persisted resource. The engaged party reference is denormalized onto
// the customer row.
func (db *DB) CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, error) {
	done := trackQuery("create", "customers")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "Customer"
	}
	validFrom, validTo := validForBounds(req.ValidFor)

	var engagedID, engagedHref, engagedName, engagedReferredType interface{}
	if req.EngagedParty != nil {
		engagedID = req.EngagedParty.ID
		engagedHref = nullable(req.EngagedParty.Href)
		engagedName = nullable(req.EngagedParty.Name)
		referredType := req.EngagedParty.ReferredType
		if referredType == "" {
			referredType = "Party"
		}
		engagedReferredType = referredType
	}

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO customers (
			id, name, status, status_reason, engaged_party_id,
			engaged_party_href, engaged_party_name, engaged_party_referred_type,
			valid_from, valid_to, type, base_type, schema_location,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, nullable(req.Status), nullable(req.StatusReason),
		engagedID, engagedHref, engagedName, engagedReferredType,
		validFrom, validTo, entityType, nullable(req.BaseType),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	href := db.href(customerDomain, "customer", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE customers SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set customer href: %w", err)
	}

	if err := db.insertCustomerCharacteristics(ctx, id, req.Characteristic); err != nil {
		done(err)
		return nil, err
	}
	if err := db.insertCustomerContactMediums(ctx, id, req.ContactMedium); err != nil {
		done(err)
		return nil, err
	}
	if err := db.insertCustomerRelatedParties(ctx, id, req.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetCustomer(ctx, id)
}

// GetCustomer returns the customer with the given id, or nil if absent.
func (db *DB) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, status, status_reason, engaged_party_id,
		       engaged_party_href, engaged_party_name,
		       engaged_party_referred_type, valid_from, valid_to, type,
		       base_type, schema_location
		FROM customers WHERE id = ?`, id)

	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if err := db.loadCustomerChildren(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers returns one page of customers plus the unfiltered total count.
func (db *DB) ListCustomers(ctx context.Context, offset, limit int) ([]models.Customer, int, error) {
	done := trackQuery("list", "customers")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, status, status_reason, engaged_party_id,
		       engaged_party_href, engaged_party_name,
		       engaged_party_referred_type, valid_from, valid_to, type,
		       base_type, schema_location
		FROM customers LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *customer)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate customers: %w", err)
	}

	for i := range customers {
		if err := db.loadCustomerChildren(ctx, &customers[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return customers, total, nil
}

// UpdateCustomer applies a partial update. Returns nil if the customer does
// not exist.
func (db *DB) UpdateCustomer(ctx context.Context, id string, patch *models.CustomerUpdate) (*models.Customer, error) {
	existing, err := db.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "customers")

	now := time.Now().UTC()
	set := []string{"updated_at = ?"}
	args := []interface{}{now}

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Status != nil {
		set = append(set, "status = ?")
		args = append(args, nullable(*patch.Status))
	}
	if patch.StatusReason != nil {
		set = append(set, "status_reason = ?")
		args = append(args, nullable(*patch.StatusReason))
	}
	if patch.EngagedParty != nil {
		referredType := patch.EngagedParty.ReferredType
		if referredType == "" {
			referredType = "Party"
		}
		set = append(set, "engaged_party_id = ?", "engaged_party_href = ?",
			"engaged_party_name = ?", "engaged_party_referred_type = ?")
		args = append(args, patch.EngagedParty.ID,
			nullable(patch.EngagedParty.Href),
			nullable(patch.EngagedParty.Name), referredType)
	}
	if patch.ValidFor != nil {
		validFrom, validTo := validForBounds(patch.ValidFor)
		set = append(set, "valid_from = ?", "valid_to = ?")
		args = append(args, validFrom, validTo)
	}

	args = append(args, id)
	query := "UPDATE customers SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if patch.Characteristic != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM customer_characteristics WHERE customer_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear customer characteristics: %w", err)
		}
		if err := db.insertCustomerCharacteristics(ctx, id, *patch.Characteristic); err != nil {
			done(err)
			return nil, err
		}
	}
	if patch.ContactMedium != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM customer_contact_mediums WHERE customer_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear contact mediums: %w", err)
		}
		if err := db.insertCustomerContactMediums(ctx, id, *patch.ContactMedium); err != nil {
			done(err)
			return nil, err
		}
	}
	if patch.RelatedParty != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM customer_related_parties WHERE customer_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear customer related parties: %w", err)
		}
		if err := db.insertCustomerRelatedParties(ctx, id, *patch.RelatedParty); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetCustomer(ctx, id)
}

// DeleteCustomer removes the customer and its child collections. Returns
// false without error when the id does not exist.
func (db *DB) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "customers")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM customers WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	for _, table := range []string{"customer_characteristics", "customer_contact_mediums", "customer_related_parties"} {
		if _, err := db.conn.ExecContext(ctx, "DELETE FROM "+table+" WHERE customer_id = ?", id); err != nil {
			done(err)
			return false, fmt.Errorf("failed to delete customer children: %w", err)
		}
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}
	if err := checkRowsAffected(result, "delete customer"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

func scanCustomer(row interface{ Scan(...interface{}) error }) (*models.Customer, error) {
	var (
		customer                 models.Customer
		href, status             sql.NullString
		statusReason             sql.NullString
		engagedID, engagedHref   sql.NullString
		engagedName              sql.NullString
		engagedReferredType      sql.NullString
		baseType, schemaLocation sql.NullString
		validFrom, validTo       sql.NullTime
	)

	err := row.Scan(&customer.ID, &href, &customer.Name, &status,
		&statusReason, &engagedID, &engagedHref, &engagedName,
		&engagedReferredType, &validFrom, &validTo, &customer.Type,
		&baseType, &schemaLocation)
	if err != nil {
		return nil, err
	}

	customer.Href = stringValue(href)
	customer.Status = stringValue(status)
	customer.StatusReason = stringValue(statusReason)
	customer.BaseType = stringValue(baseType)
	customer.SchemaLocation = stringValue(schemaLocation)
	customer.ValidFor = buildValidFor(validFrom, validTo)
	if engagedID.Valid {
		customer.EngagedParty = &models.RelatedParty{
			ID:           engagedID.String,
			Href:         stringValue(engagedHref),
			Name:         stringValue(engagedName),
			ReferredType: stringValue(engagedReferredType),
		}
	}
	return &customer, nil
}

func (db *DB) loadCustomerChildren(ctx context.Context, customer *models.Customer) error {
	characteristics, err := db.queryCustomerCharacteristics(ctx, customer.ID)
	if err != nil {
		return err
	}
	customer.Characteristic = characteristics

	mediums, err := db.queryCustomerContactMediums(ctx, customer.ID)
	if err != nil {
		return err
	}
	customer.ContactMedium = mediums

	parties, err := db.queryRelatedParties(ctx, `
		SELECT party_id, href, name, role, referred_type
		FROM customer_related_parties WHERE customer_id = ?`, customer.ID)
	if err != nil {
		return fmt.Errorf("failed to load customer related parties: %w", err)
	}
	customer.RelatedParty = parties
	return nil
}

func (db *DB) queryCustomerCharacteristics(ctx context.Context, customerID string) ([]models.Characteristic, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, value_type, value
		FROM customer_characteristics WHERE customer_id = ?`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer characteristics: %w", err)
	}
	defer rows.Close()

	var characteristics []models.Characteristic
	for rows.Next() {
		var (
			char      models.Characteristic
			valueType sql.NullString
			value     sql.NullString
		)
		if err := rows.Scan(&char.Name, &valueType, &value); err != nil {
			return nil, fmt.Errorf("failed to scan customer characteristic: %w", err)
		}
		char.ValueType = stringValue(valueType)
		if err := unmarshalColumn(value, &char.Value); err != nil {
			return nil, err
		}
		characteristics = append(characteristics, char)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer characteristics: %w", err)
	}
	return characteristics, nil
}

func (db *DB) queryCustomerContactMediums(ctx context.Context, customerID string) ([]models.ContactMedium, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT medium_type, preferred, characteristic, valid_from, valid_to
		FROM customer_contact_mediums WHERE customer_id = ?`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact mediums: %w", err)
	}
	defer rows.Close()

	var mediums []models.ContactMedium
	for rows.Next() {
		var (
			medium             models.ContactMedium
			preferred          sql.NullBool
			characteristic     sql.NullString
			validFrom, validTo sql.NullTime
		)
		if err := rows.Scan(&medium.MediumType, &preferred, &characteristic, &validFrom, &validTo); err != nil {
			return nil, fmt.Errorf("failed to scan contact medium: %w", err)
		}
		medium.Preferred = boolValue(preferred)
		if err := unmarshalColumn(characteristic, &medium.Characteristic); err != nil {
			return nil, err
		}
		medium.ValidFor = buildValidFor(validFrom, validTo)
		mediums = append(mediums, medium)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact mediums: %w", err)
	}
	return mediums, nil
}

func (db *DB) insertCustomerCharacteristics(ctx context.Context, customerID string, chars []models.Characteristic) error {
	for _, char := range chars {
		value, err := marshalOrNil(char.Value)
		if err != nil {
			return err
		}
		_, err = db.conn.ExecContext(ctx, `
			INSERT INTO customer_characteristics (id, customer_id, name, value_type, value)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), customerID, char.Name, nullable(char.ValueType), value)
		if err != nil {
			return fmt.Errorf("failed to insert customer characteristic: %w", err)
		}
	}
	return nil
}

func (db *DB) insertCustomerContactMediums(ctx context.Context, customerID string, mediums []models.ContactMedium) error {
	for _, medium := range mediums {
		var characteristic interface{}
		if len(medium.Characteristic) > 0 {
			marshaled, err := marshalOrNil(medium.Characteristic)
			if err != nil {
				return err
			}
			characteristic = marshaled
		}
		validFrom, validTo := validForBounds(medium.ValidFor)
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO customer_contact_mediums (id, customer_id, medium_type, preferred, characteristic, valid_from, valid_to)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), customerID, medium.MediumType,
			nullableBool(medium.Preferred), characteristic, validFrom, validTo)
		if err != nil {
			return fmt.Errorf("failed to insert contact medium: %w", err)
		}
	}
	return nil
}

func (db *DB) insertCustomerRelatedParties(ctx context.Context, customerID string, parties []models.RelatedParty) error {
	for _, party := range parties {
		referredType := party.ReferredType
		if referredType == "" {
			referredType = "Party"
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO customer_related_parties (id, customer_id, party_id, href, name, role, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), customerID, party.ID, nullable(party.Href),
			nullable(party.Name), nullable(party.Role), referredType)
		if err != nil {
			return fmt.Errorf("failed to insert customer related party: %w", err)
		}
	}
	return nil
}
