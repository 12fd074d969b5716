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

// CreateProductSpecification inserts a product specification with its
// characteristics and returns the persisted resource.
func (db *DB) CreateProductSpecification(ctx context.Context, req *models.ProductSpecificationCreate) (*models.ProductSpecification, error) {
	done := trackQuery("create", "product_specifications")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "ProductSpecification"
	}
	validFrom, validTo := validForBounds(req.ValidFor)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO product_specifications (
			id, name, description, brand, version, is_bundle,
			lifecycle_status, last_update, valid_from, valid_to, type,
			base_type, schema_location, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, nullable(req.Description), nullable(req.Brand),
		nullable(req.Version), boolOrDefault(req.IsBundle, false), nullable(req.LifecycleStatus),
		now, validFrom, validTo, entityType, nullable(req.BaseType),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert product specification: %w", err)
	}

	href := db.href(catalogDomain, "productSpecification", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE product_specifications SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set product specification href: %w", err)
	}

	if err := db.insertSpecCharacteristics(ctx, id, req.ProductSpecCharacteristic); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetProductSpecification(ctx, id)
}

// GetProductSpecification returns the specification with the given id, or
// nil if absent.
func (db *DB) GetProductSpecification(ctx context.Context, id string) (*models.ProductSpecification, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, description, brand, version, is_bundle,
		       lifecycle_status, last_update, valid_from, valid_to, type,
		       base_type, schema_location
		FROM product_specifications WHERE id = ?`, id)

	spec, err := scanProductSpecification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product specification: %w", err)
	}

	if err := db.loadSpecCharacteristics(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// ListProductSpecifications returns one page of specifications plus the
// unfiltered total count.
func (db *DB) ListProductSpecifications(ctx context.Context, offset, limit int) ([]models.ProductSpecification, int, error) {
	done := trackQuery("list", "product_specifications")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_specifications`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count product specifications: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, description, brand, version, is_bundle,
		       lifecycle_status, last_update, valid_from, valid_to, type,
		       base_type, schema_location
		FROM product_specifications LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list product specifications: %w", err)
	}
	defer rows.Close()

	specs := []models.ProductSpecification{}
	for rows.Next() {
		spec, err := scanProductSpecification(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan product specification: %w", err)
		}
		specs = append(specs, *spec)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate product specifications: %w", err)
	}

	for i := range specs {
		if err := db.loadSpecCharacteristics(ctx, &specs[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return specs, total, nil
}

// UpdateProductSpecification applies a partial update. Returns nil if the
// specification does not exist.
func (db *DB) UpdateProductSpecification(ctx context.Context, id string, patch *models.ProductSpecificationUpdate) (*models.ProductSpecification, error) {
	existing, err := db.GetProductSpecification(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "product_specifications")

	now := time.Now().UTC()
	set := []string{"updated_at = ?", "last_update = ?"}
	args := []interface{}{now, now}

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, nullable(*patch.Description))
	}
	if patch.Brand != nil {
		set = append(set, "brand = ?")
		args = append(args, nullable(*patch.Brand))
	}
	if patch.Version != nil {
		set = append(set, "version = ?")
		args = append(args, nullable(*patch.Version))
	}
	if patch.IsBundle != nil {
		set = append(set, "is_bundle = ?")
		args = append(args, *patch.IsBundle)
	}
	if patch.LifecycleStatus != nil {
		set = append(set, "lifecycle_status = ?")
		args = append(args, nullable(*patch.LifecycleStatus))
	}
	if patch.ValidFor != nil {
		validFrom, validTo := validForBounds(patch.ValidFor)
		set = append(set, "valid_from = ?", "valid_to = ?")
		args = append(args, validFrom, validTo)
	}

	args = append(args, id)
	query := "UPDATE product_specifications SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update product specification: %w", err)
	}

	if patch.ProductSpecCharacteristic != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM product_spec_characteristics WHERE specification_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear spec characteristics: %w", err)
		}
		if err := db.insertSpecCharacteristics(ctx, id, *patch.ProductSpecCharacteristic); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetProductSpecification(ctx, id)
}

// DeleteProductSpecification removes the specification and its
// characteristics. Returns false without error when the id does not exist.
func (db *DB) DeleteProductSpecification(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "product_specifications")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM product_specifications WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check product specification existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM product_spec_characteristics WHERE specification_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete spec characteristics: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM product_specifications WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete product specification: %w", err)
	}
	if err := checkRowsAffected(result, "delete product specification"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

func scanProductSpecification(row interface{ Scan(...interface{}) error }) (*models.ProductSpecification, error) {
	var (
		spec                     models.ProductSpecification
		href, description        sql.NullString
		brand, version           sql.NullString
		lifecycleStatus          sql.NullString
		baseType, schemaLocation sql.NullString
		isBundle                 sql.NullBool
		lastUpdate               sql.NullTime
		validFrom, validTo       sql.NullTime
	)

	err := row.Scan(&spec.ID, &href, &spec.Name, &description, &brand,
		&version, &isBundle, &lifecycleStatus, &lastUpdate, &validFrom,
		&validTo, &spec.Type, &baseType, &schemaLocation)
	if err != nil {
		return nil, err
	}

	spec.Href = stringValue(href)
	spec.Description = stringValue(description)
	spec.Brand = stringValue(brand)
	spec.Version = stringValue(version)
	spec.LifecycleStatus = stringValue(lifecycleStatus)
	spec.BaseType = stringValue(baseType)
	spec.SchemaLocation = stringValue(schemaLocation)
	spec.IsBundle = boolValue(isBundle)
	spec.LastUpdate = timeValue(lastUpdate)
	spec.ValidFor = buildValidFor(validFrom, validTo)
	return &spec, nil
}

// loadSpecCharacteristics reads the characteristic rows for a specification.
// Value sets round-trip through a JSON column.
func (db *DB) loadSpecCharacteristics(ctx context.Context, spec *models.ProductSpecification) error {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, description, value_type, configurable, char_values
		FROM product_spec_characteristics WHERE specification_id = ?`, spec.ID)
	if err != nil {
		return fmt.Errorf("failed to load spec characteristics: %w", err)
	}
	defer rows.Close()

	characteristics := []models.ProductSpecCharacteristic{}
	for rows.Next() {
		var (
			char                   models.ProductSpecCharacteristic
			description, valueType sql.NullString
			configurable           sql.NullBool
			charValues             sql.NullString
		)
		if err := rows.Scan(&char.Name, &description, &valueType, &configurable, &charValues); err != nil {
			return fmt.Errorf("failed to scan spec characteristic: %w", err)
		}
		char.Description = stringValue(description)
		char.ValueType = stringValue(valueType)
		char.Configurable = boolValue(configurable)
		if err := unmarshalColumn(charValues, &char.ProductSpecCharacteristicValue); err != nil {
			return err
		}
		characteristics = append(characteristics, char)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate spec characteristics: %w", err)
	}

	if len(characteristics) > 0 {
		spec.ProductSpecCharacteristic = characteristics
	}
	return nil
}

func (db *DB) insertSpecCharacteristics(ctx context.Context, specID string, chars []models.ProductSpecCharacteristic) error {
	for _, char := range chars {
		var charValues interface{}
		if len(char.ProductSpecCharacteristicValue) > 0 {
			marshaled, err := marshalOrNil(char.ProductSpecCharacteristicValue)
			if err != nil {
				return err
			}
			charValues = marshaled
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO product_spec_characteristics (id, specification_id, name, description, value_type, configurable, char_values)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), specID, char.Name, nullable(char.Description),
			nullable(char.ValueType), nullableBool(char.Configurable), charValues)
		if err != nil {
			return fmt.Errorf("failed to insert spec characteristic: %w", err)
		}
	}
	return nil
}
