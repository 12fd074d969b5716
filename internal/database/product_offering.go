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

// CreateProductOffering inserts a product offering with its category
// references and returns the persisted resource.
func (db *DB) CreateProductOffering(ctx context.Context, req *models.ProductOfferingCreate) (*models.ProductOffering, error) {
	done := trackQuery("create", "product_offerings")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "ProductOffering"
	}
	validFrom, validTo := validForBounds(req.ValidFor)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO product_offerings (
			id, name, description, version, is_bundle, is_sellable,
			status_reason, lifecycle_status, last_update, valid_from,
			valid_to, type, base_type, schema_location, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, nullable(req.Description), nullable(req.Version),
		boolOrDefault(req.IsBundle, false), boolOrDefault(req.IsSellable, true), nullable(req.StatusReason),
		nullable(req.LifecycleStatus), now, validFrom, validTo,
		entityType, nullable(req.BaseType), nullable(req.SchemaLocation),
		now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert product offering: %w", err)
	}

	href := db.href(catalogDomain, "productOffering", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE product_offerings SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set product offering href: %w", err)
	}

	if err := db.insertOfferingCategories(ctx, id, req.Category); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetProductOffering(ctx, id)
}

// GetProductOffering returns the offering with the given id, or nil if absent.
func (db *DB) GetProductOffering(ctx context.Context, id string) (*models.ProductOffering, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, description, version, is_bundle, is_sellable,
		       status_reason, lifecycle_status, last_update, valid_from,
		       valid_to, type, base_type, schema_location
		FROM product_offerings WHERE id = ?`, id)

	offering, err := scanProductOffering(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product offering: %w", err)
	}

	if err := db.loadOfferingCategories(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

// ListProductOfferings returns one page of offerings plus the unfiltered
// total count.
func (db *DB) ListProductOfferings(ctx context.Context, offset, limit int) ([]models.ProductOffering, int, error) {
	done := trackQuery("list", "product_offerings")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_offerings`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count product offerings: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, description, version, is_bundle, is_sellable,
		       status_reason, lifecycle_status, last_update, valid_from,
		       valid_to, type, base_type, schema_location
		FROM product_offerings LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list product offerings: %w", err)
	}
	defer rows.Close()

	offerings := []models.ProductOffering{}
	for rows.Next() {
		offering, err := scanProductOffering(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan product offering: %w", err)
		}
		offerings = append(offerings, *offering)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate product offerings: %w", err)
	}

	for i := range offerings {
		if err := db.loadOfferingCategories(ctx, &offerings[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return offerings, total, nil
}

// UpdateProductOffering applies a partial update. Returns nil if the offering
// does not exist.
func (db *DB) UpdateProductOffering(ctx context.Context, id string, patch *models.ProductOfferingUpdate) (*models.ProductOffering, error) {
	existing, err := db.GetProductOffering(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "product_offerings")

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
	if patch.Version != nil {
		set = append(set, "version = ?")
		args = append(args, nullable(*patch.Version))
	}
	if patch.IsBundle != nil {
		set = append(set, "is_bundle = ?")
		args = append(args, *patch.IsBundle)
	}
	if patch.IsSellable != nil {
		set = append(set, "is_sellable = ?")
		args = append(args, *patch.IsSellable)
	}
	if patch.StatusReason != nil {
		set = append(set, "status_reason = ?")
		args = append(args, nullable(*patch.StatusReason))
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
	query := "UPDATE product_offerings SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update product offering: %w", err)
	}

	if patch.Category != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM product_offering_categories WHERE offering_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear offering categories: %w", err)
		}
		if err := db.insertOfferingCategories(ctx, id, *patch.Category); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetProductOffering(ctx, id)
}

// DeleteProductOffering removes the offering and its category references.
// Returns false without error when the id does not exist.
func (db *DB) DeleteProductOffering(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "product_offerings")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM product_offerings WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check product offering existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM product_offering_categories WHERE offering_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete offering categories: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM product_offerings WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete product offering: %w", err)
	}
	if err := checkRowsAffected(result, "delete product offering"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

func scanProductOffering(row interface{ Scan(...interface{}) error }) (*models.ProductOffering, error) {
	var (
		offering                 models.ProductOffering
		href, description        sql.NullString
		version, statusReason    sql.NullString
		lifecycleStatus          sql.NullString
		baseType, schemaLocation sql.NullString
		isBundle, isSellable     sql.NullBool
		lastUpdate               sql.NullTime
		validFrom, validTo       sql.NullTime
	)

	err := row.Scan(&offering.ID, &href, &offering.Name, &description,
		&version, &isBundle, &isSellable, &statusReason, &lifecycleStatus,
		&lastUpdate, &validFrom, &validTo, &offering.Type, &baseType,
		&schemaLocation)
	if err != nil {
		return nil, err
	}

	offering.Href = stringValue(href)
	offering.Description = stringValue(description)
	offering.Version = stringValue(version)
	offering.StatusReason = stringValue(statusReason)
	offering.LifecycleStatus = stringValue(lifecycleStatus)
	offering.BaseType = stringValue(baseType)
	offering.SchemaLocation = stringValue(schemaLocation)
	offering.IsBundle = boolValue(isBundle)
	offering.IsSellable = boolValue(isSellable)
	offering.LastUpdate = timeValue(lastUpdate)
	offering.ValidFor = buildValidFor(validFrom, validTo)
	return &offering, nil
}

func (db *DB) loadOfferingCategories(ctx context.Context, offering *models.ProductOffering) error {
	refs, err := db.queryCategoryRefs(ctx, `
		SELECT category_id, href, name, version, referred_type
		FROM product_offering_categories WHERE offering_id = ?`, offering.ID)
	if err != nil {
		return fmt.Errorf("failed to load offering categories: %w", err)
	}
	offering.Category = refs
	return nil
}

func (db *DB) insertOfferingCategories(ctx context.Context, offeringID string, refs []models.CategoryRef) error {
	for _, ref := range refs {
		referredType := ref.ReferredType
		if referredType == "" {
			referredType = "Category"
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO product_offering_categories (id, offering_id, category_id, href, name, version, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), offeringID, ref.ID, nullable(ref.Href),
			nullable(ref.Name), nullable(ref.Version), referredType)
		if err != nil {
			return fmt.Errorf("failed to insert offering category: %w", err)
		}
	}
	return nil
}
