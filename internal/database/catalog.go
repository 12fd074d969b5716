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

// catalogDomain is the base path segment for TMF620 resources.
const catalogDomain = "productCatalogManagement"

// CreateCatalog inserts a catalog with its child collections and returns the
// persisted resource. The href is written in a second phase once the id is
// known; the multi-step write is not wrapped in a transaction, so a failure
// after the parent insert leaves a catalog without some children rather than
// rolling back.
func (db *DB) CreateCatalog(ctx context.Context, req *models.CatalogCreate) (*models.Catalog, error) {
	done := trackQuery("create", "catalogs")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "Catalog"
	}
	validFrom, validTo := validForBounds(req.ValidFor)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO catalogs (
			id, name, description, catalog_type, version, lifecycle_status,
			last_update, valid_from, valid_to, type, base_type, schema_location,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, nullable(req.Description), nullable(req.CatalogType),
		nullable(req.Version), nullable(req.LifecycleStatus),
		now, validFrom, validTo, entityType, nullable(req.BaseType),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert catalog: %w", err)
	}

	// Two-phase href assignment: the id is known only after the insert.
	href := db.href(catalogDomain, "catalog", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE catalogs SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set catalog href: %w", err)
	}

	if err := db.insertCatalogCategories(ctx, id, req.Category); err != nil {
		done(err)
		return nil, err
	}
	if err := db.insertCatalogRelatedParties(ctx, id, req.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetCatalog(ctx, id)
}

// GetCatalog returns the catalog with the given id, or nil if it does not
// exist. Absence is not an error at this layer.
func (db *DB) GetCatalog(ctx context.Context, id string) (*models.Catalog, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, description, catalog_type, version,
		       lifecycle_status, last_update, valid_from, valid_to,
		       type, base_type, schema_location
		FROM catalogs WHERE id = ?`, id)

	catalog, err := scanCatalog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	if err := db.loadCatalogChildren(ctx, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ListCatalogs returns one page of catalogs plus the unfiltered total count.
func (db *DB) ListCatalogs(ctx context.Context, offset, limit int) ([]models.Catalog, int, error) {
	done := trackQuery("list", "catalogs")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalogs`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count catalogs: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, description, catalog_type, version,
		       lifecycle_status, last_update, valid_from, valid_to,
		       type, base_type, schema_location
		FROM catalogs LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list catalogs: %w", err)
	}
	defer rows.Close()

	catalogs := []models.Catalog{}
	for rows.Next() {
		catalog, err := scanCatalog(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan catalog: %w", err)
		}
		catalogs = append(catalogs, *catalog)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate catalogs: %w", err)
	}

	for i := range catalogs {
		if err := db.loadCatalogChildren(ctx, &catalogs[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return catalogs, total, nil
}

// UpdateCatalog applies a partial update. Only fields present in the patch
// are written; updatedAt and lastUpdate always advance. A child collection
// key present in the patch (even as an empty list) replaces the full
// existing set; an absent key leaves the collection untouched. Returns nil
// if the catalog does not exist.
func (db *DB) UpdateCatalog(ctx context.Context, id string, patch *models.CatalogUpdate) (*models.Catalog, error) {
	existing, err := db.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "catalogs")

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
	if patch.CatalogType != nil {
		set = append(set, "catalog_type = ?")
		args = append(args, nullable(*patch.CatalogType))
	}
	if patch.Version != nil {
		set = append(set, "version = ?")
		args = append(args, nullable(*patch.Version))
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
	query := "UPDATE catalogs SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update catalog: %w", err)
	}

	if patch.Category != nil {
		if err := db.replaceCatalogCategories(ctx, id, *patch.Category); err != nil {
			done(err)
			return nil, err
		}
	}
	if patch.RelatedParty != nil {
		if err := db.replaceCatalogRelatedParties(ctx, id, *patch.RelatedParty); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetCatalog(ctx, id)
}

// DeleteCatalog removes the catalog and its children. Returns false without
// error when the id does not exist.
func (db *DB) DeleteCatalog(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "catalogs")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM catalogs WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check catalog existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM catalog_categories WHERE catalog_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete catalog categories: %w", err)
	}
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM catalog_related_parties WHERE catalog_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete catalog related parties: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete catalog: %w", err)
	}
	if err := checkRowsAffected(result, "delete catalog"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

// scanCatalog scans one catalogs row from the shared column list.
func scanCatalog(row interface{ Scan(...interface{}) error }) (*models.Catalog, error) {
	var (
		catalog                       models.Catalog
		href, description             sql.NullString
		catalogType, version          sql.NullString
		lifecycleStatus               sql.NullString
		baseType, schemaLocation      sql.NullString
		lastUpdate, validFrom, validTo sql.NullTime
	)

	err := row.Scan(&catalog.ID, &href, &catalog.Name, &description,
		&catalogType, &version, &lifecycleStatus,
		&lastUpdate, &validFrom, &validTo,
		&catalog.Type, &baseType, &schemaLocation)
	if err != nil {
		return nil, err
	}

	catalog.Href = stringValue(href)
	catalog.Description = stringValue(description)
	catalog.CatalogType = stringValue(catalogType)
	catalog.Version = stringValue(version)
	catalog.LifecycleStatus = stringValue(lifecycleStatus)
	catalog.BaseType = stringValue(baseType)
	catalog.SchemaLocation = stringValue(schemaLocation)
	catalog.LastUpdate = timeValue(lastUpdate)
	catalog.ValidFor = buildValidFor(validFrom, validTo)
	return &catalog, nil
}

// loadCatalogChildren enriches a catalog with its category references and
// related parties.
func (db *DB) loadCatalogChildren(ctx context.Context, catalog *models.Catalog) error {
	categories, err := db.queryCategoryRefs(ctx, `
		SELECT category_id, href, name, version, referred_type
		FROM catalog_categories WHERE catalog_id = ?`, catalog.ID)
	if err != nil {
		return fmt.Errorf("failed to load catalog categories: %w", err)
	}
	catalog.Category = categories

	parties, err := db.queryRelatedParties(ctx, `
		SELECT party_id, href, name, role, referred_type
		FROM catalog_related_parties WHERE catalog_id = ?`, catalog.ID)
	if err != nil {
		return fmt.Errorf("failed to load catalog related parties: %w", err)
	}
	catalog.RelatedParty = parties
	return nil
}

func (db *DB) insertCatalogCategories(ctx context.Context, catalogID string, refs []models.CategoryRef) error {
	for _, ref := range refs {
		referredType := ref.ReferredType
		if referredType == "" {
			referredType = "Category"
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO catalog_categories (id, catalog_id, category_id, href, name, version, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), catalogID, ref.ID, nullable(ref.Href),
			nullable(ref.Name), nullable(ref.Version), referredType)
		if err != nil {
			return fmt.Errorf("failed to insert catalog category: %w", err)
		}
	}
	return nil
}

func (db *DB) replaceCatalogCategories(ctx context.Context, catalogID string, refs []models.CategoryRef) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM catalog_categories WHERE catalog_id = ?`, catalogID); err != nil {
		return fmt.Errorf("failed to clear catalog categories: %w", err)
	}
	return db.insertCatalogCategories(ctx, catalogID, refs)
}

func (db *DB) insertCatalogRelatedParties(ctx context.Context, catalogID string, parties []models.RelatedParty) error {
	for _, party := range parties {
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO catalog_related_parties (id, catalog_id, party_id, href, name, role, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), catalogID, party.ID, nullable(party.Href),
			nullable(party.Name), nullable(party.Role), nullable(party.ReferredType))
		if err != nil {
			return fmt.Errorf("failed to insert catalog related party: %w", err)
		}
	}
	return nil
}

func (db *DB) replaceCatalogRelatedParties(ctx context.Context, catalogID string, parties []models.RelatedParty) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM catalog_related_parties WHERE catalog_id = ?`, catalogID); err != nil {
		return fmt.Errorf("failed to clear catalog related parties: %w", err)
	}
	return db.insertCatalogRelatedParties(ctx, catalogID, parties)
}

// queryCategoryRefs runs a child query returning category references.
func (db *DB) queryCategoryRefs(ctx context.Context, query string, parentID string) ([]models.CategoryRef, error) {
	rows, err := db.conn.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.CategoryRef
	for rows.Next() {
		var (
			ref                       models.CategoryRef
			href, name, version, rtyp sql.NullString
		)
		if err := rows.Scan(&ref.ID, &href, &name, &version, &rtyp); err != nil {
			return nil, err
		}
		ref.Href = stringValue(href)
		ref.Name = stringValue(name)
		ref.Version = stringValue(version)
		ref.ReferredType = stringValue(rtyp)
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// queryRelatedParties runs a child query returning related-party references.
func (db *DB) queryRelatedParties(ctx context.Context, query string, parentID string) ([]models.RelatedParty, error) {
	rows, err := db.conn.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parties []models.RelatedParty
	for rows.Next() {
		var (
			party                  models.RelatedParty
			href, name, role, rtyp sql.NullString
		)
		if err := rows.Scan(&party.ID, &href, &name, &role, &rtyp); err != nil {
			return nil, err
		}
		party.Href = stringValue(href)
		party.Name = stringValue(name)
		party.Role = stringValue(role)
		party.ReferredType = stringValue(rtyp)
		parties = append(parties, party)
	}
	return parties, rows.Err()
}
