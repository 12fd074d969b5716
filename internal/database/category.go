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

// CreateCategory inserts a category with its subcategory references and
// returns the persisted resource.
func (db *DB) CreateCategory(ctx context.Context, req *models.CategoryCreate) (*models.Category, error) {
	done := trackQuery("create", "categories")

	id := uuid.New().String()
	now := time.Now().UTC()
	entityType := req.Type
	if entityType == "" {
		entityType = "Category"
	}
	validFrom, validTo := validForBounds(req.ValidFor)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO categories (
			id, name, description, version, lifecycle_status, last_update,
			is_root, parent_id, valid_from, valid_to, type, base_type,
			schema_location, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, nullable(req.Description), nullable(req.Version),
		nullable(req.LifecycleStatus), now, boolOrDefault(req.IsRoot, false), nullable(req.ParentID),
		validFrom, validTo, entityType, nullable(req.BaseType),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	href := db.href(catalogDomain, "category", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE categories SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set category href: %w", err)
	}

	if err := db.insertSubCategories(ctx, id, req.SubCategory); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetCategory(ctx, id)
}

// GetCategory returns the category with the given id, or nil if absent.
func (db *DB) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, description, version, lifecycle_status,
		       last_update, is_root, parent_id, valid_from, valid_to,
		       type, base_type, schema_location
		FROM categories WHERE id = ?`, id)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if err := db.loadSubCategories(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns one page of categories plus the unfiltered total count.
func (db *DB) ListCategories(ctx context.Context, offset, limit int) ([]models.Category, int, error) {
	done := trackQuery("list", "categories")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, description, version, lifecycle_status,
		       last_update, is_root, parent_id, valid_from, valid_to,
		       type, base_type, schema_location
		FROM categories LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate categories: %w", err)
	}

	for i := range categories {
		if err := db.loadSubCategories(ctx, &categories[i]); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return categories, total, nil
}

// UpdateCategory applies a partial update. Returns nil if the category does
// not exist.
func (db *DB) UpdateCategory(ctx context.Context, id string, patch *models.CategoryUpdate) (*models.Category, error) {
	existing, err := db.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "categories")

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
	if patch.LifecycleStatus != nil {
		set = append(set, "lifecycle_status = ?")
		args = append(args, nullable(*patch.LifecycleStatus))
	}
	if patch.IsRoot != nil {
		set = append(set, "is_root = ?")
		args = append(args, *patch.IsRoot)
	}
	if patch.ParentID != nil {
		set = append(set, "parent_id = ?")
		args = append(args, nullable(*patch.ParentID))
	}
	if patch.ValidFor != nil {
		validFrom, validTo := validForBounds(patch.ValidFor)
		set = append(set, "valid_from = ?", "valid_to = ?")
		args = append(args, validFrom, validTo)
	}

	args = append(args, id)
	query := "UPDATE categories SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if patch.SubCategory != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM category_subcategories WHERE category_id = ?`, id); err != nil {
			done(err)
			return nil, fmt.Errorf("failed to clear subcategories: %w", err)
		}
		if err := db.insertSubCategories(ctx, id, *patch.SubCategory); err != nil {
			done(err)
			return nil, err
		}
	}

	done(nil)
	return db.GetCategory(ctx, id)
}

// DeleteCategory removes the category and its subcategory references.
// Returns false without error when the id does not exist.
func (db *DB) DeleteCategory(ctx context.Context, id string) (bool, error) {
	done := trackQuery("delete", "categories")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM category_subcategories WHERE category_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete subcategories: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	if err := checkRowsAffected(result, "delete category"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

func scanCategory(row interface{ Scan(...interface{}) error }) (*models.Category, error) {
	var (
		category                 models.Category
		href, description        sql.NullString
		version, lifecycleStatus sql.NullString
		parentID                 sql.NullString
		baseType, schemaLocation sql.NullString
		isRoot                   sql.NullBool
		lastUpdate               sql.NullTime
		validFrom, validTo       sql.NullTime
	)

	err := row.Scan(&category.ID, &href, &category.Name, &description,
		&version, &lifecycleStatus, &lastUpdate, &isRoot, &parentID,
		&validFrom, &validTo, &category.Type, &baseType, &schemaLocation)
	if err != nil {
		return nil, err
	}

	category.Href = stringValue(href)
	category.Description = stringValue(description)
	category.Version = stringValue(version)
	category.LifecycleStatus = stringValue(lifecycleStatus)
	category.ParentID = stringValue(parentID)
	category.BaseType = stringValue(baseType)
	category.SchemaLocation = stringValue(schemaLocation)
	category.IsRoot = boolValue(isRoot)
	category.LastUpdate = timeValue(lastUpdate)
	category.ValidFor = buildValidFor(validFrom, validTo)
	return &category, nil
}

func (db *DB) loadSubCategories(ctx context.Context, category *models.Category) error {
	refs, err := db.queryCategoryRefs(ctx, `
		SELECT subcategory_id, href, name, version, referred_type
		FROM category_subcategories WHERE category_id = ?`, category.ID)
	if err != nil {
		return fmt.Errorf("failed to load subcategories: %w", err)
	}
	category.SubCategory = refs
	return nil
}

func (db *DB) insertSubCategories(ctx context.Context, categoryID string, refs []models.CategoryRef) error {
	for _, ref := range refs {
		referredType := ref.ReferredType
		if referredType == "" {
			referredType = "Category"
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO category_subcategories (id, category_id, subcategory_id, href, name, version, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), categoryID, ref.ID, nullable(ref.Href),
			nullable(ref.Name), nullable(ref.Version), referredType)
		if err != nil {
			return fmt.Errorf("failed to insert subcategory: %w", err)
		}
	}
	return nil
}
