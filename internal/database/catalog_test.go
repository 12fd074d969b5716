// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/catalogus/internal/models"
)

func TestCreateCatalog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog, err := db.CreateCatalog(ctx, &models.CatalogCreate{
		Name:            "Retail Catalog",
		Description:     "Consumer products",
		CatalogType:     "ProductCatalog",
		Version:         "1.0",
		LifecycleStatus: "Active",
		ValidFor:        &models.TimePeriod{StartDateTime: &start},
		Category: []models.CategoryRef{
			{ID: "cat-1", Name: "Broadband"},
		},
		RelatedParty: []models.RelatedParty{
			{ID: "party-1", Name: "ACME", Role: "owner", ReferredType: "Organization"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCatalog failed: %v", err)
	}

	if catalog.ID == "" {
		t.Fatal("expected generated id")
	}
	if !strings.Contains(catalog.Href, "/tmf-api/productCatalogManagement/v4/catalog/"+catalog.ID) {
		t.Errorf("unexpected href: %q", catalog.Href)
	}
	if catalog.Type != "Catalog" {
		t.Errorf("Type = %q, want Catalog", catalog.Type)
	}
	if catalog.LastUpdate == nil {
		t.Error("expected lastUpdate to be set")
	}
	if catalog.ValidFor == nil || catalog.ValidFor.StartDateTime == nil {
		t.Fatal("expected validFor start bound")
	}
	if !catalog.ValidFor.StartDateTime.Equal(start) {
		t.Errorf("validFor start = %v, want %v", catalog.ValidFor.StartDateTime, start)
	}
	if catalog.ValidFor.EndDateTime != nil {
		t.Error("expected no validFor end bound")
	}
	if len(catalog.Category) != 1 || catalog.Category[0].ID != "cat-1" {
		t.Errorf("unexpected categories: %+v", catalog.Category)
	}
	if catalog.Category[0].ReferredType != "Category" {
		t.Errorf("category referredType = %q, want default Category", catalog.Category[0].ReferredType)
	}
	if len(catalog.RelatedParty) != 1 || catalog.RelatedParty[0].Role != "owner" {
		t.Errorf("unexpected related parties: %+v", catalog.RelatedParty)
	}
}

func TestGetCatalogNotFound(t *testing.T) {
	db := setupTestDB(t)

	catalog, err := db.GetCatalog(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("GetCatalog failed: %v", err)
	}
	if catalog != nil {
		t.Errorf("expected nil for missing id, got %+v", catalog)
	}
}

func TestListCatalogsPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if _, err := db.CreateCatalog(ctx, &models.CatalogCreate{Name: name}); err != nil {
			t.Fatalf("CreateCatalog failed: %v", err)
		}
	}

	catalogs, total, err := db.ListCatalogs(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ListCatalogs failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(catalogs) != 2 {
		t.Fatalf("page size = %d, want 2", len(catalogs))
	}
	// Insertion order is preserved, so offset 1 starts at the second row.
	if catalogs[0].Name != "second" || catalogs[1].Name != "third" {
		t.Errorf("unexpected page order: %q, %q", catalogs[0].Name, catalogs[1].Name)
	}
}

func TestListCatalogsEmpty(t *testing.T) {
	db := setupTestDB(t)

	catalogs, total, err := db.ListCatalogs(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("ListCatalogs failed: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if catalogs == nil {
		t.Error("expected empty slice, not nil, so the list serializes as []")
	}
	if len(catalogs) != 0 {
		t.Errorf("len = %d, want 0", len(catalogs))
	}
}

func TestUpdateCatalogPartial(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCatalog(ctx, &models.CatalogCreate{
		Name:        "Original",
		Description: "keep me",
		Category:    []models.CategoryRef{{ID: "cat-1"}},
	})
	if err != nil {
		t.Fatalf("CreateCatalog failed: %v", err)
	}

	newName := "Renamed"
	updated, err := db.UpdateCatalog(ctx, created.ID, &models.CatalogUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateCatalog failed: %v", err)
	}

	if updated.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", updated.Name)
	}
	if updated.Description != "keep me" {
		t.Errorf("Description = %q, untouched field must survive", updated.Description)
	}
	// Absent child collection pointer means untouched.
	if len(updated.Category) != 1 {
		t.Errorf("category list changed by unrelated patch: %+v", updated.Category)
	}
}

func TestUpdateCatalogClearsChildren(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCatalog(ctx, &models.CatalogCreate{
		Name:         "With children",
		Category:     []models.CategoryRef{{ID: "cat-1"}},
		RelatedParty: []models.RelatedParty{{ID: "party-1"}},
	})
	if err != nil {
		t.Fatalf("CreateCatalog failed: %v", err)
	}

	// A present-but-empty list clears the collection.
	empty := []models.CategoryRef{}
	updated, err := db.UpdateCatalog(ctx, created.ID, &models.CatalogUpdate{Category: &empty})
	if err != nil {
		t.Fatalf("UpdateCatalog failed: %v", err)
	}

	if len(updated.Category) != 0 {
		t.Errorf("category list not cleared: %+v", updated.Category)
	}
	if len(updated.RelatedParty) != 1 {
		t.Errorf("related parties must survive an unrelated patch: %+v", updated.RelatedParty)
	}
}

func TestUpdateCatalogNotFound(t *testing.T) {
	db := setupTestDB(t)

	name := "whatever"
	updated, err := db.UpdateCatalog(context.Background(), "missing", &models.CatalogUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateCatalog failed: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing id, got %+v", updated)
	}
}

func TestDeleteCatalog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCatalog(ctx, &models.CatalogCreate{
		Name:     "Doomed",
		Category: []models.CategoryRef{{ID: "cat-1"}},
	})
	if err != nil {
		t.Fatalf("CreateCatalog failed: %v", err)
	}

	deleted, err := db.DeleteCatalog(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteCatalog failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	got, err := db.GetCatalog(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCatalog failed: %v", err)
	}
	if got != nil {
		t.Errorf("catalog still present after delete: %+v", got)
	}

	// Child rows are removed in the same pass.
	var orphans int
	if err := db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_categories WHERE catalog_id = ?`, created.ID).Scan(&orphans); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("orphaned child rows after delete: %d", orphans)
	}

	// Second delete is a clean false.
	deleted, err = db.DeleteCatalog(ctx, created.ID)
	if err != nil {
		t.Fatalf("second DeleteCatalog failed: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestCreateCategoryWithSubCategories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	isRoot := true
	category, err := db.CreateCategory(ctx, &models.CategoryCreate{
		Name:   "Mobile",
		IsRoot: &isRoot,
		SubCategory: []models.CategoryRef{
			{ID: "sub-1", Name: "Prepaid"},
			{ID: "sub-2", Name: "Postpaid"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	if category.IsRoot == nil || !*category.IsRoot {
		t.Error("expected isRoot true")
	}
	if !strings.Contains(category.Href, "/tmf-api/productCatalogManagement/v4/category/") {
		t.Errorf("unexpected href: %q", category.Href)
	}
	if len(category.SubCategory) != 2 {
		t.Fatalf("subCategory count = %d, want 2", len(category.SubCategory))
	}
}

func TestUpdateCategoryParent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	parent, err := db.CreateCategory(ctx, &models.CategoryCreate{Name: "Parent"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	child, err := db.CreateCategory(ctx, &models.CategoryCreate{Name: "Child"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	updated, err := db.UpdateCategory(ctx, child.ID, &models.CategoryUpdate{ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if updated.ParentID != parent.ID {
		t.Errorf("parentId = %q, want %q", updated.ParentID, parent.ID)
	}
}

func TestCreateProductOffering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	isBundle := false
	isSellable := true
	offering, err := db.CreateProductOffering(ctx, &models.ProductOfferingCreate{
		Name:            "Fiber 1000",
		IsBundle:        &isBundle,
		IsSellable:      &isSellable,
		LifecycleStatus: "Launched",
		Category:        []models.CategoryRef{{ID: "cat-1", Name: "Broadband"}},
	})
	if err != nil {
		t.Fatalf("CreateProductOffering failed: %v", err)
	}

	if offering.Type != "ProductOffering" {
		t.Errorf("Type = %q, want ProductOffering", offering.Type)
	}
	if offering.IsSellable == nil || !*offering.IsSellable {
		t.Error("expected isSellable true")
	}
	if offering.IsBundle == nil || *offering.IsBundle {
		t.Error("expected isBundle false, not omitted")
	}
	if len(offering.Category) != 1 {
		t.Errorf("category count = %d, want 1", len(offering.Category))
	}
}

func TestCreateProductOfferingBooleanDefaults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Omitted booleans get concrete defaults, never NULL.
	offering, err := db.CreateProductOffering(ctx, &models.ProductOfferingCreate{Name: "Fiber 500"})
	if err != nil {
		t.Fatalf("CreateProductOffering failed: %v", err)
	}
	if offering.IsBundle == nil || *offering.IsBundle {
		t.Error("expected isBundle to default to false")
	}
	if offering.IsSellable == nil || !*offering.IsSellable {
		t.Error("expected isSellable to default to true")
	}

	spec, err := db.CreateProductSpecification(ctx, &models.ProductSpecificationCreate{Name: "Fiber Modem"})
	if err != nil {
		t.Fatalf("CreateProductSpecification failed: %v", err)
	}
	if spec.IsBundle == nil || *spec.IsBundle {
		t.Error("expected isBundle to default to false")
	}

	category, err := db.CreateCategory(ctx, &models.CategoryCreate{Name: "Broadband"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if category.IsRoot == nil || *category.IsRoot {
		t.Error("expected isRoot to default to false")
	}
}

func TestProductSpecificationCharacteristicsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	configurable := true
	isDefault := true
	spec, err := db.CreateProductSpecification(ctx, &models.ProductSpecificationCreate{
		Name:  "Router X",
		Brand: "ACME",
		ProductSpecCharacteristic: []models.ProductSpecCharacteristic{
			{
				Name:         "Color",
				ValueType:    "string",
				Configurable: &configurable,
				ProductSpecCharacteristicValue: []models.CharacteristicValue{
					{ValueType: "string", Value: "black", IsDefault: &isDefault},
					{ValueType: "string", Value: "white"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateProductSpecification failed: %v", err)
	}

	if len(spec.ProductSpecCharacteristic) != 1 {
		t.Fatalf("characteristic count = %d, want 1", len(spec.ProductSpecCharacteristic))
	}
	char := spec.ProductSpecCharacteristic[0]
	if char.Name != "Color" {
		t.Errorf("characteristic name = %q", char.Name)
	}
	if char.Configurable == nil || !*char.Configurable {
		t.Error("expected configurable true")
	}
	if len(char.ProductSpecCharacteristicValue) != 2 {
		t.Fatalf("value count = %d, want 2", len(char.ProductSpecCharacteristicValue))
	}
	if char.ProductSpecCharacteristicValue[0].Value != "black" {
		t.Errorf("first value = %v, want black", char.ProductSpecCharacteristicValue[0].Value)
	}
	if char.ProductSpecCharacteristicValue[0].IsDefault == nil || !*char.ProductSpecCharacteristicValue[0].IsDefault {
		t.Error("expected first value to be default")
	}
}

func TestUpdateProductSpecificationReplacesCharacteristics(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	spec, err := db.CreateProductSpecification(ctx, &models.ProductSpecificationCreate{
		Name: "Router X",
		ProductSpecCharacteristic: []models.ProductSpecCharacteristic{
			{Name: "Color"},
			{Name: "Ports"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProductSpecification failed: %v", err)
	}

	replacement := []models.ProductSpecCharacteristic{{Name: "Weight", ValueType: "number"}}
	updated, err := db.UpdateProductSpecification(ctx, spec.ID, &models.ProductSpecificationUpdate{
		ProductSpecCharacteristic: &replacement,
	})
	if err != nil {
		t.Fatalf("UpdateProductSpecification failed: %v", err)
	}

	if len(updated.ProductSpecCharacteristic) != 1 {
		t.Fatalf("characteristic count = %d, want 1 after replacement", len(updated.ProductSpecCharacteristic))
	}
	if updated.ProductSpecCharacteristic[0].Name != "Weight" {
		t.Errorf("characteristic = %q, want Weight", updated.ProductSpecCharacteristic[0].Name)
	}
}
