// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package database

import (
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/catalogus/internal/models"
)

func TestCreateCustomer(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	preferred := true
	customer, err := db.CreateCustomer(ctx, &models.CustomerCreate{
		Name:   "Jane Smith",
		Status: "Approved",
		EngagedParty: &models.RelatedParty{
			ID:   "party-1",
			Name: "Jane Smith",
		},
		Characteristic: []models.Characteristic{
			{Name: "market", ValueType: "string", Value: "residential"},
		},
		ContactMedium: []models.ContactMedium{
			{
				MediumType: "email",
				Preferred:  &preferred,
				Characteristic: map[string]interface{}{
					"emailAddress": "jane@example.com",
				},
			},
		},
		RelatedParty: []models.RelatedParty{
			{ID: "party-2", Role: "billing contact"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	if !strings.Contains(customer.Href, "/tmf-api/customerManagement/v4/customer/"+customer.ID) {
		t.Errorf("unexpected href: %q", customer.Href)
	}
	if customer.Type != "Customer" {
		t.Errorf("Type = %q, want Customer", customer.Type)
	}
	if customer.EngagedParty == nil {
		t.Fatal("expected engaged party")
	}
	if customer.EngagedParty.ID != "party-1" {
		t.Errorf("engaged party id = %q", customer.EngagedParty.ID)
	}
	if customer.EngagedParty.ReferredType != "Party" {
		t.Errorf("engaged party referredType = %q, want default Party", customer.EngagedParty.ReferredType)
	}
	if len(customer.Characteristic) != 1 || customer.Characteristic[0].Value != "residential" {
		t.Errorf("unexpected characteristics: %+v", customer.Characteristic)
	}
	if len(customer.ContactMedium) != 1 {
		t.Fatalf("contact medium count = %d, want 1", len(customer.ContactMedium))
	}
	medium := customer.ContactMedium[0]
	if medium.Preferred == nil || !*medium.Preferred {
		t.Error("expected preferred contact medium")
	}
	if medium.Characteristic["emailAddress"] != "jane@example.com" {
		t.Errorf("medium characteristic = %+v", medium.Characteristic)
	}
	if len(customer.RelatedParty) != 1 {
		t.Errorf("related party count = %d, want 1", len(customer.RelatedParty))
	}
}

func TestUpdateCustomerEngagedParty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCustomer(ctx, &models.CustomerCreate{
		Name:         "ACME Corp",
		EngagedParty: &models.RelatedParty{ID: "party-1", Name: "ACME"},
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	updated, err := db.UpdateCustomer(ctx, created.ID, &models.CustomerUpdate{
		EngagedParty: &models.RelatedParty{ID: "party-9", Name: "ACME Holdings", ReferredType: "Organization"},
	})
	if err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}

	if updated.EngagedParty.ID != "party-9" {
		t.Errorf("engaged party id = %q, want party-9", updated.EngagedParty.ID)
	}
	if updated.EngagedParty.ReferredType != "Organization" {
		t.Errorf("engaged party referredType = %q", updated.EngagedParty.ReferredType)
	}
	if updated.Name != "ACME Corp" {
		t.Errorf("name changed by unrelated patch: %q", updated.Name)
	}
}

func TestUpdateCustomerClearsContactMediums(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCustomer(ctx, &models.CustomerCreate{
		Name:         "Jane Smith",
		EngagedParty: &models.RelatedParty{ID: "party-1"},
		ContactMedium: []models.ContactMedium{
			{MediumType: "email"},
			{MediumType: "phone"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	empty := []models.ContactMedium{}
	updated, err := db.UpdateCustomer(ctx, created.ID, &models.CustomerUpdate{ContactMedium: &empty})
	if err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}
	if len(updated.ContactMedium) != 0 {
		t.Errorf("contact mediums not cleared: %+v", updated.ContactMedium)
	}
}

func TestDeleteCustomerRemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCustomer(ctx, &models.CustomerCreate{
		Name:           "Jane Smith",
		EngagedParty:   &models.RelatedParty{ID: "party-1"},
		Characteristic: []models.Characteristic{{Name: "market", Value: "residential"}},
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	deleted, err := db.DeleteCustomer(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	var orphans int
	if err := db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM customer_characteristics WHERE customer_id = ?`, created.ID).Scan(&orphans); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("orphaned characteristics after delete: %d", orphans)
	}
}

func TestListCustomers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		if _, err := db.CreateCustomer(ctx, &models.CustomerCreate{
			Name:         name,
			EngagedParty: &models.RelatedParty{ID: "party-" + name},
		}); err != nil {
			t.Fatalf("CreateCustomer failed: %v", err)
		}
	}

	customers, total, err := db.ListCustomers(ctx, 0, 20)
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if total != 2 || len(customers) != 2 {
		t.Errorf("total = %d, len = %d, want 2/2", total, len(customers))
	}
}
