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

func TestCreateGeographicAddress(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	address, err := db.CreateGeographicAddress(ctx, &models.GeographicAddressCreate{
		StreetNr:   "42",
		StreetName: "Main",
		StreetType: "Street",
		PostCode:   "12345",
		City:       "Springfield",
		Country:    "US",
		GeographicLocation: map[string]interface{}{
			"latitude":  40.7128,
			"longitude": -74.006,
		},
		GeographicSubAddress: []models.GeographicSubAddress{
			{SubAddressType: "SubUnit", SubUnitType: "APT", SubUnitNumber: "4B"},
		},
	})
	if err != nil {
		t.Fatalf("CreateGeographicAddress failed: %v", err)
	}

	if !strings.Contains(address.Href, "/tmf-api/geographicAddressManagement/v4/geographicAddress/"+address.ID) {
		t.Errorf("unexpected href: %q", address.Href)
	}
	if address.Type != "GeographicAddress" {
		t.Errorf("Type = %q, want GeographicAddress", address.Type)
	}
	if address.GeographicLocation["latitude"] != 40.7128 {
		t.Errorf("location = %+v", address.GeographicLocation)
	}
	if len(address.GeographicSubAddress) != 1 {
		t.Fatalf("sub-address count = %d, want 1", len(address.GeographicSubAddress))
	}

	sub := address.GeographicSubAddress[0]
	if sub.ID == "" {
		t.Error("expected sub-address id")
	}
	wantSuffix := "/geographicAddress/" + address.ID + "/geographicSubAddress/" + sub.ID
	if !strings.HasSuffix(sub.Href, wantSuffix) {
		t.Errorf("sub-address href = %q, want suffix %q", sub.Href, wantSuffix)
	}
	if sub.SubUnitNumber != "4B" {
		t.Errorf("subUnitNumber = %q", sub.SubUnitNumber)
	}
}

func TestUpdateGeographicAddressReplacesSubAddresses(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateGeographicAddress(ctx, &models.GeographicAddressCreate{
		City:    "Springfield",
		Country: "US",
		GeographicSubAddress: []models.GeographicSubAddress{
			{SubUnitType: "APT", SubUnitNumber: "1"},
			{SubUnitType: "APT", SubUnitNumber: "2"},
		},
	})
	if err != nil {
		t.Fatalf("CreateGeographicAddress failed: %v", err)
	}

	replacement := []models.GeographicSubAddress{{SubUnitType: "SUITE", SubUnitNumber: "300"}}
	updated, err := db.UpdateGeographicAddress(ctx, created.ID, &models.GeographicAddressUpdate{
		GeographicSubAddress: &replacement,
	})
	if err != nil {
		t.Fatalf("UpdateGeographicAddress failed: %v", err)
	}

	if len(updated.GeographicSubAddress) != 1 {
		t.Fatalf("sub-address count = %d, want 1 after replacement", len(updated.GeographicSubAddress))
	}
	if updated.GeographicSubAddress[0].SubUnitNumber != "300" {
		t.Errorf("subUnitNumber = %q, want 300", updated.GeographicSubAddress[0].SubUnitNumber)
	}
	// Replacement rows are new resources with fresh ids.
	if updated.GeographicSubAddress[0].ID == created.GeographicSubAddress[0].ID {
		t.Error("replacement sub-address kept the old id")
	}
}

func TestUpdateGeographicAddressScalarFields(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateGeographicAddress(ctx, &models.GeographicAddressCreate{
		City:    "Springfield",
		Country: "US",
	})
	if err != nil {
		t.Fatalf("CreateGeographicAddress failed: %v", err)
	}

	city := "Shelbyville"
	postCode := "99999"
	updated, err := db.UpdateGeographicAddress(ctx, created.ID, &models.GeographicAddressUpdate{
		City:     &city,
		PostCode: &postCode,
	})
	if err != nil {
		t.Fatalf("UpdateGeographicAddress failed: %v", err)
	}

	if updated.City != "Shelbyville" {
		t.Errorf("city = %q", updated.City)
	}
	if updated.PostCode != "99999" {
		t.Errorf("postcode = %q", updated.PostCode)
	}
	if updated.Country != "US" {
		t.Errorf("country changed by unrelated patch: %q", updated.Country)
	}
}

func TestDeleteGeographicAddress(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateGeographicAddress(ctx, &models.GeographicAddressCreate{
		City:    "Springfield",
		Country: "US",
		GeographicSubAddress: []models.GeographicSubAddress{
			{SubUnitType: "APT", SubUnitNumber: "1"},
		},
	})
	if err != nil {
		t.Fatalf("CreateGeographicAddress failed: %v", err)
	}

	deleted, err := db.DeleteGeographicAddress(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteGeographicAddress failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion to report true")
	}

	var orphans int
	if err := db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM geographic_sub_addresses WHERE address_id = ?`, created.ID).Scan(&orphans); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if orphans != 0 {
		t.Errorf("orphaned sub-addresses after delete: %d", orphans)
	}
}
