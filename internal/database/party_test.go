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

func TestCreateIndividual(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	birthDate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	individual, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:  "Jane",
		FamilyName: "Smith",
		FullName:   "Jane Smith",
		Gender:     "female",
		BirthDate:  &birthDate,
		Status:     "validated",
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	if !strings.Contains(individual.Href, "/tmf-api/partyManagement/v4/individual/"+individual.ID) {
		t.Errorf("unexpected href: %q", individual.Href)
	}
	if individual.Type != models.PartyTypeIndividual {
		t.Errorf("Type = %q, want Individual", individual.Type)
	}
	if individual.BaseType != "Party" {
		t.Errorf("BaseType = %q, want Party", individual.BaseType)
	}
	if individual.BirthDate == nil || !individual.BirthDate.Equal(birthDate) {
		t.Errorf("birthDate = %v, want %v", individual.BirthDate, birthDate)
	}
}

func TestCreateOrganization(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	isLegalEntity := true
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	organization, err := db.CreateOrganization(ctx, &models.OrganizationCreate{
		Name:             "ACME Corp",
		TradingName:      "ACME",
		OrganizationType: "company",
		IsLegalEntity:    &isLegalEntity,
		ExistsDuring:     &models.TimePeriod{StartDateTime: &from},
	})
	if err != nil {
		t.Fatalf("CreateOrganization failed: %v", err)
	}

	if !strings.Contains(organization.Href, "/tmf-api/partyManagement/v4/organization/"+organization.ID) {
		t.Errorf("unexpected href: %q", organization.Href)
	}
	if organization.Type != models.PartyTypeOrganization {
		t.Errorf("Type = %q, want Organization", organization.Type)
	}
	if organization.IsLegalEntity == nil || !*organization.IsLegalEntity {
		t.Error("expected isLegalEntity true")
	}
	if organization.ExistsDuring == nil || organization.ExistsDuring.StartDateTime == nil {
		t.Fatal("expected existsDuring start bound")
	}
}

func TestPartyTypeMismatchBehavesLikeMissing(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	individual, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:  "Jane",
		FamilyName: "Smith",
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	// Reading an individual's id through the organization API is a miss.
	organization, err := db.GetOrganization(ctx, individual.ID)
	if err != nil {
		t.Fatalf("GetOrganization failed: %v", err)
	}
	if organization != nil {
		t.Errorf("expected nil for individual id, got %+v", organization)
	}

	// Same for update and delete.
	name := "ACME"
	updated, err := db.UpdateOrganization(ctx, individual.ID, &models.OrganizationUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateOrganization failed: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil update result for individual id, got %+v", updated)
	}

	deleted, err := db.DeleteOrganization(ctx, individual.ID)
	if err != nil {
		t.Fatalf("DeleteOrganization failed: %v", err)
	}
	if deleted {
		t.Error("delete through the wrong type must report false")
	}

	// The individual is untouched.
	still, err := db.GetIndividual(ctx, individual.ID)
	if err != nil {
		t.Fatalf("GetIndividual failed: %v", err)
	}
	if still == nil {
		t.Fatal("individual disappeared after wrong-type operations")
	}
}

func TestListPartiesFilteredByType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateIndividual(ctx, &models.IndividualCreate{GivenName: "Jane", FamilyName: "Smith"}); err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}
	if _, err := db.CreateIndividual(ctx, &models.IndividualCreate{GivenName: "John", FamilyName: "Doe"}); err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}
	if _, err := db.CreateOrganization(ctx, &models.OrganizationCreate{Name: "ACME"}); err != nil {
		t.Fatalf("CreateOrganization failed: %v", err)
	}

	individuals, individualTotal, err := db.ListIndividuals(ctx, 0, 20)
	if err != nil {
		t.Fatalf("ListIndividuals failed: %v", err)
	}
	if individualTotal != 2 || len(individuals) != 2 {
		t.Errorf("individuals total = %d, len = %d, want 2/2", individualTotal, len(individuals))
	}

	organizations, organizationTotal, err := db.ListOrganizations(ctx, 0, 20)
	if err != nil {
		t.Fatalf("ListOrganizations failed: %v", err)
	}
	if organizationTotal != 1 || len(organizations) != 1 {
		t.Errorf("organizations total = %d, len = %d, want 1/1", organizationTotal, len(organizations))
	}
}

func TestUpdateIndividualPartial(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:  "Jane",
		FamilyName: "Smith",
		Title:      "Dr",
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	status := "validated"
	updated, err := db.UpdateIndividual(ctx, created.ID, &models.IndividualUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateIndividual failed: %v", err)
	}

	if updated.Status != "validated" {
		t.Errorf("status = %q, want validated", updated.Status)
	}
	if updated.Title != "Dr" {
		t.Errorf("title changed by unrelated patch: %q", updated.Title)
	}
}

func TestCreateIndividualFullProfile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	deathDate := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	validFrom := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	preferred := true
	individual, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:     "Jane",
		FamilyName:    "Smith",
		MiddleName:    "Q",
		FormattedName: "Dr Jane Q Smith",
		Location:      "Lisbon",
		DeathDate:     &deathDate,
		ValidFor:      &models.TimePeriod{StartDateTime: &validFrom},
		PartyCharacteristic: []models.Characteristic{
			{Name: "loyaltyTier", ValueType: "string", Value: "gold"},
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
			{ID: "org-1", Name: "ACME", Role: "employer"},
		},
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	if individual.MiddleName != "Q" || individual.FormattedName != "Dr Jane Q Smith" {
		t.Errorf("name fields = %q / %q", individual.MiddleName, individual.FormattedName)
	}
	if individual.Location != "Lisbon" {
		t.Errorf("location = %q, want Lisbon", individual.Location)
	}
	if individual.DeathDate == nil || !individual.DeathDate.Equal(deathDate) {
		t.Errorf("deathDate = %v, want %v", individual.DeathDate, deathDate)
	}
	if individual.ValidFor == nil || individual.ValidFor.StartDateTime == nil {
		t.Fatal("expected validFor start bound")
	}
	if len(individual.PartyCharacteristic) != 1 || individual.PartyCharacteristic[0].Value != "gold" {
		t.Errorf("unexpected characteristics: %+v", individual.PartyCharacteristic)
	}
	if len(individual.ContactMedium) != 1 {
		t.Fatalf("contact medium count = %d, want 1", len(individual.ContactMedium))
	}
	medium := individual.ContactMedium[0]
	if medium.Preferred == nil || !*medium.Preferred {
		t.Error("expected preferred contact medium")
	}
	if medium.Characteristic["emailAddress"] != "jane@example.com" {
		t.Errorf("medium characteristic = %+v", medium.Characteristic)
	}
	if len(individual.RelatedParty) != 1 || individual.RelatedParty[0].ReferredType != "Party" {
		t.Errorf("unexpected related parties: %+v", individual.RelatedParty)
	}
}

func TestCreateOrganizationWithChildren(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	organization, err := db.CreateOrganization(ctx, &models.OrganizationCreate{
		Name:     "ACME Corp",
		NameType: "legal",
		PartyCharacteristic: []models.Characteristic{
			{Name: "segment", Value: "enterprise"},
		},
		ContactMedium: []models.ContactMedium{
			{MediumType: "postalAddress", Characteristic: map[string]interface{}{"city": "Lisbon"}},
		},
		RelatedParty: []models.RelatedParty{
			{ID: "ind-1", Role: "contact", ReferredType: "Individual"},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrganization failed: %v", err)
	}

	if organization.NameType != "legal" {
		t.Errorf("nameType = %q, want legal", organization.NameType)
	}
	if len(organization.PartyCharacteristic) != 1 || organization.PartyCharacteristic[0].Value != "enterprise" {
		t.Errorf("unexpected characteristics: %+v", organization.PartyCharacteristic)
	}
	if len(organization.ContactMedium) != 1 || organization.ContactMedium[0].Characteristic["city"] != "Lisbon" {
		t.Errorf("unexpected contact mediums: %+v", organization.ContactMedium)
	}
	if len(organization.RelatedParty) != 1 || organization.RelatedParty[0].ReferredType != "Individual" {
		t.Errorf("unexpected related parties: %+v", organization.RelatedParty)
	}
}

func TestUpdateIndividualReplacesChildren(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:  "Jane",
		FamilyName: "Smith",
		PartyCharacteristic: []models.Characteristic{
			{Name: "loyaltyTier", Value: "gold"},
		},
		ContactMedium: []models.ContactMedium{
			{MediumType: "email", Characteristic: map[string]interface{}{"emailAddress": "jane@example.com"}},
		},
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	replacement := []models.Characteristic{
		{Name: "loyaltyTier", Value: "platinum"},
		{Name: "language", Value: "pt"},
	}
	empty := []models.ContactMedium{}
	updated, err := db.UpdateIndividual(ctx, created.ID, &models.IndividualUpdate{
		PartyCharacteristic: &replacement,
		ContactMedium:       &empty,
	})
	if err != nil {
		t.Fatalf("UpdateIndividual failed: %v", err)
	}

	if len(updated.PartyCharacteristic) != 2 {
		t.Fatalf("characteristic count = %d, want 2", len(updated.PartyCharacteristic))
	}
	if len(updated.ContactMedium) != 0 {
		t.Errorf("contact mediums not cleared: %+v", updated.ContactMedium)
	}
	// An absent slice leaves the collection untouched.
	status := "validated"
	again, err := db.UpdateIndividual(ctx, created.ID, &models.IndividualUpdate{Status: &status})
	if err != nil {
		t.Fatalf("UpdateIndividual failed: %v", err)
	}
	if len(again.PartyCharacteristic) != 2 {
		t.Errorf("scalar-only patch disturbed characteristics: %+v", again.PartyCharacteristic)
	}
}

func TestDeleteIndividualRemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateIndividual(ctx, &models.IndividualCreate{
		GivenName:  "Jane",
		FamilyName: "Smith",
		PartyCharacteristic: []models.Characteristic{
			{Name: "loyaltyTier", Value: "gold"},
		},
		RelatedParty: []models.RelatedParty{
			{ID: "org-1", Role: "employer"},
		},
	})
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	deleted, err := db.DeleteIndividual(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteIndividual failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM party_characteristics WHERE party_id = ?`, created.ID).Scan(&count); err != nil {
		t.Fatalf("count characteristics failed: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned characteristics = %d, want 0", count)
	}
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM party_related_parties WHERE source_party_id = ?`, created.ID).Scan(&count); err != nil {
		t.Fatalf("count related parties failed: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned related parties = %d, want 0", count)
	}
}
