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

const partyDomain = "partyManagement"

// Individuals and organizations share the parties table. Every query below
// filters on party_type so an id of the wrong kind behaves exactly like a
// missing row. Both party kinds carry the same three child collections
// (party_characteristics, party_contact_mediums, party_related_parties)
// keyed by the party id.

// CreateIndividual inserts an individual party with its child collections
// and returns the persisted resource.
func (db *DB) CreateIndividual(ctx context.Context, req *models.IndividualCreate) (*models.Individual, error) {
	done := trackQuery("create", "parties")

	id := uuid.New().String()
	now := time.Now().UTC()
	validFrom, validTo := validForBounds(req.ValidFor)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO parties (
			id, party_type, given_name, family_name, middle_name, full_name,
			formatted_name, title, gender, marital_status, nationality,
			country_of_birth, place_of_birth, location, birth_date,
			death_date, exists_from, exists_to, status, schema_location,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, models.PartyTypeIndividual, req.GivenName, req.FamilyName,
		nullable(req.MiddleName), nullable(req.FullName),
		nullable(req.FormattedName), nullable(req.Title),
		nullable(req.Gender), nullable(req.MaritalStatus),
		nullable(req.Nationality), nullable(req.CountryOfBirth),
		nullable(req.PlaceOfBirth), nullable(req.Location),
		nullableTime(req.BirthDate), nullableTime(req.DeathDate),
		validFrom, validTo, nullable(req.Status),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert individual: %w", err)
	}

	href := db.href(partyDomain, "individual", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE parties SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set individual href: %w", err)
	}

	if err := db.insertPartyChildren(ctx, id, req.PartyCharacteristic, req.ContactMedium, req.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetIndividual(ctx, id)
}

// GetIndividual returns the individual with the given id, or nil when the id
// is absent or belongs to an organization.
func (db *DB) GetIndividual(ctx context.Context, id string) (*models.Individual, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, given_name, family_name, middle_name, full_name,
		       formatted_name, title, gender, marital_status, nationality,
		       country_of_birth, place_of_birth, location, birth_date,
		       death_date, exists_from, exists_to, status, schema_location
		FROM parties WHERE id = ? AND party_type = ?`,
		id, models.PartyTypeIndividual)

	individual, err := scanIndividual(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get individual: %w", err)
	}

	if err := db.loadPartyChildren(ctx, individual.ID,
		&individual.PartyCharacteristic, &individual.ContactMedium,
		&individual.RelatedParty); err != nil {
		return nil, err
	}
	return individual, nil
}

// ListIndividuals returns one page of individuals plus the unfiltered total
// count of individuals.
func (db *DB) ListIndividuals(ctx context.Context, offset, limit int) ([]models.Individual, int, error) {
	done := trackQuery("list", "parties")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM parties WHERE party_type = ?`,
		models.PartyTypeIndividual).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count individuals: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, given_name, family_name, middle_name, full_name,
		       formatted_name, title, gender, marital_status, nationality,
		       country_of_birth, place_of_birth, location, birth_date,
		       death_date, exists_from, exists_to, status, schema_location
		FROM parties WHERE party_type = ? LIMIT ? OFFSET ?`,
		models.PartyTypeIndividual, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list individuals: %w", err)
	}
	defer rows.Close()

	individuals := []models.Individual{}
	for rows.Next() {
		individual, err := scanIndividual(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan individual: %w", err)
		}
		individuals = append(individuals, *individual)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate individuals: %w", err)
	}

	for i := range individuals {
		if err := db.loadPartyChildren(ctx, individuals[i].ID,
			&individuals[i].PartyCharacteristic, &individuals[i].ContactMedium,
			&individuals[i].RelatedParty); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return individuals, total, nil
}

// UpdateIndividual applies a partial update. Returns nil if the id is absent
// or belongs to an organization.
func (db *DB) UpdateIndividual(ctx context.Context, id string, patch *models.IndividualUpdate) (*models.Individual, error) {
	existing, err := db.GetIndividual(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "parties")

	now := time.Now().UTC()
	set := []string{"updated_at = ?"}
	args := []interface{}{now}

	if patch.GivenName != nil {
		set = append(set, "given_name = ?")
		args = append(args, *patch.GivenName)
	}
	if patch.FamilyName != nil {
		set = append(set, "family_name = ?")
		args = append(args, *patch.FamilyName)
	}
	if patch.MiddleName != nil {
		set = append(set, "middle_name = ?")
		args = append(args, nullable(*patch.MiddleName))
	}
	if patch.FullName != nil {
		set = append(set, "full_name = ?")
		args = append(args, nullable(*patch.FullName))
	}
	if patch.FormattedName != nil {
		set = append(set, "formatted_name = ?")
		args = append(args, nullable(*patch.FormattedName))
	}
	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, nullable(*patch.Title))
	}
	if patch.Gender != nil {
		set = append(set, "gender = ?")
		args = append(args, nullable(*patch.Gender))
	}
	if patch.MaritalStatus != nil {
		set = append(set, "marital_status = ?")
		args = append(args, nullable(*patch.MaritalStatus))
	}
	if patch.Nationality != nil {
		set = append(set, "nationality = ?")
		args = append(args, nullable(*patch.Nationality))
	}
	if patch.CountryOfBirth != nil {
		set = append(set, "country_of_birth = ?")
		args = append(args, nullable(*patch.CountryOfBirth))
	}
	if patch.PlaceOfBirth != nil {
		set = append(set, "place_of_birth = ?")
		args = append(args, nullable(*patch.PlaceOfBirth))
	}
	if patch.Location != nil {
		set = append(set, "location = ?")
		args = append(args, nullable(*patch.Location))
	}
	if patch.BirthDate != nil {
		set = append(set, "birth_date = ?")
		args = append(args, *patch.BirthDate)
	}
	if patch.DeathDate != nil {
		set = append(set, "death_date = ?")
		args = append(args, *patch.DeathDate)
	}
	if patch.ValidFor != nil {
		validFrom, validTo := validForBounds(patch.ValidFor)
		set = append(set, "exists_from = ?", "exists_to = ?")
		args = append(args, validFrom, validTo)
	}
	if patch.Status != nil {
		set = append(set, "status = ?")
		args = append(args, nullable(*patch.Status))
	}

	args = append(args, id, models.PartyTypeIndividual)
	query := "UPDATE parties SET " + strings.Join(set, ", ") + " WHERE id = ? AND party_type = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update individual: %w", err)
	}

	if err := db.replacePartyChildren(ctx, id, patch.PartyCharacteristic, patch.ContactMedium, patch.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetIndividual(ctx, id)
}

// DeleteIndividual removes the individual and its child collections. Returns
// false without error when the id is absent or belongs to an organization.
func (db *DB) DeleteIndividual(ctx context.Context, id string) (bool, error) {
	return db.deleteParty(ctx, id, models.PartyTypeIndividual)
}

// CreateOrganization inserts an organization party with its child
// collections and returns the persisted resource.
func (db *DB) CreateOrganization(ctx context.Context, req *models.OrganizationCreate) (*models.Organization, error) {
	done := trackQuery("create", "parties")

	id := uuid.New().String()
	now := time.Now().UTC()
	existsFrom, existsTo := validForBounds(req.ExistsDuring)

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO parties (
			id, party_type, name, name_type, trading_name, organization_type,
			is_legal_entity, is_head_office, exists_from, exists_to,
			status, schema_location, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, models.PartyTypeOrganization, req.Name, nullable(req.NameType),
		nullable(req.TradingName), nullable(req.OrganizationType),
		nullableBool(req.IsLegalEntity), nullableBool(req.IsHeadOffice),
		existsFrom, existsTo, nullable(req.Status),
		nullable(req.SchemaLocation), now, now)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	href := db.href(partyDomain, "organization", id)
	if _, err := db.conn.ExecContext(ctx, `UPDATE parties SET href = ? WHERE id = ?`, href, id); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to set organization href: %w", err)
	}

	if err := db.insertPartyChildren(ctx, id, req.PartyCharacteristic, req.ContactMedium, req.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetOrganization(ctx, id)
}

// GetOrganization returns the organization with the given id, or nil when
// the id is absent or belongs to an individual.
func (db *DB) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, href, name, name_type, trading_name, organization_type,
		       is_legal_entity, is_head_office, exists_from, exists_to,
		       status, schema_location
		FROM parties WHERE id = ? AND party_type = ?`,
		id, models.PartyTypeOrganization)

	organization, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := db.loadPartyChildren(ctx, organization.ID,
		&organization.PartyCharacteristic, &organization.ContactMedium,
		&organization.RelatedParty); err != nil {
		return nil, err
	}
	return organization, nil
}

// ListOrganizations returns one page of organizations plus the unfiltered
// total count of organizations.
func (db *DB) ListOrganizations(ctx context.Context, offset, limit int) ([]models.Organization, int, error) {
	done := trackQuery("list", "parties")

	var total int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM parties WHERE party_type = ?`,
		models.PartyTypeOrganization).Scan(&total); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, href, name, name_type, trading_name, organization_type,
		       is_legal_entity, is_head_office, exists_from, exists_to,
		       status, schema_location
		FROM parties WHERE party_type = ? LIMIT ? OFFSET ?`,
		models.PartyTypeOrganization, limit, offset)
	if err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	organizations := []models.Organization{}
	for rows.Next() {
		organization, err := scanOrganization(rows)
		if err != nil {
			done(err)
			return nil, 0, fmt.Errorf("failed to scan organization: %w", err)
		}
		organizations = append(organizations, *organization)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, 0, fmt.Errorf("failed to iterate organizations: %w", err)
	}

	for i := range organizations {
		if err := db.loadPartyChildren(ctx, organizations[i].ID,
			&organizations[i].PartyCharacteristic, &organizations[i].ContactMedium,
			&organizations[i].RelatedParty); err != nil {
			done(err)
			return nil, 0, err
		}
	}

	done(nil)
	return organizations, total, nil
}

// UpdateOrganization applies a partial update. Returns nil if the id is
// absent or belongs to an individual.
func (db *DB) UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationUpdate) (*models.Organization, error) {
	existing, err := db.GetOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	done := trackQuery("update", "parties")

	now := time.Now().UTC()
	set := []string{"updated_at = ?"}
	args := []interface{}{now}

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.NameType != nil {
		set = append(set, "name_type = ?")
		args = append(args, nullable(*patch.NameType))
	}
	if patch.TradingName != nil {
		set = append(set, "trading_name = ?")
		args = append(args, nullable(*patch.TradingName))
	}
	if patch.OrganizationType != nil {
		set = append(set, "organization_type = ?")
		args = append(args, nullable(*patch.OrganizationType))
	}
	if patch.IsLegalEntity != nil {
		set = append(set, "is_legal_entity = ?")
		args = append(args, *patch.IsLegalEntity)
	}
	if patch.IsHeadOffice != nil {
		set = append(set, "is_head_office = ?")
		args = append(args, *patch.IsHeadOffice)
	}
	if patch.ExistsDuring != nil {
		existsFrom, existsTo := validForBounds(patch.ExistsDuring)
		set = append(set, "exists_from = ?", "exists_to = ?")
		args = append(args, existsFrom, existsTo)
	}
	if patch.Status != nil {
		set = append(set, "status = ?")
		args = append(args, nullable(*patch.Status))
	}

	args = append(args, id, models.PartyTypeOrganization)
	query := "UPDATE parties SET " + strings.Join(set, ", ") + " WHERE id = ? AND party_type = ?"
	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		done(err)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	if err := db.replacePartyChildren(ctx, id, patch.PartyCharacteristic, patch.ContactMedium, patch.RelatedParty); err != nil {
		done(err)
		return nil, err
	}

	done(nil)
	return db.GetOrganization(ctx, id)
}

// DeleteOrganization removes the organization and its child collections.
// Returns false without error when the id is absent or belongs to an
// individual.
func (db *DB) DeleteOrganization(ctx context.Context, id string) (bool, error) {
	return db.deleteParty(ctx, id, models.PartyTypeOrganization)
}

func (db *DB) deleteParty(ctx context.Context, id, partyType string) (bool, error) {
	done := trackQuery("delete", "parties")

	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM parties WHERE id = ? AND party_type = ?`,
		id, partyType).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		done(nil)
		return false, nil
	}
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to check party existence: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_characteristics WHERE party_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete party children: %w", err)
	}
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_contact_mediums WHERE party_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete party children: %w", err)
	}
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_related_parties WHERE source_party_id = ?`, id); err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete party children: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, `DELETE FROM parties WHERE id = ? AND party_type = ?`, id, partyType)
	if err != nil {
		done(err)
		return false, fmt.Errorf("failed to delete party: %w", err)
	}
	if err := checkRowsAffected(result, "delete party"); err != nil {
		done(err)
		return false, err
	}

	done(nil)
	return true, nil
}

func scanIndividual(row interface{ Scan(...interface{}) error }) (*models.Individual, error) {
	var (
		individual             models.Individual
		href, middleName       sql.NullString
		fullName               sql.NullString
		formattedName          sql.NullString
		title, gender          sql.NullString
		maritalStatus          sql.NullString
		nationality            sql.NullString
		countryOfBirth         sql.NullString
		placeOfBirth, location sql.NullString
		status, schemaLocation sql.NullString
		birthDate, deathDate   sql.NullTime
		validFrom, validTo     sql.NullTime
	)

	err := row.Scan(&individual.ID, &href, &individual.GivenName,
		&individual.FamilyName, &middleName, &fullName, &formattedName,
		&title, &gender, &maritalStatus, &nationality, &countryOfBirth,
		&placeOfBirth, &location, &birthDate, &deathDate, &validFrom,
		&validTo, &status, &schemaLocation)
	if err != nil {
		return nil, err
	}

	individual.Href = stringValue(href)
	individual.MiddleName = stringValue(middleName)
	individual.FullName = stringValue(fullName)
	individual.FormattedName = stringValue(formattedName)
	individual.Title = stringValue(title)
	individual.Gender = stringValue(gender)
	individual.MaritalStatus = stringValue(maritalStatus)
	individual.Nationality = stringValue(nationality)
	individual.CountryOfBirth = stringValue(countryOfBirth)
	individual.PlaceOfBirth = stringValue(placeOfBirth)
	individual.Location = stringValue(location)
	individual.Status = stringValue(status)
	individual.SchemaLocation = stringValue(schemaLocation)
	individual.BirthDate = timeValue(birthDate)
	individual.DeathDate = timeValue(deathDate)
	individual.ValidFor = buildValidFor(validFrom, validTo)
	individual.Type = models.PartyTypeIndividual
	individual.BaseType = "Party"
	return &individual, nil
}

func scanOrganization(row interface{ Scan(...interface{}) error }) (*models.Organization, error) {
	var (
		organization                models.Organization
		href, nameType              sql.NullString
		tradingName                 sql.NullString
		organizationType            sql.NullString
		status, schemaLocation      sql.NullString
		isLegalEntity, isHeadOffice sql.NullBool
		existsFrom, existsTo        sql.NullTime
	)

	err := row.Scan(&organization.ID, &href, &organization.Name, &nameType,
		&tradingName, &organizationType, &isLegalEntity, &isHeadOffice,
		&existsFrom, &existsTo, &status, &schemaLocation)
	if err != nil {
		return nil, err
	}

	organization.Href = stringValue(href)
	organization.NameType = stringValue(nameType)
	organization.TradingName = stringValue(tradingName)
	organization.OrganizationType = stringValue(organizationType)
	organization.Status = stringValue(status)
	organization.SchemaLocation = stringValue(schemaLocation)
	organization.IsLegalEntity = boolValue(isLegalEntity)
	organization.IsHeadOffice = boolValue(isHeadOffice)
	organization.ExistsDuring = buildValidFor(existsFrom, existsTo)
	organization.Type = models.PartyTypeOrganization
	organization.BaseType = "Party"
	return &organization, nil
}

// insertPartyChildren writes all three child collections for a freshly
// created party row.
func (db *DB) insertPartyChildren(ctx context.Context, partyID string,
	chars []models.Characteristic, mediums []models.ContactMedium,
	parties []models.RelatedParty) error {
	if err := db.insertPartyCharacteristics(ctx, partyID, chars); err != nil {
		return err
	}
	if err := db.insertPartyContactMediums(ctx, partyID, mediums); err != nil {
		return err
	}
	return db.insertPartyRelatedParties(ctx, partyID, parties)
}

// replacePartyChildren clears and reinserts each child collection for which
// the patch carries a non-nil slice. A nil slice leaves the collection
// untouched; an empty slice empties it.
func (db *DB) replacePartyChildren(ctx context.Context, partyID string,
	chars *[]models.Characteristic, mediums *[]models.ContactMedium,
	parties *[]models.RelatedParty) error {
	if chars != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_characteristics WHERE party_id = ?`, partyID); err != nil {
			return fmt.Errorf("failed to clear party characteristics: %w", err)
		}
		if err := db.insertPartyCharacteristics(ctx, partyID, *chars); err != nil {
			return err
		}
	}
	if mediums != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_contact_mediums WHERE party_id = ?`, partyID); err != nil {
			return fmt.Errorf("failed to clear party contact mediums: %w", err)
		}
		if err := db.insertPartyContactMediums(ctx, partyID, *mediums); err != nil {
			return err
		}
	}
	if parties != nil {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM party_related_parties WHERE source_party_id = ?`, partyID); err != nil {
			return fmt.Errorf("failed to clear party related parties: %w", err)
		}
		if err := db.insertPartyRelatedParties(ctx, partyID, *parties); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) loadPartyChildren(ctx context.Context, partyID string,
	chars *[]models.Characteristic, mediums *[]models.ContactMedium,
	parties *[]models.RelatedParty) error {
	characteristics, err := db.queryPartyCharacteristics(ctx, partyID)
	if err != nil {
		return err
	}
	*chars = characteristics

	contactMediums, err := db.queryPartyContactMediums(ctx, partyID)
	if err != nil {
		return err
	}
	*mediums = contactMediums

	relatedParties, err := db.queryRelatedParties(ctx, `
		SELECT party_id, href, name, role, referred_type
		FROM party_related_parties WHERE source_party_id = ?`, partyID)
	if err != nil {
		return fmt.Errorf("failed to load party related parties: %w", err)
	}
	*parties = relatedParties
	return nil
}

func (db *DB) queryPartyCharacteristics(ctx context.Context, partyID string) ([]models.Characteristic, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, value_type, value
		FROM party_characteristics WHERE party_id = ?`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party characteristics: %w", err)
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
			return nil, fmt.Errorf("failed to scan party characteristic: %w", err)
		}
		char.ValueType = stringValue(valueType)
		if err := unmarshalColumn(value, &char.Value); err != nil {
			return nil, err
		}
		characteristics = append(characteristics, char)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate party characteristics: %w", err)
	}
	return characteristics, nil
}

func (db *DB) queryPartyContactMediums(ctx context.Context, partyID string) ([]models.ContactMedium, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT medium_type, preferred, characteristic, valid_from, valid_to
		FROM party_contact_mediums WHERE party_id = ?`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party contact mediums: %w", err)
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
			return nil, fmt.Errorf("failed to scan party contact medium: %w", err)
		}
		medium.Preferred = boolValue(preferred)
		if err := unmarshalColumn(characteristic, &medium.Characteristic); err != nil {
			return nil, err
		}
		medium.ValidFor = buildValidFor(validFrom, validTo)
		mediums = append(mediums, medium)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate party contact mediums: %w", err)
	}
	return mediums, nil
}

func (db *DB) insertPartyCharacteristics(ctx context.Context, partyID string, chars []models.Characteristic) error {
	for _, char := range chars {
		value, err := marshalOrNil(char.Value)
		if err != nil {
			return err
		}
		_, err = db.conn.ExecContext(ctx, `
			INSERT INTO party_characteristics (id, party_id, name, value_type, value)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), partyID, char.Name, nullable(char.ValueType), value)
		if err != nil {
			return fmt.Errorf("failed to insert party characteristic: %w", err)
		}
	}
	return nil
}

func (db *DB) insertPartyContactMediums(ctx context.Context, partyID string, mediums []models.ContactMedium) error {
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
			INSERT INTO party_contact_mediums (id, party_id, medium_type, preferred, characteristic, valid_from, valid_to)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), partyID, medium.MediumType,
			nullableBool(medium.Preferred), characteristic, validFrom, validTo)
		if err != nil {
			return fmt.Errorf("failed to insert party contact medium: %w", err)
		}
	}
	return nil
}

func (db *DB) insertPartyRelatedParties(ctx context.Context, sourcePartyID string, parties []models.RelatedParty) error {
	for _, party := range parties {
		referredType := party.ReferredType
		if referredType == "" {
			referredType = "Party"
		}
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO party_related_parties (id, source_party_id, party_id, href, name, role, referred_type)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), sourcePartyID, party.ID, nullable(party.Href),
			nullable(party.Name), nullable(party.Role), referredType)
		if err != nil {
			return fmt.Errorf("failed to insert party related party: %w", err)
		}
	}
	return nil
}
