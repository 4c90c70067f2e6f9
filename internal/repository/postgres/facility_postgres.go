package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// FacilityPostgres is a PostgreSQL implementation of repository.FacilityRepository.
type FacilityPostgres struct {
	db *sql.DB
}

// NewFacilityPostgres creates a new FacilityPostgres repository.
func NewFacilityPostgres(db *sql.DB) *FacilityPostgres {
	return &FacilityPostgres{db: db}
}

var _ repository.FacilityRepository = (*FacilityPostgres)(nil)

const facilityColumns = `id, organization_id, name, description, location, capacity, created_at`

func scanFacility(s scanner) (*model.Facility, error) {
	var f model.Facility
	if err := s.Scan(
		&f.ID,
		&f.OrganizationID,
		&f.Name,
		&f.Description,
		&f.Location,
		&f.Capacity,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a facility. An unknown organization surfaces as sql.ErrNoRows.
func (r *FacilityPostgres) Create(ctx context.Context, f *model.Facility) (*model.Facility, error) {
	const q = `
		INSERT INTO facilities (` + facilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + facilityColumns
	out, err := scanFacility(r.db.QueryRowContext(ctx, q,
		f.ID,
		f.OrganizationID,
		f.Name,
		f.Description,
		f.Location,
		f.Capacity,
		f.CreatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *FacilityPostgres) FindByID(ctx context.Context, id string) (*model.Facility, error) {
	const q = `SELECT ` + facilityColumns + ` FROM facilities WHERE id = $1`
	return scanFacility(r.db.QueryRowContext(ctx, q, id))
}

func (r *FacilityPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Facility], error) {
	const qCount = `SELECT COUNT(*) FROM facilities WHERE organization_id = $1`
	const qList = `SELECT ` + facilityColumns + ` FROM facilities
		WHERE organization_id = $1
		ORDER BY name ASC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanFacility)
}
