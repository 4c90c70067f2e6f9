package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// OrganizationPostgres is a PostgreSQL implementation of repository.OrganizationRepository.
type OrganizationPostgres struct {
	db *sql.DB
}

// NewOrganizationPostgres creates a new OrganizationPostgres repository.
func NewOrganizationPostgres(db *sql.DB) *OrganizationPostgres {
	return &OrganizationPostgres{db: db}
}

var _ repository.OrganizationRepository = (*OrganizationPostgres)(nil)

const organizationColumns = `id, name, description, location, contact_email, website, created_at, updated_at`

func scanOrganization(s scanner) (*model.Organization, error) {
	var o model.Organization
	if err := s.Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.Location,
		&o.ContactEmail,
		&o.Website,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationPostgres) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	const q = `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + organizationColumns
	return scanOrganization(r.db.QueryRowContext(ctx, q,
		org.ID,
		org.Name,
		org.Description,
		org.Location,
		org.ContactEmail,
		org.Website,
		org.CreatedAt,
		org.UpdatedAt,
	))
}

func (r *OrganizationPostgres) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	const q = `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	return scanOrganization(r.db.QueryRowContext(ctx, q, id))
}

// List returns organizations ordered by name.
func (r *OrganizationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Organization], error) {
	const qCount = `SELECT COUNT(*) FROM organizations`
	const qList = `SELECT ` + organizationColumns + ` FROM organizations
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2`
	return listPage(ctx, r.db, qCount, qList, nil, pq, scanOrganization)
}

func (r *OrganizationPostgres) Update(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	const q = `
		UPDATE organizations
		SET name = $2, description = $3, location = $4, contact_email = $5, website = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + organizationColumns
	return scanOrganization(r.db.QueryRowContext(ctx, q,
		org.ID,
		org.Name,
		org.Description,
		org.Location,
		org.ContactEmail,
		org.Website,
		org.UpdatedAt,
	))
}

func (r *OrganizationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM organizations WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
