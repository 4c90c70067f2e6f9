package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// BusinessPostgres is a PostgreSQL implementation of repository.BusinessRepository.
type BusinessPostgres struct {
	db *sql.DB
}

// NewBusinessPostgres creates a new BusinessPostgres repository.
func NewBusinessPostgres(db *sql.DB) *BusinessPostgres {
	return &BusinessPostgres{db: db}
}

var _ repository.BusinessRepository = (*BusinessPostgres)(nil)

const businessColumns = `id, organization_id, name, description, category, contact_email, phone, website, address, created_at, updated_at`

func scanBusiness(s scanner) (*model.Business, error) {
	var b model.Business
	if err := s.Scan(
		&b.ID,
		&b.OrganizationID,
		&b.Name,
		&b.Description,
		&b.Category,
		&b.ContactEmail,
		&b.Phone,
		&b.Website,
		&b.Address,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessPostgres) Create(ctx context.Context, b *model.Business) (*model.Business, error) {
	const q = `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + businessColumns
	out, err := scanBusiness(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.OrganizationID,
		b.Name,
		b.Description,
		b.Category,
		b.ContactEmail,
		b.Phone,
		b.Website,
		b.Address,
		b.CreatedAt,
		b.UpdatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *BusinessPostgres) FindByID(ctx context.Context, id string) (*model.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return scanBusiness(r.db.QueryRowContext(ctx, q, id))
}

func (r *BusinessPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Business], error) {
	const qCount = `SELECT COUNT(*) FROM businesses WHERE organization_id = $1`
	const qList = `SELECT ` + businessColumns + ` FROM businesses
		WHERE organization_id = $1
		ORDER BY name ASC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanBusiness)
}

func (r *BusinessPostgres) Update(ctx context.Context, b *model.Business) (*model.Business, error) {
	const q = `
		UPDATE businesses
		SET name = $2, description = $3, category = $4, contact_email = $5,
		    phone = $6, website = $7, address = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + businessColumns
	return scanBusiness(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Name,
		b.Description,
		b.Category,
		b.ContactEmail,
		b.Phone,
		b.Website,
		b.Address,
		b.UpdatedAt,
	))
}

func (r *BusinessPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM businesses WHERE id = $1`, id)
}

// BusinessCardPostgres is a PostgreSQL implementation of repository.BusinessCardRepository.
type BusinessCardPostgres struct {
	db *sql.DB
}

func NewBusinessCardPostgres(db *sql.DB) *BusinessCardPostgres {
	return &BusinessCardPostgres{db: db}
}

var _ repository.BusinessCardRepository = (*BusinessCardPostgres)(nil)

const businessCardColumns = `id, business_id, headline, body, link_url, created_at`

func scanBusinessCard(s scanner) (*model.BusinessCard, error) {
	var c model.BusinessCard
	if err := s.Scan(&c.ID, &c.BusinessID, &c.Headline, &c.Body, &c.LinkURL, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a card. An unknown business surfaces as sql.ErrNoRows.
func (r *BusinessCardPostgres) Create(ctx context.Context, c *model.BusinessCard) (*model.BusinessCard, error) {
	const q = `
		INSERT INTO business_cards (` + businessCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + businessCardColumns
	out, err := scanBusinessCard(r.db.QueryRowContext(ctx, q,
		c.ID, c.BusinessID, c.Headline, c.Body, c.LinkURL, c.CreatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *BusinessCardPostgres) FindByID(ctx context.Context, id string) (*model.BusinessCard, error) {
	const q = `SELECT ` + businessCardColumns + ` FROM business_cards WHERE id = $1`
	return scanBusinessCard(r.db.QueryRowContext(ctx, q, id))
}

// ListByBusiness returns the newest cards first.
func (r *BusinessCardPostgres) ListByBusiness(ctx context.Context, businessID string, pq repository.PageQuery) (*repository.PageResult[model.BusinessCard], error) {
	const qCount = `SELECT COUNT(*) FROM business_cards WHERE business_id = $1`
	const qList = `SELECT ` + businessCardColumns + ` FROM business_cards
		WHERE business_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{businessID}, pq, scanBusinessCard)
}

func (r *BusinessCardPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM business_cards WHERE id = $1`, id)
}
