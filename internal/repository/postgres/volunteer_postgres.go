package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// VolunteerPostgres is a PostgreSQL implementation of repository.VolunteerRepository.
type VolunteerPostgres struct {
	db *sql.DB
}

// NewVolunteerPostgres creates a new VolunteerPostgres repository.
func NewVolunteerPostgres(db *sql.DB) *VolunteerPostgres {
	return &VolunteerPostgres{db: db}
}

var _ repository.VolunteerRepository = (*VolunteerPostgres)(nil)

const opportunityColumns = `id, organization_id, title, description, location, starts_at, spots_available, spots_filled, created_at`

func scanOpportunity(s scanner) (*model.VolunteerOpportunity, error) {
	var o model.VolunteerOpportunity
	if err := s.Scan(
		&o.ID,
		&o.OrganizationID,
		&o.Title,
		&o.Description,
		&o.Location,
		&o.StartsAt,
		&o.SpotsAvailable,
		&o.SpotsFilled,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts an opportunity with no spots filled.
func (r *VolunteerPostgres) Create(ctx context.Context, o *model.VolunteerOpportunity) (*model.VolunteerOpportunity, error) {
	const q = `
		INSERT INTO volunteer_opportunities (` + opportunityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8)
		RETURNING ` + opportunityColumns
	out, err := scanOpportunity(r.db.QueryRowContext(ctx, q,
		o.ID,
		o.OrganizationID,
		o.Title,
		o.Description,
		o.Location,
		o.StartsAt,
		o.SpotsAvailable,
		o.CreatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *VolunteerPostgres) FindByID(ctx context.Context, id string) (*model.VolunteerOpportunity, error) {
	const q = `SELECT ` + opportunityColumns + ` FROM volunteer_opportunities WHERE id = $1`
	return scanOpportunity(r.db.QueryRowContext(ctx, q, id))
}

func (r *VolunteerPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.VolunteerOpportunity], error) {
	const qCount = `SELECT COUNT(*) FROM volunteer_opportunities WHERE organization_id = $1`
	const qList = `SELECT ` + opportunityColumns + ` FROM volunteer_opportunities
		WHERE organization_id = $1
		ORDER BY starts_at ASC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanOpportunity)
}

func (r *VolunteerPostgres) SignUp(ctx context.Context, s *model.VolunteerSignup) (*model.VolunteerSignup, error) {
	const qClaim = `
		UPDATE volunteer_opportunities
		SET spots_filled = spots_filled + 1
		WHERE id = $1 AND spots_filled < spots_available
		RETURNING spots_filled`
	const qExists = `SELECT EXISTS (SELECT 1 FROM volunteer_opportunities WHERE id = $1)`
	const qInsert = `
		INSERT INTO volunteer_signups (id, opportunity_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, opportunity_id, user_id, created_at`

	var out model.VolunteerSignup
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var filled int
		err := tx.QueryRowContext(ctx, qClaim, s.OpportunityID).Scan(&filled)
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if err := tx.QueryRowContext(ctx, qExists, s.OpportunityID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return sql.ErrNoRows
			}
			return repository.ErrNoCapacity
		}
		if err != nil {
			if isCheckViolation(err) {
				return repository.ErrNoCapacity
			}
			return err
		}

		err = tx.QueryRowContext(ctx, qInsert, s.ID, s.OpportunityID, s.UserID, s.CreatedAt).
			Scan(&out.ID, &out.OpportunityID, &out.UserID, &out.CreatedAt)
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *VolunteerPostgres) Cancel(ctx context.Context, opportunityID, userID string) error {
	const qDelete = `DELETE FROM volunteer_signups WHERE opportunity_id = $1 AND user_id = $2`
	const qRelease = `
		UPDATE volunteer_opportunities
		SET spots_filled = spots_filled - 1
		WHERE id = $1 AND spots_filled > 0`

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, qDelete, opportunityID, userID)
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
		_, err = tx.ExecContext(ctx, qRelease, opportunityID)
		return err
	})
}
