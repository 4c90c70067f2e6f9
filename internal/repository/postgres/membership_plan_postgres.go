package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// MembershipPlanPostgres is a PostgreSQL implementation of repository.MembershipPlanRepository.
type MembershipPlanPostgres struct {
	db *sql.DB
}

// NewMembershipPlanPostgres creates a new MembershipPlanPostgres repository.
func NewMembershipPlanPostgres(db *sql.DB) *MembershipPlanPostgres {
	return &MembershipPlanPostgres{db: db}
}

var _ repository.MembershipPlanRepository = (*MembershipPlanPostgres)(nil)

const membershipPlanColumns = `id, organization_id, name, description, price_cents, billing_period, created_at, updated_at`

func scanMembershipPlan(s scanner) (*model.MembershipPlan, error) {
	var p model.MembershipPlan
	if err := s.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.BillingPeriod,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MembershipPlanPostgres) Create(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error) {
	const q = `
		INSERT INTO membership_plans (` + membershipPlanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + membershipPlanColumns
	out, err := scanMembershipPlan(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.OrganizationID,
		p.Name,
		p.Description,
		p.PriceCents,
		p.BillingPeriod,
		p.CreatedAt,
		p.UpdatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *MembershipPlanPostgres) FindByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	const q = `SELECT ` + membershipPlanColumns + ` FROM membership_plans WHERE id = $1`
	return scanMembershipPlan(r.db.QueryRowContext(ctx, q, id))
}

// ListByOrganization orders plans from cheapest to most expensive.
func (r *MembershipPlanPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.MembershipPlan], error) {
	const qCount = `SELECT COUNT(*) FROM membership_plans WHERE organization_id = $1`
	const qList = `SELECT ` + membershipPlanColumns + ` FROM membership_plans
		WHERE organization_id = $1
		ORDER BY price_cents ASC, name ASC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanMembershipPlan)
}

func (r *MembershipPlanPostgres) Update(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error) {
	const q = `
		UPDATE membership_plans
		SET name = $2, description = $3, price_cents = $4, billing_period = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + membershipPlanColumns
	return scanMembershipPlan(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Description,
		p.PriceCents,
		p.BillingPeriod,
		p.UpdatedAt,
	))
}

func (r *MembershipPlanPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM membership_plans WHERE id = $1`, id)
}
