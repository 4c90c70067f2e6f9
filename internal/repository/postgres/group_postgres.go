package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// GroupPostgres is a PostgreSQL implementation of repository.GroupRepository.
type GroupPostgres struct {
	db *sql.DB
}

// NewGroupPostgres creates a new GroupPostgres repository.
func NewGroupPostgres(db *sql.DB) *GroupPostgres {
	return &GroupPostgres{db: db}
}

var _ repository.GroupRepository = (*GroupPostgres)(nil)

const groupColumns = `id, organization_id, name, description, is_private, created_at, updated_at`

func scanGroup(s scanner) (*model.Group, error) {
	var g model.Group
	if err := s.Scan(
		&g.ID,
		&g.OrganizationID,
		&g.Name,
		&g.Description,
		&g.IsPrivate,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a group. Names are unique per organization; a clash is
// repository.ErrDuplicate.
func (r *GroupPostgres) Create(ctx context.Context, g *model.Group) (*model.Group, error) {
	const q = `
		INSERT INTO groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + groupColumns
	out, err := scanGroup(r.db.QueryRowContext(ctx, q,
		g.ID,
		g.OrganizationID,
		g.Name,
		g.Description,
		g.IsPrivate,
		g.CreatedAt,
		g.UpdatedAt,
	))
	switch {
	case isForeignKeyViolation(err):
		return nil, sql.ErrNoRows
	case isUniqueViolation(err):
		return nil, repository.ErrDuplicate
	}
	return out, err
}

func (r *GroupPostgres) FindByID(ctx context.Context, id string) (*model.Group, error) {
	const q = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	return scanGroup(r.db.QueryRowContext(ctx, q, id))
}

func (r *GroupPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Group], error) {
	const qCount = `SELECT COUNT(*) FROM groups WHERE organization_id = $1`
	const qList = `SELECT ` + groupColumns + ` FROM groups
		WHERE organization_id = $1
		ORDER BY name ASC, id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanGroup)
}

func (r *GroupPostgres) Update(ctx context.Context, g *model.Group) (*model.Group, error) {
	const q = `
		UPDATE groups
		SET name = $2, description = $3, is_private = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + groupColumns
	out, err := scanGroup(r.db.QueryRowContext(ctx, q,
		g.ID,
		g.Name,
		g.Description,
		g.IsPrivate,
		g.UpdatedAt,
	))
	if isUniqueViolation(err) {
		return nil, repository.ErrDuplicate
	}
	return out, err
}

func (r *GroupPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM groups WHERE id = $1`, id)
}
