package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `id, organization_id, title, description, location, starts_at, ends_at, capacity, created_at`

const eventWithCount = `SELECT e.id, e.organization_id, e.title, e.description, e.location, e.starts_at, e.ends_at, e.capacity, e.created_at,
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id)
	FROM events e`

func scanEvent(s scanner) (*model.Event, error) {
	var e model.Event
	if err := s.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.Capacity,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEventWithCount(s scanner) (*model.Event, error) {
	var e model.Event
	if err := s.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.Capacity,
		&e.CreatedAt,
		&e.RegistrationCount,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventPostgres) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + eventColumns
	out, err := scanEvent(r.db.QueryRowContext(ctx, q,
		e.ID,
		e.OrganizationID,
		e.Title,
		e.Description,
		e.Location,
		e.StartsAt,
		e.EndsAt,
		e.Capacity,
		e.CreatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

func (r *EventPostgres) FindByID(ctx context.Context, id string) (*model.Event, error) {
	const q = eventWithCount + ` WHERE e.id = $1`
	return scanEventWithCount(r.db.QueryRowContext(ctx, q, id))
}

func (r *EventPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Event], error) {
	const qCount = `SELECT COUNT(*) FROM events WHERE organization_id = $1`
	const qList = eventWithCount + `
		WHERE e.organization_id = $1
		ORDER BY e.starts_at ASC, e.id ASC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanEventWithCount)
}

// Register locks the event row so the capacity check and the insert cannot interleave
// with another registration for the same event.
func (r *EventPostgres) Register(ctx context.Context, reg *model.EventRegistration) (*model.EventRegistration, error) {
	const qLock = `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	const qCount = `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`
	const qInsert = `
		INSERT INTO event_registrations (id, event_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, user_id, created_at`

	var out model.EventRegistration
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var capacity int
		if err := tx.QueryRowContext(ctx, qLock, reg.EventID).Scan(&capacity); err != nil {
			return err
		}

		if capacity > 0 {
			var registered int
			if err := tx.QueryRowContext(ctx, qCount, reg.EventID).Scan(&registered); err != nil {
				return err
			}
			if registered >= capacity {
				return repository.ErrNoCapacity
			}
		}

		err := tx.QueryRowContext(ctx, qInsert, reg.ID, reg.EventID, reg.UserID, reg.CreatedAt).
			Scan(&out.ID, &out.EventID, &out.UserID, &out.CreatedAt)
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

func (r *EventPostgres) Unregister(ctx context.Context, eventID, userID string) error {
	const q = `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, eventID, userID)
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
