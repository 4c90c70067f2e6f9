package postgres

import (
	"context"
	"database/sql"
	"time"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// BookingPostgres is a PostgreSQL implementation of repository.BookingRepository.
type BookingPostgres struct {
	db *sql.DB
}

// NewBookingPostgres creates a new BookingPostgres repository.
func NewBookingPostgres(db *sql.DB) *BookingPostgres {
	return &BookingPostgres{db: db}
}

var _ repository.BookingRepository = (*BookingPostgres)(nil)

const bookingColumns = `id, facility_id, user_id, title, start_time, end_time, status, created_at`

// Half-open overlap: existing.start < candidate.end AND existing.end > candidate.start.
const overlapPredicate = `facility_id = $1 AND status <> 'cancelled' AND start_time < $3 AND end_time > $2`

func scanBooking(s scanner) (*model.FacilityBooking, error) {
	var b model.FacilityBooking
	var status string
	if err := s.Scan(
		&b.ID,
		&b.FacilityID,
		&b.UserID,
		&b.Title,
		&b.StartTime,
		&b.EndTime,
		&status,
		&b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.Status = model.BookingStatus(status)
	return &b, nil
}

func (r *BookingPostgres) CreateIfAvailable(ctx context.Context, b *model.FacilityBooking) (*model.FacilityBooking, error) {
	const qLock = `SELECT id FROM facilities WHERE id = $1 FOR UPDATE`
	const qOverlap = `SELECT EXISTS (SELECT 1 FROM facility_bookings WHERE ` + overlapPredicate + `)`
	const qInsert = `
		INSERT INTO facility_bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookingColumns

	var out *model.FacilityBooking
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var facilityID string
		if err := tx.QueryRowContext(ctx, qLock, b.FacilityID).Scan(&facilityID); err != nil {
			return err
		}

		var taken bool
		if err := tx.QueryRowContext(ctx, qOverlap, b.FacilityID, b.StartTime, b.EndTime).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return repository.ErrConflict
		}

		var err error
		out, err = scanBooking(tx.QueryRowContext(ctx, qInsert,
			b.ID,
			b.FacilityID,
			b.UserID,
			b.Title,
			b.StartTime,
			b.EndTime,
			string(b.Status),
			b.CreatedAt,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingPostgres) FindByID(ctx context.Context, id string) (*model.FacilityBooking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM facility_bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, q, id))
}

func (r *BookingPostgres) ListOverlapping(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM facility_bookings
		WHERE ` + overlapPredicate + `
		ORDER BY start_time ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, facilityID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FacilityBooking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *BookingPostgres) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.FacilityBooking, error) {
	const q = `UPDATE facility_bookings SET status = $2 WHERE id = $1 RETURNING ` + bookingColumns
	return scanBooking(r.db.QueryRowContext(ctx, q, id, string(status)))
}
