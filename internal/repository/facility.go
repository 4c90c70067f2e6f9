package repository

import (
	"context"
	"time"

	"ubuntuhub/internal/model"
)

// FacilityRepository persists bookable facilities.
type FacilityRepository interface {
	Create(ctx context.Context, f *model.Facility) (*model.Facility, error)
	FindByID(ctx context.Context, id string) (*model.Facility, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Facility], error)
}

// BookingRepository persists facility bookings.
type BookingRepository interface {
	// CreateIfAvailable inserts b unless a non-cancelled booking of the same facility
	// overlaps [b.StartTime, b.EndTime). The check and the insert run in one transaction
	// holding the facility row lock, so concurrent attempts on one facility serialise.
	// Returns sql.ErrNoRows if the facility does not exist and ErrConflict on overlap.
	CreateIfAvailable(ctx context.Context, b *model.FacilityBooking) (*model.FacilityBooking, error)

	FindByID(ctx context.Context, id string) (*model.FacilityBooking, error)

	// ListOverlapping returns non-cancelled bookings of facilityID that overlap [from, to),
	// ordered by start time.
	ListOverlapping(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error)

	// UpdateStatus sets the status and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.FacilityBooking, error)
}
