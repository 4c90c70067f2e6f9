package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ubuntuhub/internal/availability"
	"ubuntuhub/internal/metrics"
	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// defaultBookingWindow is the range ListBookings covers when no end is given.
const defaultBookingWindow = 7 * 24 * time.Hour

// BookingInput describes a requested reservation of [StartTime, EndTime).
type BookingInput struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Availability is the answer to "is this facility free for the interval".
type Availability struct {
	FacilityID string                  `json:"facility_id"`
	Start      time.Time               `json:"start"`
	End        time.Time               `json:"end"`
	Available  bool                    `json:"available"`
	Conflicts  []model.FacilityBooking `json:"conflicts"`
}

// BookingService reserves facilities. No two non-cancelled bookings of one facility
// ever overlap.
type BookingService interface {
	CheckAvailability(ctx context.Context, facilityID string, start, end time.Time) (*Availability, error)
	CreateBooking(ctx context.Context, facilityID, userID string, in BookingInput) (*model.FacilityBooking, error)
	// CancelBooking marks the booking cancelled, freeing its slot. Cancelling twice is a no-op.
	CancelBooking(ctx context.Context, bookingID, userID string) (*model.FacilityBooking, error)
	// ListBookings returns the non-cancelled bookings overlapping [from, to). A zero from
	// means now and a zero to means one week after from.
	ListBookings(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error)
}

type bookingService struct {
	facilities  repository.FacilityRepository
	bookings    repository.BookingRepository
	maxDuration time.Duration
	metrics     *metrics.Domain
	now         func() time.Time
}

// NewBookingService builds a BookingService. maxDuration <= 0 disables the length limit.
func NewBookingService(facilities repository.FacilityRepository, bookings repository.BookingRepository, maxDuration time.Duration, m *metrics.Domain) BookingService {
	return &bookingService{
		facilities:  facilities,
		bookings:    bookings,
		maxDuration: maxDuration,
		metrics:     m,
		now:         utcNow,
	}
}

func (s *bookingService) interval(start, end time.Time) (availability.Interval, error) {
	iv := availability.Interval{Start: start.UTC(), End: end.UTC()}
	if start.IsZero() || end.IsZero() {
		return iv, fmt.Errorf("%w: start and end are required", ErrInvalidInterval)
	}
	if err := iv.Validate(s.maxDuration); err != nil {
		if errors.Is(err, availability.ErrTooLong) {
			return iv, fmt.Errorf("%w: %v (%s)", ErrInvalidInterval, err, s.maxDuration)
		}
		return iv, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	return iv, nil
}

func (s *bookingService) facility(ctx context.Context, id string) (*model.Facility, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.facilities.FindByID(ctx, canonicalID(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, facilityID string, start, end time.Time) (*Availability, error) {
	iv, err := s.interval(start, end)
	if err != nil {
		return nil, err
	}
	f, err := s.facility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookings.ListOverlapping(ctx, f.ID, iv.Start, iv.End)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	conflicts := availability.Conflicts(existing, f.ID, iv)
	if conflicts == nil {
		conflicts = []model.FacilityBooking{}
	}
	return &Availability{
		FacilityID: f.ID,
		Start:      iv.Start,
		End:        iv.End,
		Available:  len(conflicts) == 0,
		Conflicts:  conflicts,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, facilityID, userID string, in BookingInput) (b *model.FacilityBooking, err error) {
	ctx, span := startSpan(ctx, "BookingService.CreateBooking", trace.WithAttributes(
		attribute.String("facility.id", facilityID),
	))
	defer func() { endSpan(span, err) }()

	if facilityID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	facilityID, userID = canonicalID(facilityID), canonicalID(userID)
	title, err := requireText("title", in.Title, 200)
	if err != nil {
		s.metrics.Booking(metrics.OutcomeInvalid)
		return nil, err
	}
	iv, err := s.interval(in.StartTime, in.EndTime)
	if err != nil {
		s.metrics.Booking(metrics.OutcomeInvalid)
		return nil, err
	}
	if iv.Start.Before(s.now()) {
		s.metrics.Booking(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: start must not be in the past", ErrInvalidInterval)
	}

	b, err = s.bookings.CreateIfAvailable(ctx, &model.FacilityBooking{
		ID:         uuid.NewString(),
		FacilityID: facilityID,
		UserID:     userID,
		Title:      title,
		StartTime:  iv.Start,
		EndTime:    iv.End,
		Status:     model.BookingConfirmed,
		CreatedAt:  s.now(),
	})
	switch {
	case err == nil:
		s.metrics.Booking(metrics.OutcomeAccepted)
		return b, nil
	case errors.Is(err, repository.ErrConflict):
		s.metrics.Booking(metrics.OutcomeRejected)
		return nil, ErrSlotUnavailable
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	default:
		s.metrics.Booking(metrics.OutcomeError)
		return nil, fmt.Errorf("create booking: %w", err)
	}
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*model.FacilityBooking, error) {
	if bookingID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if canonicalID(b.UserID) != canonicalID(userID) {
		return nil, ErrForbidden
	}
	if b.Status == model.BookingCancelled {
		return b, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, model.BookingCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *bookingService) ListBookings(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error) {
	if from.IsZero() {
		from = s.now()
	}
	if to.IsZero() {
		to = from.Add(defaultBookingWindow)
	}
	if !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidInterval)
	}
	f, err := s.facility(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListOverlapping(ctx, f.ID, from.UTC(), to.UTC())
}
