// Package availability decides whether a candidate time slot is free.
//
// All intervals are half-open: [Start, End). Two bookings that touch at an
// endpoint, one ending at 11:00 and the next starting at 11:00, do not overlap.
package availability

import (
	"errors"
	"time"

	"ubuntuhub/internal/model"
)

var (
	ErrEmptyInterval = errors.New("end must be after start")
	ErrTooLong       = errors.New("interval exceeds maximum duration")
)

// Interval is a half-open time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Validate checks the interval is non-empty and, when max > 0, not longer than max.
func (i Interval) Validate(max time.Duration) error {
	if !i.End.After(i.Start) {
		return ErrEmptyInterval
	}
	if max > 0 && i.Duration() > max {
		return ErrTooLong
	}
	return nil
}

// Overlaps reports whether a and b share any instant.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Of returns the interval a booking occupies.
func Of(b model.FacilityBooking) Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Blocks reports whether b holds its slot, i.e. it is not cancelled.
func Blocks(b model.FacilityBooking) bool {
	return b.Status != model.BookingCancelled
}

// Conflicts returns every non-cancelled booking of facilityID that overlaps candidate.
func Conflicts(existing []model.FacilityBooking, facilityID string, candidate Interval) []model.FacilityBooking {
	var out []model.FacilityBooking
	for _, b := range existing {
		if b.FacilityID != facilityID || !Blocks(b) {
			continue
		}
		if Overlaps(Of(b), candidate) {
			out = append(out, b)
		}
	}
	return out
}

// IsAvailable reports whether candidate is free on facilityID given the known bookings.
func IsAvailable(existing []model.FacilityBooking, facilityID string, candidate Interval) bool {
	return len(Conflicts(existing, facilityID, candidate)) == 0
}
