package availability

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"

	"ubuntuhub/internal/model"
)

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func booking(id, facility string, start, end time.Time, status model.BookingStatus) model.FacilityBooking {
	return model.FacilityBooking{ID: id, FacilityID: facility, StartTime: start, EndTime: end, Status: status}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial overlap", Interval{at(10, 0), at(11, 0)}, Interval{at(10, 30), at(11, 30)}, true},
		{"touching end", Interval{at(10, 0), at(11, 0)}, Interval{at(11, 0), at(12, 0)}, false},
		{"touching start", Interval{at(11, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"contained", Interval{at(9, 0), at(17, 0)}, Interval{at(12, 0), at(13, 0)}, true},
		{"containing", Interval{at(12, 0), at(13, 0)}, Interval{at(9, 0), at(17, 0)}, true},
		{"identical", Interval{at(10, 0), at(11, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"disjoint", Interval{at(8, 0), at(9, 0)}, Interval{at(10, 0), at(11, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Validate(t *testing.T) {
	assert.NoError(t, Interval{at(10, 0), at(11, 0)}.Validate(0))
	assert.ErrorIs(t, Interval{at(10, 0), at(10, 0)}.Validate(0), ErrEmptyInterval)
	assert.ErrorIs(t, Interval{at(11, 0), at(10, 0)}.Validate(0), ErrEmptyInterval)
	assert.ErrorIs(t, Interval{at(8, 0), at(20, 0)}.Validate(4*time.Hour), ErrTooLong)
	assert.NoError(t, Interval{at(8, 0), at(12, 0)}.Validate(4*time.Hour))
}

func TestConflicts(t *testing.T) {
	existing := []model.FacilityBooking{
		booking("a", "hall", at(10, 0), at(11, 0), model.BookingConfirmed),
		booking("b", "hall", at(13, 0), at(14, 0), model.BookingCancelled),
		booking("c", "field", at(10, 0), at(12, 0), model.BookingPending),
	}

	t.Run("overlapping candidate is rejected", func(t *testing.T) {
		got := Conflicts(existing, "hall", Interval{at(10, 30), at(11, 30)})
		assert.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
		assert.False(t, IsAvailable(existing, "hall", Interval{at(10, 30), at(11, 30)}))
	})

	t.Run("adjacent candidate is accepted", func(t *testing.T) {
		assert.True(t, IsAvailable(existing, "hall", Interval{at(11, 0), at(12, 0)}))
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		assert.True(t, IsAvailable(existing, "hall", Interval{at(13, 0), at(14, 0)}))
	})

	t.Run("other facilities do not block", func(t *testing.T) {
		assert.True(t, IsAvailable(existing, "hall", Interval{at(11, 30), at(12, 0)}))
		assert.False(t, IsAvailable(existing, "field", Interval{at(11, 30), at(12, 0)}))
	})
}

// Accepting only available candidates must leave no pair of blocking bookings overlapping.
func TestAcceptedBookingsNeverOverlap(t *testing.T) {
	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		var accepted []model.FacilityBooking
		facilities := []string{"hall", "field"}

		for i := 0; i < 60; i++ {
			start := at(rng.Intn(20), rng.Intn(4)*15)
			end := start.Add(time.Duration(1+rng.Intn(8)) * 15 * time.Minute)
			fac := facilities[rng.Intn(len(facilities))]
			candidate := Interval{start, end}

			if IsAvailable(accepted, fac, candidate) {
				b := booking("", fac, start, end, model.BookingConfirmed)
				if rng.Intn(5) == 0 {
					b.Status = model.BookingCancelled
				}
				accepted = append(accepted, b)
			}
		}

		for i := range accepted {
			for j := i + 1; j < len(accepted); j++ {
				a, b := accepted[i], accepted[j]
				if a.FacilityID != b.FacilityID || !Blocks(a) || !Blocks(b) {
					continue
				}
				if Overlaps(Of(a), Of(b)) {
					return false
				}
			}
		}
		return true
	}

	assert.NoError(t, quick.Check(property, &quick.Config{MaxCount: 200}))
}
