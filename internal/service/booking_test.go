package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubuntuhub/internal/availability"
	"ubuntuhub/internal/metrics"
	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
	repoMocks "ubuntuhub/internal/repository/mocks"
)

var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func newBookingService(f repository.FacilityRepository, b repository.BookingRepository, m *metrics.Domain) *bookingService {
	svc := NewBookingService(f, b, 12*time.Hour, m).(*bookingService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	facility := &model.Facility{ID: "fac-1"}

	tests := []struct {
		name          string
		start, end    time.Time
		setupMocks    func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository)
		wantErr       error
		wantAvailable bool
		wantConflicts int
	}{
		{
			name:  "free slot",
			start: at(10, 0),
			end:   at(11, 0),
			setupMocks: func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository) {
				mf.On("FindByID", ctx, "fac-1").Return(facility, nil)
				mb.On("ListOverlapping", ctx, "fac-1", at(10, 0), at(11, 0)).Return([]model.FacilityBooking{}, nil)
			},
			wantAvailable: true,
		},
		{
			name:  "overlapping booking",
			start: at(10, 30),
			end:   at(11, 30),
			setupMocks: func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository) {
				mf.On("FindByID", ctx, "fac-1").Return(facility, nil)
				mb.On("ListOverlapping", ctx, "fac-1", at(10, 30), at(11, 30)).Return([]model.FacilityBooking{
					{ID: "a", FacilityID: "fac-1", StartTime: at(10, 0), EndTime: at(11, 0), Status: model.BookingConfirmed},
				}, nil)
			},
			wantAvailable: false,
			wantConflicts: 1,
		},
		{
			name:       "end before start",
			start:      at(11, 0),
			end:        at(10, 0),
			setupMocks: func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrInvalidInterval,
		},
		{
			name:       "longer than maximum",
			start:      at(0, 0),
			end:        at(13, 0),
			setupMocks: func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrInvalidInterval,
		},
		{
			name:  "unknown facility",
			start: at(10, 0),
			end:   at(11, 0),
			setupMocks: func(mf *repoMocks.MockFacilityRepository, mb *repoMocks.MockBookingRepository) {
				mf.On("FindByID", ctx, "fac-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf := new(repoMocks.MockFacilityRepository)
			mb := new(repoMocks.MockBookingRepository)
			tt.setupMocks(mf, mb)
			svc := newBookingService(mf, mb, nil)

			got, err := svc.CheckAvailability(ctx, "fac-1", tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, got.Available)
				assert.Len(t, got.Conflicts, tt.wantConflicts)
			}
			mf.AssertExpectations(t)
			mb.AssertExpectations(t)
		})
	}
}

func TestBookingService_CheckAvailability_UppercaseFacilityID(t *testing.T) {
	ctx := context.Background()
	const facilityID = "3f2a9c1e-7b4d-4e2a-9f10-6c8d5e4b3a21"
	mf := new(repoMocks.MockFacilityRepository)
	mb := new(repoMocks.MockBookingRepository)
	mf.On("FindByID", ctx, facilityID).Return(&model.Facility{ID: facilityID}, nil)
	mb.On("ListOverlapping", ctx, facilityID, at(10, 30), at(11, 30)).Return([]model.FacilityBooking{
		{ID: "a", FacilityID: facilityID, StartTime: at(10, 0), EndTime: at(11, 0), Status: model.BookingConfirmed},
	}, nil)

	got, err := newBookingService(mf, mb, nil).CheckAvailability(ctx, strings.ToUpper(facilityID), at(10, 30), at(11, 30))

	require.NoError(t, err)
	assert.False(t, got.Available)
	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, "a", got.Conflicts[0].ID)
	assert.Equal(t, facilityID, got.FacilityID)
	mf.AssertExpectations(t)
	mb.AssertExpectations(t)
}

func TestBookingService_CreateBooking(t *testing.T) {
	valid := BookingInput{Title: "Choir practice", StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name       string
		userID     string
		in         BookingInput
		setupMocks func(mb *repoMocks.MockBookingRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:   "happy path",
			userID: "user-1",
			in:     valid,
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("CreateIfAvailable", mock.Anything, mock.MatchedBy(func(b *model.FacilityBooking) bool {
					return b.ID != "" && b.FacilityID == "fac-1" && b.UserID == "user-1" &&
						b.Title == "Choir practice" && b.Status == model.BookingConfirmed &&
						b.StartTime.Equal(at(10, 0)) && b.EndTime.Equal(at(11, 0))
				})).Return(&model.FacilityBooking{ID: "b-1", Status: model.BookingConfirmed}, nil)
			},
		},
		{
			name:   "slot taken",
			userID: "user-1",
			in:     valid,
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil, repository.ErrConflict)
			},
			wantErr: ErrSlotUnavailable,
		},
		{
			name:   "unknown facility",
			userID: "user-1",
			in:     valid,
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "repository error",
			userID: "user-1",
			in:     valid,
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "create booking: db fail",
		},
		{
			name:       "missing user",
			in:         valid,
			setupMocks: func(mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrUserRequired,
		},
		{
			name:       "missing title",
			userID:     "user-1",
			in:         BookingInput{StartTime: at(10, 0), EndTime: at(11, 0)},
			setupMocks: func(mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "empty interval",
			userID:     "user-1",
			in:         BookingInput{Title: "x", StartTime: at(10, 0), EndTime: at(10, 0)},
			setupMocks: func(mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrInvalidInterval,
		},
		{
			name:       "start in the past",
			userID:     "user-1",
			in:         BookingInput{Title: "x", StartTime: at(7, 0), EndTime: at(9, 0)},
			setupMocks: func(mb *repoMocks.MockBookingRepository) {},
			wantErr:    ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb := new(repoMocks.MockBookingRepository)
			tt.setupMocks(mb)
			svc := newBookingService(new(repoMocks.MockFacilityRepository), mb, nil)

			got, err := svc.CreateBooking(context.Background(), "fac-1", tt.userID, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "b-1", got.ID)
			}
			mb.AssertExpectations(t)
		})
	}
}

func TestBookingService_CreateBooking_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewDomain(reg)
	require.NoError(t, err)

	mb := new(repoMocks.MockBookingRepository)
	mb.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(&model.FacilityBooking{ID: "b-1"}, nil).Once()
	mb.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil, repository.ErrConflict).Once()
	svc := newBookingService(new(repoMocks.MockFacilityRepository), mb, m)

	in := BookingInput{Title: "Meeting", StartTime: at(10, 0), EndTime: at(11, 0)}
	_, err = svc.CreateBooking(context.Background(), "fac-1", "user-1", in)
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), "fac-1", "user-2", in)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	expected := `
# HELP hub_bookings_total Facility booking attempts by outcome.
# TYPE hub_bookings_total counter
hub_bookings_total{outcome="accepted"} 1
hub_bookings_total{outcome="rejected"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hub_bookings_total"))
}

// memBookings serialises CreateIfAvailable with a mutex, the way the facility row lock
// serialises it in PostgreSQL.
type memBookings struct {
	mu       sync.Mutex
	bookings []model.FacilityBooking
}

func (m *memBookings) CreateIfAvailable(_ context.Context, b *model.FacilityBooking) (*model.FacilityBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !availability.IsAvailable(m.bookings, b.FacilityID, availability.Of(*b)) {
		return nil, repository.ErrConflict
	}
	m.bookings = append(m.bookings, *b)
	out := *b
	return &out, nil
}

func (m *memBookings) FindByID(_ context.Context, id string) (*model.FacilityBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memBookings) ListOverlapping(_ context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return availability.Conflicts(m.bookings, facilityID, availability.Interval{Start: from, End: to}), nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id string, status model.BookingStatus) (*model.FacilityBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			out := m.bookings[i]
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func TestBookingService_AdjacentAndOverlapping(t *testing.T) {
	ctx := context.Background()
	svc := newBookingService(new(repoMocks.MockFacilityRepository), &memBookings{}, nil)

	_, err := svc.CreateBooking(ctx, "fac-1", "user-a", BookingInput{Title: "A", StartTime: at(10, 0), EndTime: at(11, 0)})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, "fac-1", "user-b", BookingInput{Title: "B", StartTime: at(10, 30), EndTime: at(11, 30)})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = svc.CreateBooking(ctx, "fac-1", "user-c", BookingInput{Title: "C", StartTime: at(11, 0), EndTime: at(12, 0)})
	assert.NoError(t, err)

	_, err = svc.CreateBooking(ctx, "fac-2", "user-b", BookingInput{Title: "B elsewhere", StartTime: at(10, 30), EndTime: at(11, 30)})
	assert.NoError(t, err)
}

func TestBookingService_ConcurrentCreate(t *testing.T) {
	repo := &memBookings{}
	svc := newBookingService(new(repoMocks.MockFacilityRepository), repo, nil)

	const attempts = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := at(10, i%3*20)
			_, err := svc.CreateBooking(context.Background(), "fac-1", "user", BookingInput{
				Title:     "slot",
				StartTime: start,
				EndTime:   start.Add(time.Hour),
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	for i, a := range repo.bookings {
		for _, b := range repo.bookings[i+1:] {
			assert.False(t, availability.Overlaps(availability.Of(a), availability.Of(b)))
		}
	}
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	confirmed := &model.FacilityBooking{ID: "b-1", UserID: "owner", Status: model.BookingConfirmed}

	tests := []struct {
		name       string
		userID     string
		setupMocks func(mb *repoMocks.MockBookingRepository)
		wantErr    error
		wantStatus model.BookingStatus
	}{
		{
			name:   "owner cancels",
			userID: "owner",
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("FindByID", ctx, "b-1").Return(confirmed, nil)
				mb.On("UpdateStatus", ctx, "b-1", model.BookingCancelled).
					Return(&model.FacilityBooking{ID: "b-1", UserID: "owner", Status: model.BookingCancelled}, nil)
			},
			wantStatus: model.BookingCancelled,
		},
		{
			name:   "already cancelled",
			userID: "owner",
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("FindByID", ctx, "b-1").
					Return(&model.FacilityBooking{ID: "b-1", UserID: "owner", Status: model.BookingCancelled}, nil)
			},
			wantStatus: model.BookingCancelled,
		},
		{
			name:   "someone else",
			userID: "intruder",
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("FindByID", ctx, "b-1").Return(confirmed, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "not found",
			userID: "owner",
			setupMocks: func(mb *repoMocks.MockBookingRepository) {
				mb.On("FindByID", ctx, "b-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb := new(repoMocks.MockBookingRepository)
			tt.setupMocks(mb)
			svc := newBookingService(new(repoMocks.MockFacilityRepository), mb, nil)

			got, err := svc.CancelBooking(ctx, "b-1", tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, got.Status)
			}
			mb.AssertExpectations(t)
		})
	}
}

func TestBookingService_CancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	svc := newBookingService(new(repoMocks.MockFacilityRepository), &memBookings{}, nil)
	in := BookingInput{Title: "A", StartTime: at(10, 0), EndTime: at(11, 0)}

	b, err := svc.CreateBooking(ctx, "fac-1", "user-a", in)
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, "fac-1", "user-b", in)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = svc.CancelBooking(ctx, b.ID, "user-a")
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, "fac-1", "user-b", in)
	assert.NoError(t, err)
}

func TestBookingService_ListBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("default window", func(t *testing.T) {
		mf := new(repoMocks.MockFacilityRepository)
		mb := new(repoMocks.MockBookingRepository)
		mf.On("FindByID", ctx, "fac-1").Return(&model.Facility{ID: "fac-1"}, nil)
		mb.On("ListOverlapping", ctx, "fac-1", fixedNow, fixedNow.Add(7*24*time.Hour)).
			Return([]model.FacilityBooking{{ID: "b-1"}}, nil)
		svc := newBookingService(mf, mb, nil)

		got, err := svc.ListBookings(ctx, "fac-1", time.Time{}, time.Time{})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		mf.AssertExpectations(t)
		mb.AssertExpectations(t)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc := newBookingService(new(repoMocks.MockFacilityRepository), new(repoMocks.MockBookingRepository), nil)

		_, err := svc.ListBookings(ctx, "fac-1", at(12, 0), at(10, 0))

		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
