package mocks

import (
	"context"
	"time"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CheckAvailability(ctx context.Context, facilityID string, start, end time.Time) (*service.Availability, error) {
	args := m.Called(ctx, facilityID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Availability), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, facilityID, userID string, in service.BookingInput) (*model.FacilityBooking, error) {
	args := m.Called(ctx, facilityID, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FacilityBooking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*model.FacilityBooking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FacilityBooking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error) {
	args := m.Called(ctx, facilityID, from, to)
	items, _ := args.Get(0).([]model.FacilityBooking)
	return items, args.Error(1)
}
