package mocks

import (
	"context"
	"time"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) Create(ctx context.Context, f *model.Facility) (*model.Facility, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockFacilityRepository) FindByID(ctx context.Context, id string) (*model.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockFacilityRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Facility], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Facility]), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *model.FacilityBooking) (*model.FacilityBooking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FacilityBooking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*model.FacilityBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FacilityBooking), args.Error(1)
}

func (m *MockBookingRepository) ListOverlapping(ctx context.Context, facilityID string, from, to time.Time) ([]model.FacilityBooking, error) {
	args := m.Called(ctx, facilityID, from, to)
	bookings, _ := args.Get(0).([]model.FacilityBooking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.FacilityBooking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FacilityBooking), args.Error(1)
}
