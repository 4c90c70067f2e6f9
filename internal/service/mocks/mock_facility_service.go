package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockFacilityService struct {
	mock.Mock
}

func (m *MockFacilityService) Create(ctx context.Context, organizationID string, in service.FacilityInput) (*model.Facility, error) {
	args := m.Called(ctx, organizationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockFacilityService) Get(ctx context.Context, id string) (*model.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockFacilityService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.Facility], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Facility]), args.Error(1)
}
