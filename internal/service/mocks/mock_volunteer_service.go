package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) Create(ctx context.Context, organizationID string, in service.OpportunityInput) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, organizationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}

func (m *MockVolunteerService) Get(ctx context.Context, id string) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}

func (m *MockVolunteerService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.VolunteerOpportunity], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.VolunteerOpportunity]), args.Error(1)
}

func (m *MockVolunteerService) SignUp(ctx context.Context, opportunityID, userID string) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, opportunityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}

func (m *MockVolunteerService) Cancel(ctx context.Context, opportunityID, userID string) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, opportunityID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}
