package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockVolunteerRepository struct {
	mock.Mock
}

func (m *MockVolunteerRepository) Create(ctx context.Context, o *model.VolunteerOpportunity) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}

func (m *MockVolunteerRepository) FindByID(ctx context.Context, id string) (*model.VolunteerOpportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerOpportunity), args.Error(1)
}

func (m *MockVolunteerRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.VolunteerOpportunity], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.VolunteerOpportunity]), args.Error(1)
}

func (m *MockVolunteerRepository) SignUp(ctx context.Context, s *model.VolunteerSignup) (*model.VolunteerSignup, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VolunteerSignup), args.Error(1)
}

func (m *MockVolunteerRepository) Cancel(ctx context.Context, opportunityID, userID string) error {
	args := m.Called(ctx, opportunityID, userID)
	return args.Error(0)
}
