package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMembershipPlanService struct {
	mock.Mock
}

func (m *MockMembershipPlanService) Create(ctx context.Context, organizationID string, in service.MembershipPlanInput) (*model.MembershipPlan, error) {
	args := m.Called(ctx, organizationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanService) Get(ctx context.Context, id string) (*model.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.MembershipPlan], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.MembershipPlan]), args.Error(1)
}

func (m *MockMembershipPlanService) Update(ctx context.Context, id string, in service.MembershipPlanInput) (*model.MembershipPlan, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
