package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, b *model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id string) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Business], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Business]), args.Error(1)
}

func (m *MockBusinessRepository) Update(ctx context.Context, b *model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBusinessCardRepository struct {
	mock.Mock
}

func (m *MockBusinessCardRepository) Create(ctx context.Context, c *model.BusinessCard) (*model.BusinessCard, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessCard), args.Error(1)
}

func (m *MockBusinessCardRepository) FindByID(ctx context.Context, id string) (*model.BusinessCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessCard), args.Error(1)
}

func (m *MockBusinessCardRepository) ListByBusiness(ctx context.Context, businessID string, pq repository.PageQuery) (*repository.PageResult[model.BusinessCard], error) {
	args := m.Called(ctx, businessID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.BusinessCard]), args.Error(1)
}

func (m *MockBusinessCardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, g *model.Group) (*model.Group, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Group], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Group]), args.Error(1)
}

func (m *MockGroupRepository) Update(ctx context.Context, g *model.Group) (*model.Group, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMembershipPlanRepository struct {
	mock.Mock
}

func (m *MockMembershipPlanRepository) Create(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanRepository) FindByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.MembershipPlan], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MembershipPlan]), args.Error(1)
}

func (m *MockMembershipPlanRepository) Update(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipPlan), args.Error(1)
}

func (m *MockMembershipPlanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
