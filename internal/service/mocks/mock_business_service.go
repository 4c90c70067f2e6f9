package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) Create(ctx context.Context, organizationID string, in service.BusinessInput) (*model.Business, error) {
	args := m.Called(ctx, organizationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) Get(ctx context.Context, id string) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.Business], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Business]), args.Error(1)
}

func (m *MockBusinessService) Update(ctx context.Context, id string, in service.BusinessInput) (*model.Business, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBusinessService) AddCard(ctx context.Context, businessID string, in service.BusinessCardInput) (*model.BusinessCard, error) {
	args := m.Called(ctx, businessID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessCard), args.Error(1)
}

func (m *MockBusinessService) ListCards(ctx context.Context, businessID string, limit, offset int) (*service.ListResult[model.BusinessCard], error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.BusinessCard]), args.Error(1)
}

func (m *MockBusinessService) DeleteCard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
