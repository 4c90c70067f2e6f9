package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPollService struct {
	mock.Mock
}

func (m *MockPollService) Create(ctx context.Context, organizationID, userID string, in service.PollInput) (*model.Poll, error) {
	args := m.Called(ctx, organizationID, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poll), args.Error(1)
}

func (m *MockPollService) Get(ctx context.Context, pollID, userID string) (*model.Poll, error) {
	args := m.Called(ctx, pollID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poll), args.Error(1)
}

func (m *MockPollService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.Poll], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Poll]), args.Error(1)
}

func (m *MockPollService) Vote(ctx context.Context, pollID, optionID, userID string) (*model.Poll, error) {
	args := m.Called(ctx, pollID, optionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Poll), args.Error(1)
}
