package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *model.Campaign) (*model.Campaign, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id string) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Campaign], error) {
	args := m.Called(ctx, organizationID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Campaign]), args.Error(1)
}

func (m *MockCampaignRepository) Donate(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockCampaignRepository) ListDonations(ctx context.Context, campaignID string, pq repository.PageQuery) (*repository.PageResult[model.Donation], error) {
	args := m.Called(ctx, campaignID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Donation]), args.Error(1)
}
