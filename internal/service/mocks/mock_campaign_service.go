package mocks

import (
	"context"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) Create(ctx context.Context, organizationID string, in service.CampaignInput) (*model.Campaign, error) {
	args := m.Called(ctx, organizationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignService) Get(ctx context.Context, id string) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*service.ListResult[model.Campaign], error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Campaign]), args.Error(1)
}

func (m *MockCampaignService) Donate(ctx context.Context, campaignID, userID string, in service.DonationInput) (*model.Donation, error) {
	args := m.Called(ctx, campaignID, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockCampaignService) ListDonations(ctx context.Context, campaignID string, limit, offset int) (*service.ListResult[model.Donation], error) {
	args := m.Called(ctx, campaignID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Donation]), args.Error(1)
}
