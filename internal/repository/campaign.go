package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// CampaignRepository persists fundraising campaigns and donations.
type CampaignRepository interface {
	Create(ctx context.Context, c *model.Campaign) (*model.Campaign, error)
	// FindByID returns the campaign with DonationCount filled.
	FindByID(ctx context.Context, id string) (*model.Campaign, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Campaign], error)

	// Donate inserts the donation and adds its amount to raised_cents atomically.
	// Returns sql.ErrNoRows for an unknown campaign.
	Donate(ctx context.Context, d *model.Donation) (*model.Donation, error)

	// ListDonations returns donations newest first.
	ListDonations(ctx context.Context, campaignID string, pq PageQuery) (*PageResult[model.Donation], error)
}
