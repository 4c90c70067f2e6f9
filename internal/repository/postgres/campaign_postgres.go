package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// CampaignPostgres is a PostgreSQL implementation of repository.CampaignRepository.
type CampaignPostgres struct {
	db *sql.DB
}

// NewCampaignPostgres creates a new CampaignPostgres repository.
func NewCampaignPostgres(db *sql.DB) *CampaignPostgres {
	return &CampaignPostgres{db: db}
}

var _ repository.CampaignRepository = (*CampaignPostgres)(nil)

const campaignColumns = `id, organization_id, title, description, goal_cents, raised_cents, ends_at, created_at`

const donationColumns = `id, campaign_id, COALESCE(user_id::text, ''), donor_name, amount_cents, message, anonymous, created_at`

func scanCampaign(s scanner) (*model.Campaign, error) {
	var c model.Campaign
	var endsAt sql.NullTime
	if err := s.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.Title,
		&c.Description,
		&c.GoalCents,
		&c.RaisedCents,
		&endsAt,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.EndsAt = timePtr(endsAt)
	return &c, nil
}

func scanCampaignWithCount(s scanner) (*model.Campaign, error) {
	var c model.Campaign
	var endsAt sql.NullTime
	if err := s.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.Title,
		&c.Description,
		&c.GoalCents,
		&c.RaisedCents,
		&endsAt,
		&c.CreatedAt,
		&c.DonationCount,
	); err != nil {
		return nil, err
	}
	c.EndsAt = timePtr(endsAt)
	return &c, nil
}

func scanDonation(s scanner) (*model.Donation, error) {
	var d model.Donation
	if err := s.Scan(
		&d.ID,
		&d.CampaignID,
		&d.UserID,
		&d.DonorName,
		&d.AmountCents,
		&d.Message,
		&d.Anonymous,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// nullableUUID maps an empty id to NULL.
func nullableUUID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

func (r *CampaignPostgres) Create(ctx context.Context, c *model.Campaign) (*model.Campaign, error) {
	const q = `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
		RETURNING ` + campaignColumns
	out, err := scanCampaign(r.db.QueryRowContext(ctx, q,
		c.ID,
		c.OrganizationID,
		c.Title,
		c.Description,
		c.GoalCents,
		c.EndsAt,
		c.CreatedAt,
	))
	if isForeignKeyViolation(err) {
		return nil, sql.ErrNoRows
	}
	return out, err
}

const campaignWithCount = `SELECT c.id, c.organization_id, c.title, c.description, c.goal_cents, c.raised_cents, c.ends_at, c.created_at,
		(SELECT COUNT(*) FROM donations d WHERE d.campaign_id = c.id)
	FROM campaigns c`

func (r *CampaignPostgres) FindByID(ctx context.Context, id string) (*model.Campaign, error) {
	const q = campaignWithCount + ` WHERE c.id = $1`
	return scanCampaignWithCount(r.db.QueryRowContext(ctx, q, id))
}

func (r *CampaignPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Campaign], error) {
	const qCount = `SELECT COUNT(*) FROM campaigns WHERE organization_id = $1`
	const qList = campaignWithCount + `
		WHERE c.organization_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanCampaignWithCount)
}

// Donate adds the amount with one UPDATE, then records the donation, in one transaction.
func (r *CampaignPostgres) Donate(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	const qAdd = `UPDATE campaigns SET raised_cents = raised_cents + $2 WHERE id = $1 RETURNING raised_cents`
	const qInsert = `
		INSERT INTO donations (id, campaign_id, user_id, donor_name, amount_cents, message, anonymous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + donationColumns

	var out *model.Donation
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var raised int64
		if err := tx.QueryRowContext(ctx, qAdd, d.CampaignID, d.AmountCents).Scan(&raised); err != nil {
			return err
		}
		var err error
		out, err = scanDonation(tx.QueryRowContext(ctx, qInsert,
			d.ID,
			d.CampaignID,
			nullableUUID(d.UserID),
			d.DonorName,
			d.AmountCents,
			d.Message,
			d.Anonymous,
			d.CreatedAt,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CampaignPostgres) ListDonations(ctx context.Context, campaignID string, pq repository.PageQuery) (*repository.PageResult[model.Donation], error) {
	const qCount = `SELECT COUNT(*) FROM donations WHERE campaign_id = $1`
	const qList = `SELECT ` + donationColumns + ` FROM donations
		WHERE campaign_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{campaignID}, pq, scanDonation)
}
