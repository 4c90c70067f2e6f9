package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ubuntuhub/internal/metrics"
	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

const (
	anonymousDonor   = "Anonymous"
	maxDonationCents = 100_000_000
)

// CampaignInput describes a fundraising campaign. Amounts are in cents.
type CampaignInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	GoalCents   int64      `json:"goal_cents"`
	EndsAt      *time.Time `json:"ends_at"`
}

// DonationInput describes one contribution.
type DonationInput struct {
	DonorName   string `json:"donor_name"`
	AmountCents int64  `json:"amount_cents"`
	Message     string `json:"message"`
	Anonymous   bool   `json:"anonymous"`
}

// CampaignService runs fundraising campaigns. RaisedCents only grows, by exactly the
// amount of each recorded donation.
type CampaignService interface {
	Create(ctx context.Context, organizationID string, in CampaignInput) (*model.Campaign, error)
	// Get returns the campaign with ProgressPercent capped at 100.
	Get(ctx context.Context, id string) (*model.Campaign, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Campaign], error)
	// Donate records a donation. userID may be empty for guests.
	Donate(ctx context.Context, campaignID, userID string, in DonationInput) (*model.Donation, error)
	// ListDonations returns donations newest first with anonymous donors masked.
	ListDonations(ctx context.Context, campaignID string, limit, offset int) (*ListResult[model.Donation], error)
}

type campaignService struct {
	repo    repository.CampaignRepository
	metrics *metrics.Domain
	now     func() time.Time
}

func NewCampaignService(repo repository.CampaignRepository, m *metrics.Domain) CampaignService {
	return &campaignService{repo: repo, metrics: m, now: utcNow}
}

// progress sets ProgressPercent from the raised and goal amounts.
func progress(c *model.Campaign) {
	p := percent(c.RaisedCents, c.GoalCents)
	if p > 100 {
		p = 100
	}
	c.ProgressPercent = p
}

func (s *campaignService) Create(ctx context.Context, organizationID string, in CampaignInput) (*model.Campaign, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	title, err := requireText("title", in.Title, 200)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", in.Description, 5000)
	if err != nil {
		return nil, err
	}
	if in.GoalCents <= 0 {
		return nil, invalid("goal_cents", "must be positive")
	}
	now := s.now()
	var endsAt *time.Time
	if in.EndsAt != nil {
		if !in.EndsAt.After(now) {
			return nil, invalid("ends_at", "must be in the future")
		}
		t := in.EndsAt.UTC()
		endsAt = &t
	}

	c, err := s.repo.Create(ctx, &model.Campaign{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		GoalCents:      in.GoalCents,
		EndsAt:         endsAt,
		CreatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	progress(c)
	return c, nil
}

func (s *campaignService) Get(ctx context.Context, id string) (*model.Campaign, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	progress(c)
	return c, nil
}

func (s *campaignService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Campaign], error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	pq := pageQuery(limit, offset)
	res, err := s.repo.ListByOrganization(ctx, organizationID, pq)
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		progress(&res.Items[i])
	}
	return listResult(res, pq), nil
}

func (s *campaignService) Donate(ctx context.Context, campaignID, userID string, in DonationInput) (d *model.Donation, err error) {
	ctx, span := startSpan(ctx, "CampaignService.Donate", trace.WithAttributes(
		attribute.String("campaign.id", campaignID),
		attribute.Int64("donation.amount_cents", in.AmountCents),
	))
	defer func() { endSpan(span, err) }()

	if in.AmountCents <= 0 {
		return nil, invalid("amount_cents", "must be positive")
	}
	if in.AmountCents > maxDonationCents {
		return nil, invalid("amount_cents", "must be at most %d", maxDonationCents)
	}
	donor, err := optionalText("donor_name", in.DonorName, 200)
	if err != nil {
		return nil, err
	}
	message, err := optionalText("message", in.Message, 1000)
	if err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.EndsAt != nil && !s.now().Before(*c.EndsAt) {
		return nil, ErrCampaignEnded
	}

	d, err = s.repo.Donate(ctx, &model.Donation{
		ID:          uuid.NewString(),
		CampaignID:  campaignID,
		UserID:      userID,
		DonorName:   donor,
		AmountCents: in.AmountCents,
		Message:     message,
		Anonymous:   in.Anonymous,
		CreatedAt:   s.now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("donate: %w", err)
	}
	s.metrics.Donation(d.AmountCents)
	return d, nil
}

// mask hides who gave an anonymous or unnamed donation.
func mask(d *model.Donation) {
	if d.Anonymous || d.DonorName == "" {
		d.DonorName = anonymousDonor
	}
	if d.Anonymous {
		d.UserID = ""
	}
}

func (s *campaignService) ListDonations(ctx context.Context, campaignID string, limit, offset int) (*ListResult[model.Donation], error) {
	if _, err := s.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	pq := pageQuery(limit, offset)
	res, err := s.repo.ListDonations(ctx, campaignID, pq)
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		mask(&res.Items[i])
	}
	return listResult(res, pq), nil
}
