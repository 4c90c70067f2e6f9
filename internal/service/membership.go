package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// MembershipPlanInput is the writable part of a membership plan. An empty
// billing period means monthly.
type MembershipPlanInput struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	PriceCents    int64               `json:"price_cents"`
	BillingPeriod model.BillingPeriod `json:"billing_period"`
}

func (in MembershipPlanInput) normalize() (MembershipPlanInput, error) {
	var err error
	if in.Name, err = requireText("name", in.Name, 120); err != nil {
		return in, err
	}
	if in.Description, err = optionalText("description", in.Description, 5000); err != nil {
		return in, err
	}
	if in.PriceCents < 0 {
		return in, invalid("price_cents", "must not be negative")
	}
	in.BillingPeriod = model.BillingPeriod(strings.ToLower(strings.TrimSpace(string(in.BillingPeriod))))
	if in.BillingPeriod == "" {
		in.BillingPeriod = model.BillingMonthly
	}
	if !in.BillingPeriod.Valid() {
		return in, invalid("billing_period", "must be one of monthly, yearly, once")
	}
	return in, nil
}

// MembershipPlanService manages the membership tiers an organization sells.
type MembershipPlanService interface {
	Create(ctx context.Context, organizationID string, in MembershipPlanInput) (*model.MembershipPlan, error)
	Get(ctx context.Context, id string) (*model.MembershipPlan, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.MembershipPlan], error)
	Update(ctx context.Context, id string, in MembershipPlanInput) (*model.MembershipPlan, error)
	Delete(ctx context.Context, id string) error
}

type membershipPlanService struct {
	repo repository.MembershipPlanRepository
	now  func() time.Time
}

func NewMembershipPlanService(repo repository.MembershipPlanRepository) MembershipPlanService {
	return &membershipPlanService{repo: repo, now: utcNow}
}

func (s *membershipPlanService) Create(ctx context.Context, organizationID string, in MembershipPlanInput) (*model.MembershipPlan, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	now := s.now()
	p, err := s.repo.Create(ctx, &model.MembershipPlan{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           in.Name,
		Description:    in.Description,
		PriceCents:     in.PriceCents,
		BillingPeriod:  in.BillingPeriod,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *membershipPlanService) Get(ctx context.Context, id string) (*model.MembershipPlan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *membershipPlanService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.MembershipPlan], error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	pq := pageQuery(limit, offset)
	res, err := s.repo.ListByOrganization(ctx, organizationID, pq)
	if err != nil {
		return nil, err
	}
	return listResult(res, pq), nil
}

func (s *membershipPlanService) Update(ctx context.Context, id string, in MembershipPlanInput) (*model.MembershipPlan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.BillingPeriod = in.BillingPeriod
	p.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

func (s *membershipPlanService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, id))
}
