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

// OpportunityInput describes a volunteer opportunity.
type OpportunityInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartsAt       time.Time `json:"starts_at"`
	SpotsAvailable int       `json:"spots_available"`
}

// VolunteerService hands out a fixed number of spots per opportunity.
// SpotsFilled never leaves [0, SpotsAvailable].
type VolunteerService interface {
	Create(ctx context.Context, organizationID string, in OpportunityInput) (*model.VolunteerOpportunity, error)
	Get(ctx context.Context, id string) (*model.VolunteerOpportunity, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.VolunteerOpportunity], error)
	// SignUp claims a spot for userID and returns the refreshed opportunity.
	SignUp(ctx context.Context, opportunityID, userID string) (*model.VolunteerOpportunity, error)
	// Cancel releases userID's spot and returns the refreshed opportunity.
	Cancel(ctx context.Context, opportunityID, userID string) (*model.VolunteerOpportunity, error)
}

type volunteerService struct {
	repo    repository.VolunteerRepository
	metrics *metrics.Domain
	now     func() time.Time
}

func NewVolunteerService(repo repository.VolunteerRepository, m *metrics.Domain) VolunteerService {
	return &volunteerService{repo: repo, metrics: m, now: utcNow}
}

func (s *volunteerService) Create(ctx context.Context, organizationID string, in OpportunityInput) (*model.VolunteerOpportunity, error) {
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
	location, err := optionalText("location", in.Location, 300)
	if err != nil {
		return nil, err
	}
	if in.StartsAt.IsZero() {
		return nil, invalid("starts_at", "is required")
	}
	if in.SpotsAvailable <= 0 {
		return nil, invalid("spots_available", "must be positive")
	}

	o, err := s.repo.Create(ctx, &model.VolunteerOpportunity{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		Location:       location,
		StartsAt:       in.StartsAt.UTC(),
		SpotsAvailable: in.SpotsAvailable,
		SpotsFilled:    0,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *volunteerService) Get(ctx context.Context, id string) (*model.VolunteerOpportunity, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *volunteerService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.VolunteerOpportunity], error) {
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

func (s *volunteerService) SignUp(ctx context.Context, opportunityID, userID string) (o *model.VolunteerOpportunity, err error) {
	ctx, span := startSpan(ctx, "VolunteerService.SignUp", trace.WithAttributes(
		attribute.String("opportunity.id", opportunityID),
	))
	defer func() { endSpan(span, err) }()

	if opportunityID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}

	_, err = s.repo.SignUp(ctx, &model.VolunteerSignup{
		ID:            uuid.NewString(),
		OpportunityID: opportunityID,
		UserID:        userID,
		CreatedAt:     s.now(),
	})
	switch {
	case err == nil:
		s.metrics.Signup(metrics.OutcomeAccepted)
	case errors.Is(err, repository.ErrNoCapacity):
		s.metrics.Signup(metrics.OutcomeRejected)
		return nil, ErrNoSpotsLeft
	case errors.Is(err, repository.ErrDuplicate):
		s.metrics.Signup(metrics.OutcomeRejected)
		return nil, ErrAlreadySignedUp
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	default:
		s.metrics.Signup(metrics.OutcomeError)
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return s.Get(ctx, opportunityID)
}

func (s *volunteerService) Cancel(ctx context.Context, opportunityID, userID string) (*model.VolunteerOpportunity, error) {
	if opportunityID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	if err := s.repo.Cancel(ctx, opportunityID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotSignedUp
		}
		return nil, fmt.Errorf("cancel signup: %w", err)
	}
	return s.Get(ctx, opportunityID)
}
