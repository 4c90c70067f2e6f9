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

// EventInput describes an event. Capacity zero means unlimited.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity"`
}

// EventService schedules events and tracks who attends.
type EventService interface {
	Create(ctx context.Context, organizationID string, in EventInput) (*model.Event, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Event], error)
	// Register adds userID to the attendees and returns the refreshed event.
	Register(ctx context.Context, eventID, userID string) (*model.Event, error)
	Unregister(ctx context.Context, eventID, userID string) (*model.Event, error)
}

type eventService struct {
	repo    repository.EventRepository
	metrics *metrics.Domain
	now     func() time.Time
}

func NewEventService(repo repository.EventRepository, m *metrics.Domain) EventService {
	return &eventService{repo: repo, metrics: m, now: utcNow}
}

func (s *eventService) Create(ctx context.Context, organizationID string, in EventInput) (*model.Event, error) {
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
	endsAt := in.EndsAt
	if endsAt.IsZero() {
		endsAt = in.StartsAt
	}
	if endsAt.Before(in.StartsAt) {
		return nil, invalid("ends_at", "must not be before starts_at")
	}
	if in.Capacity < 0 {
		return nil, invalid("capacity", "must not be negative")
	}

	e, err := s.repo.Create(ctx, &model.Event{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		Location:       location,
		StartsAt:       in.StartsAt.UTC(),
		EndsAt:         endsAt.UTC(),
		Capacity:       in.Capacity,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *eventService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Event], error) {
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

func (s *eventService) Register(ctx context.Context, eventID, userID string) (e *model.Event, err error) {
	ctx, span := startSpan(ctx, "EventService.Register", trace.WithAttributes(
		attribute.String("event.id", eventID),
	))
	defer func() { endSpan(span, err) }()

	if eventID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}

	_, err = s.repo.Register(ctx, &model.EventRegistration{
		ID:        uuid.NewString(),
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: s.now(),
	})
	switch {
	case err == nil:
		s.metrics.Registration(metrics.OutcomeAccepted)
	case errors.Is(err, repository.ErrNoCapacity):
		s.metrics.Registration(metrics.OutcomeRejected)
		return nil, ErrEventFull
	case errors.Is(err, repository.ErrDuplicate):
		s.metrics.Registration(metrics.OutcomeRejected)
		return nil, ErrAlreadyRegistered
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	default:
		s.metrics.Registration(metrics.OutcomeError)
		return nil, fmt.Errorf("register: %w", err)
	}
	return s.Get(ctx, eventID)
}

func (s *eventService) Unregister(ctx context.Context, eventID, userID string) (*model.Event, error) {
	if eventID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	if err := s.repo.Unregister(ctx, eventID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotRegistered
		}
		return nil, fmt.Errorf("unregister: %w", err)
	}
	return s.Get(ctx, eventID)
}
