package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// FacilityInput is the writable part of a facility.
type FacilityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
}

// FacilityService manages bookable facilities.
type FacilityService interface {
	Create(ctx context.Context, organizationID string, in FacilityInput) (*model.Facility, error)
	Get(ctx context.Context, id string) (*model.Facility, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Facility], error)
}

type facilityService struct {
	repo repository.FacilityRepository
	now  func() time.Time
}

func NewFacilityService(repo repository.FacilityRepository) FacilityService {
	return &facilityService{repo: repo, now: utcNow}
}

func (s *facilityService) Create(ctx context.Context, organizationID string, in FacilityInput) (*model.Facility, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	name, err := requireText("name", in.Name, 200)
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
	if in.Capacity < 0 {
		return nil, invalid("capacity", "must not be negative")
	}

	f, err := s.repo.Create(ctx, &model.Facility{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		Description:    description,
		Location:       location,
		Capacity:       in.Capacity,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *facilityService) Get(ctx context.Context, id string) (*model.Facility, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *facilityService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Facility], error) {
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
