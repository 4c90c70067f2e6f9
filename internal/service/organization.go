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

// OrganizationInput is the writable part of an organization.
type OrganizationInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email"`
	Website      string `json:"website"`
}

func (in OrganizationInput) normalize() (OrganizationInput, error) {
	var err error
	if in.Name, err = requireText("name", in.Name, 200); err != nil {
		return in, err
	}
	if in.Description, err = optionalText("description", in.Description, 5000); err != nil {
		return in, err
	}
	if in.Location, err = optionalText("location", in.Location, 300); err != nil {
		return in, err
	}
	if in.ContactEmail, err = optionalEmail("contact_email", in.ContactEmail); err != nil {
		return in, err
	}
	if in.Website, err = optionalURL("website", in.Website); err != nil {
		return in, err
	}
	return in, nil
}

// OrganizationService manages the organizations that own every other resource.
type OrganizationService interface {
	Create(ctx context.Context, in OrganizationInput) (*model.Organization, error)
	Get(ctx context.Context, id string) (*model.Organization, error)
	List(ctx context.Context, limit, offset int) (*ListResult[model.Organization], error)
	Update(ctx context.Context, id string, in OrganizationInput) (*model.Organization, error)
	// Delete removes the organization and everything it owns.
	Delete(ctx context.Context, id string) error
}

type organizationService struct {
	repo repository.OrganizationRepository
	now  func() time.Time
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{repo: repo, now: utcNow}
}

func (s *organizationService) Create(ctx context.Context, in OrganizationInput) (*model.Organization, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	now := s.now()
	return s.repo.Create(ctx, &model.Organization{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		Location:     in.Location,
		ContactEmail: in.ContactEmail,
		Website:      in.Website,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *organizationService) Get(ctx context.Context, id string) (*model.Organization, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) List(ctx context.Context, limit, offset int) (*ListResult[model.Organization], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, pq)
	if err != nil {
		return nil, err
	}
	return listResult(res, pq), nil
}

func (s *organizationService) Update(ctx context.Context, id string, in OrganizationInput) (*model.Organization, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	org, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	org.Name = in.Name
	org.Description = in.Description
	org.Location = in.Location
	org.ContactEmail = in.ContactEmail
	org.Website = in.Website
	org.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, org)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *organizationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
