package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// GroupInput is the writable part of an interest group.
type GroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

func (in GroupInput) normalize() (GroupInput, error) {
	var err error
	if in.Name, err = requireText("name", in.Name, 120); err != nil {
		return in, err
	}
	if in.Description, err = optionalText("description", in.Description, 5000); err != nil {
		return in, err
	}
	return in, nil
}

// GroupService manages interest groups. Group names are unique within an organization.
type GroupService interface {
	Create(ctx context.Context, organizationID string, in GroupInput) (*model.Group, error)
	Get(ctx context.Context, id string) (*model.Group, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Group], error)
	Update(ctx context.Context, id string, in GroupInput) (*model.Group, error)
	Delete(ctx context.Context, id string) error
}

type groupService struct {
	repo repository.GroupRepository
	now  func() time.Time
}

func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo, now: utcNow}
}

func groupErr(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrGroupNameTaken
	}
	return notFound(err)
}

func (s *groupService) Create(ctx context.Context, organizationID string, in GroupInput) (*model.Group, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	now := s.now()
	g, err := s.repo.Create(ctx, &model.Group{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           in.Name,
		Description:    in.Description,
		IsPrivate:      in.IsPrivate,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, groupErr(err)
	}
	return g, nil
}

func (s *groupService) Get(ctx context.Context, id string) (*model.Group, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return g, nil
}

func (s *groupService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Group], error) {
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

func (s *groupService) Update(ctx context.Context, id string, in GroupInput) (*model.Group, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = in.Name
	g.Description = in.Description
	g.IsPrivate = in.IsPrivate
	g.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, g)
	if err != nil {
		return nil, groupErr(err)
	}
	return updated, nil
}

func (s *groupService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, id))
}
