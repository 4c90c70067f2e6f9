package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// BusinessInput is the writable part of a directory business.
type BusinessInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Address      string `json:"address"`
}

func (in BusinessInput) normalize() (BusinessInput, error) {
	var err error
	if in.Name, err = requireText("name", in.Name, 200); err != nil {
		return in, err
	}
	if in.Description, err = optionalText("description", in.Description, 5000); err != nil {
		return in, err
	}
	if in.Category, err = optionalText("category", in.Category, 100); err != nil {
		return in, err
	}
	if in.ContactEmail, err = optionalEmail("contact_email", in.ContactEmail); err != nil {
		return in, err
	}
	if in.Phone, err = optionalText("phone", in.Phone, 40); err != nil {
		return in, err
	}
	if in.Website, err = optionalURL("website", in.Website); err != nil {
		return in, err
	}
	if in.Address, err = optionalText("address", in.Address, 300); err != nil {
		return in, err
	}
	return in, nil
}

// BusinessCardInput is the writable part of a business card.
type BusinessCardInput struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	LinkURL  string `json:"link_url"`
}

// BusinessService manages an organization's business directory and the cards each
// business publishes.
type BusinessService interface {
	Create(ctx context.Context, organizationID string, in BusinessInput) (*model.Business, error)
	Get(ctx context.Context, id string) (*model.Business, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Business], error)
	Update(ctx context.Context, id string, in BusinessInput) (*model.Business, error)
	Delete(ctx context.Context, id string) error

	AddCard(ctx context.Context, businessID string, in BusinessCardInput) (*model.BusinessCard, error)
	// ListCards returns ErrNotFound for an unknown business rather than an empty page.
	ListCards(ctx context.Context, businessID string, limit, offset int) (*ListResult[model.BusinessCard], error)
	DeleteCard(ctx context.Context, id string) error
}

type businessService struct {
	repo  repository.BusinessRepository
	cards repository.BusinessCardRepository
	now   func() time.Time
}

func NewBusinessService(repo repository.BusinessRepository, cards repository.BusinessCardRepository) BusinessService {
	return &businessService{repo: repo, cards: cards, now: utcNow}
}

func (s *businessService) Create(ctx context.Context, organizationID string, in BusinessInput) (*model.Business, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	now := s.now()
	b, err := s.repo.Create(ctx, &model.Business{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		ContactEmail:   in.ContactEmail,
		Phone:          in.Phone,
		Website:        in.Website,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (s *businessService) Get(ctx context.Context, id string) (*model.Business, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (s *businessService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Business], error) {
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

func (s *businessService) Update(ctx context.Context, id string, in BusinessInput) (*model.Business, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = in.Name
	b.Description = in.Description
	b.Category = in.Category
	b.ContactEmail = in.ContactEmail
	b.Phone = in.Phone
	b.Website = in.Website
	b.Address = in.Address
	b.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

func (s *businessService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, id))
}

func (s *businessService) AddCard(ctx context.Context, businessID string, in BusinessCardInput) (*model.BusinessCard, error) {
	if businessID == "" {
		return nil, ErrIDRequired
	}
	headline, err := requireText("headline", in.Headline, 120)
	if err != nil {
		return nil, err
	}
	body, err := optionalText("body", in.Body, 2000)
	if err != nil {
		return nil, err
	}
	link, err := optionalURL("link_url", in.LinkURL)
	if err != nil {
		return nil, err
	}

	c, err := s.cards.Create(ctx, &model.BusinessCard{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Headline:   headline,
		Body:       body,
		LinkURL:    link,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *businessService) ListCards(ctx context.Context, businessID string, limit, offset int) (*ListResult[model.BusinessCard], error) {
	if _, err := s.Get(ctx, businessID); err != nil {
		return nil, err
	}
	pq := pageQuery(limit, offset)
	res, err := s.cards.ListByBusiness(ctx, businessID, pq)
	if err != nil {
		return nil, err
	}
	return listResult(res, pq), nil
}

func (s *businessService) DeleteCard(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.cards.Delete(ctx, id))
}
