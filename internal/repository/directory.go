package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// BusinessRepository persists directory businesses. Create returns sql.ErrNoRows for an
// unknown organization; Update and Delete return it for an unknown business.
type BusinessRepository interface {
	Create(ctx context.Context, b *model.Business) (*model.Business, error)
	FindByID(ctx context.Context, id string) (*model.Business, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Business], error)
	Update(ctx context.Context, b *model.Business) (*model.Business, error)
	// Delete removes the business and its cards.
	Delete(ctx context.Context, id string) error
}

// BusinessCardRepository persists the cards of a business.
type BusinessCardRepository interface {
	Create(ctx context.Context, c *model.BusinessCard) (*model.BusinessCard, error)
	FindByID(ctx context.Context, id string) (*model.BusinessCard, error)
	ListByBusiness(ctx context.Context, businessID string, pq PageQuery) (*PageResult[model.BusinessCard], error)
	Delete(ctx context.Context, id string) error
}

// GroupRepository persists interest groups.
type GroupRepository interface {
	Create(ctx context.Context, g *model.Group) (*model.Group, error)
	FindByID(ctx context.Context, id string) (*model.Group, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Group], error)
	Update(ctx context.Context, g *model.Group) (*model.Group, error)
	Delete(ctx context.Context, id string) error
}

// MembershipPlanRepository persists membership plans.
type MembershipPlanRepository interface {
	Create(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error)
	FindByID(ctx context.Context, id string) (*model.MembershipPlan, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.MembershipPlan], error)
	Update(ctx context.Context, p *model.MembershipPlan) (*model.MembershipPlan, error)
	Delete(ctx context.Context, id string) error
}
