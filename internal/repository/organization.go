package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// OrganizationRepository persists organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)
	FindByID(ctx context.Context, id string) (*model.Organization, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Organization], error)
	// Update overwrites the mutable fields; sql.ErrNoRows if the row does not exist.
	Update(ctx context.Context, org *model.Organization) (*model.Organization, error)
	// Delete removes the organization and, by cascade, everything it owns.
	// It returns sql.ErrNoRows if nothing was deleted.
	Delete(ctx context.Context, id string) error
}
