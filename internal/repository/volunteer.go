package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// VolunteerRepository persists volunteer opportunities and signups.
type VolunteerRepository interface {
	Create(ctx context.Context, o *model.VolunteerOpportunity) (*model.VolunteerOpportunity, error)
	FindByID(ctx context.Context, id string) (*model.VolunteerOpportunity, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.VolunteerOpportunity], error)

	// SignUp claims a spot and records the signup in one transaction. The claim is a
	// conditional increment that never pushes spots_filled past spots_available.
	// Returns sql.ErrNoRows for an unknown opportunity, ErrNoCapacity when full and
	// ErrDuplicate when the user is already signed up.
	SignUp(ctx context.Context, s *model.VolunteerSignup) (*model.VolunteerSignup, error)

	// Cancel removes the signup and releases its spot, never going below zero.
	// Returns sql.ErrNoRows when the user has no signup.
	Cancel(ctx context.Context, opportunityID, userID string) error
}
