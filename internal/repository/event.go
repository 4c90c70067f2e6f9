package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// EventRepository persists events and registrations.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	// FindByID returns the event with RegistrationCount filled.
	FindByID(ctx context.Context, id string) (*model.Event, error)
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Event], error)

	// Register adds the attendee under the event row lock. Returns sql.ErrNoRows for an
	// unknown event, ErrNoCapacity when a positive capacity is reached and ErrDuplicate
	// when the user is already registered.
	Register(ctx context.Context, r *model.EventRegistration) (*model.EventRegistration, error)

	// Unregister removes the registration; sql.ErrNoRows when there is none.
	Unregister(ctx context.Context, eventID, userID string) error
}
