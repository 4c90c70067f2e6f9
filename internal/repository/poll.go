package repository

import (
	"context"

	"ubuntuhub/internal/model"
)

// PollRepository persists polls, their options and vote records.
type PollRepository interface {
	// Create inserts the poll and its options in one transaction.
	Create(ctx context.Context, p *model.Poll) (*model.Poll, error)

	// FindByID returns the poll with options ordered by position.
	FindByID(ctx context.Context, id string) (*model.Poll, error)

	// ListByOrganization returns polls without options; TotalVotes is filled from the option tallies.
	ListByOrganization(ctx context.Context, organizationID string, pq PageQuery) (*PageResult[model.Poll], error)

	// HasVoted reports whether a vote record exists for the user on the poll.
	HasVoted(ctx context.Context, pollID, userID string) (bool, error)

	// RecordVote inserts the vote record and increments the chosen option's counter with a
	// single atomic update, both in one transaction. Returns ErrDuplicate when the user has
	// already voted on the poll and sql.ErrNoRows when the option does not belong to the poll.
	RecordVote(ctx context.Context, v *model.PollVote) (*model.PollVote, error)
}
