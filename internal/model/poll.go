package model

import "time"

// Poll is a single-choice question put to an organization's members.
// TotalVotes and HasVoted are derived when the poll is read.
type Poll struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	Question       string       `json:"question"`
	Description    string       `json:"description"`
	ClosesAt       *time.Time   `json:"closes_at,omitempty"`
	CreatedBy      string       `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
	Options        []PollOption `json:"options"`
	TotalVotes     int          `json:"total_votes"`
	HasVoted       bool         `json:"has_voted"`
}

// PollOption is one selectable choice with its running tally.
type PollOption struct {
	ID        string  `json:"id"`
	PollID    string  `json:"poll_id"`
	Label     string  `json:"label"`
	Position  int     `json:"position"`
	VoteCount int     `json:"vote_count"`
	Percent   float64 `json:"percent"`
}

// PollVote records that a user chose an option. A user holds at most one vote per poll.
type PollVote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
