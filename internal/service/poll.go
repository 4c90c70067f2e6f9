package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ubuntuhub/internal/metrics"
	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

const (
	minPollOptions = 2
	maxPollOptions = 20
)

// PollInput describes a new poll. Options are labels in display order.
type PollInput struct {
	Question    string     `json:"question"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	ClosesAt    *time.Time `json:"closes_at"`
}

// PollService runs single-choice polls. A user votes at most once per poll and the
// poll total always equals the sum of its option tallies.
type PollService interface {
	Create(ctx context.Context, organizationID, userID string, in PollInput) (*model.Poll, error)
	// Get returns the poll with tallies, percentages and whether userID has voted.
	// An empty userID leaves HasVoted false.
	Get(ctx context.Context, pollID, userID string) (*model.Poll, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Poll], error)
	// Vote records userID's choice and returns the refreshed poll.
	Vote(ctx context.Context, pollID, optionID, userID string) (*model.Poll, error)
}

type pollService struct {
	repo    repository.PollRepository
	metrics *metrics.Domain
	now     func() time.Time
}

func NewPollService(repo repository.PollRepository, m *metrics.Domain) PollService {
	return &pollService{repo: repo, metrics: m, now: utcNow}
}

func (s *pollService) Create(ctx context.Context, organizationID, userID string, in PollInput) (*model.Poll, error) {
	if organizationID == "" {
		return nil, ErrIDRequired
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	question, err := requireText("question", in.Question, 500)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", in.Description, 5000)
	if err != nil {
		return nil, err
	}
	labels, err := pollLabels(in.Options)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var closesAt *time.Time
	if in.ClosesAt != nil {
		if !in.ClosesAt.After(now) {
			return nil, invalid("closes_at", "must be in the future")
		}
		t := in.ClosesAt.UTC()
		closesAt = &t
	}

	pollID := uuid.NewString()
	options := make([]model.PollOption, len(labels))
	for i, label := range labels {
		options[i] = model.PollOption{ID: uuid.NewString(), PollID: pollID, Label: label, Position: i}
	}

	p, err := s.repo.Create(ctx, &model.Poll{
		ID:             pollID,
		OrganizationID: organizationID,
		Question:       question,
		Description:    description,
		ClosesAt:       closesAt,
		CreatedBy:      userID,
		CreatedAt:      now,
		Options:        options,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	tally(p)
	return p, nil
}

// pollLabels trims the labels and requires enough distinct, non-empty ones.
func pollLabels(raw []string) ([]string, error) {
	labels := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, l := range raw {
		l, err := requireText("options", l, 200)
		if err != nil {
			return nil, invalid("options", "labels must be non-empty and at most 200 characters")
		}
		key := strings.ToLower(l)
		if seen[key] {
			return nil, invalid("options", "duplicate label %q", l)
		}
		seen[key] = true
		labels = append(labels, l)
	}
	if len(labels) < minPollOptions {
		return nil, invalid("options", "at least %d options are required", minPollOptions)
	}
	if len(labels) > maxPollOptions {
		return nil, invalid("options", "at most %d options are allowed", maxPollOptions)
	}
	return labels, nil
}

// tally derives TotalVotes and per-option percentages from the option counters.
func tally(p *model.Poll) {
	total := 0
	for _, o := range p.Options {
		total += o.VoteCount
	}
	p.TotalVotes = total
	for i := range p.Options {
		p.Options[i].Percent = percent(int64(p.Options[i].VoteCount), int64(total))
	}
}

func closed(p *model.Poll, now time.Time) bool {
	return p.ClosesAt != nil && !now.Before(*p.ClosesAt)
}

func (s *pollService) find(ctx context.Context, pollID string) (*model.Poll, error) {
	if pollID == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pollService) Get(ctx context.Context, pollID, userID string) (*model.Poll, error) {
	pollID = canonicalID(pollID)
	p, err := s.find(ctx, pollID)
	if err != nil {
		return nil, err
	}
	tally(p)
	p.HasVoted = false
	if userID != "" {
		voted, err := s.repo.HasVoted(ctx, pollID, userID)
		if err != nil {
			return nil, fmt.Errorf("has voted: %w", err)
		}
		p.HasVoted = voted
	}
	return p, nil
}

func (s *pollService) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) (*ListResult[model.Poll], error) {
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

func (s *pollService) Vote(ctx context.Context, pollID, optionID, userID string) (p *model.Poll, err error) {
	ctx, span := startSpan(ctx, "PollService.Vote", trace.WithAttributes(
		attribute.String("poll.id", pollID),
		attribute.String("poll.option_id", optionID),
	))
	defer func() { endSpan(span, err) }()

	if optionID == "" {
		s.metrics.Vote(metrics.OutcomeInvalid)
		return nil, invalid("option_id", "is required")
	}
	if userID == "" {
		return nil, ErrUserRequired
	}
	pollID, optionID = canonicalID(pollID), canonicalID(optionID)
	p, err = s.find(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if closed(p, s.now()) {
		s.metrics.Vote(metrics.OutcomeRejected)
		return nil, ErrPollClosed
	}
	if !hasOption(p, optionID) {
		s.metrics.Vote(metrics.OutcomeInvalid)
		return nil, ErrOptionNotFound
	}

	_, err = s.repo.RecordVote(ctx, &model.PollVote{
		ID:        uuid.NewString(),
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    userID,
		CreatedAt: s.now(),
	})
	switch {
	case err == nil:
		s.metrics.Vote(metrics.OutcomeAccepted)
	case errors.Is(err, repository.ErrDuplicate):
		s.metrics.Vote(metrics.OutcomeRejected)
		return nil, ErrAlreadyVoted
	case errors.Is(err, sql.ErrNoRows):
		s.metrics.Vote(metrics.OutcomeInvalid)
		return nil, ErrOptionNotFound
	default:
		s.metrics.Vote(metrics.OutcomeError)
		return nil, fmt.Errorf("record vote: %w", err)
	}

	return s.Get(ctx, pollID, userID)
}

func hasOption(p *model.Poll, optionID string) bool {
	for _, o := range p.Options {
		if canonicalID(o.ID) == canonicalID(optionID) {
			return true
		}
	}
	return false
}
