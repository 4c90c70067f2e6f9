package postgres

import (
	"context"
	"database/sql"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

// PollPostgres is a PostgreSQL implementation of repository.PollRepository.
type PollPostgres struct {
	db *sql.DB
}

// NewPollPostgres creates a new PollPostgres repository.
func NewPollPostgres(db *sql.DB) *PollPostgres {
	return &PollPostgres{db: db}
}

var _ repository.PollRepository = (*PollPostgres)(nil)

const pollColumns = `id, organization_id, question, description, closes_at, created_by, created_at`

const pollOptionColumns = `id, poll_id, label, position, vote_count`

func scanPoll(s scanner) (*model.Poll, error) {
	var p model.Poll
	var closesAt sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Question,
		&p.Description,
		&closesAt,
		&p.CreatedBy,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.ClosesAt = timePtr(closesAt)
	return &p, nil
}

func scanPollWithTotal(s scanner) (*model.Poll, error) {
	var p model.Poll
	var closesAt sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Question,
		&p.Description,
		&closesAt,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.TotalVotes,
	); err != nil {
		return nil, err
	}
	p.ClosesAt = timePtr(closesAt)
	return &p, nil
}

func scanPollOption(s scanner) (*model.PollOption, error) {
	var o model.PollOption
	if err := s.Scan(&o.ID, &o.PollID, &o.Label, &o.Position, &o.VoteCount); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the poll row and every option in one transaction.
// An unknown organization surfaces as sql.ErrNoRows.
func (r *PollPostgres) Create(ctx context.Context, p *model.Poll) (*model.Poll, error) {
	const qPoll = `
		INSERT INTO polls (` + pollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + pollColumns
	const qOption = `
		INSERT INTO poll_options (` + pollOptionColumns + `)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING ` + pollOptionColumns

	var out *model.Poll
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		out, err = scanPoll(tx.QueryRowContext(ctx, qPoll,
			p.ID,
			p.OrganizationID,
			p.Question,
			p.Description,
			p.ClosesAt,
			p.CreatedBy,
			p.CreatedAt,
		))
		if err != nil {
			return err
		}

		out.Options = make([]model.PollOption, 0, len(p.Options))
		for _, o := range p.Options {
			opt, err := scanPollOption(tx.QueryRowContext(ctx, qOption, o.ID, out.ID, o.Label, o.Position))
			if err != nil {
				return err
			}
			out.Options = append(out.Options, *opt)
		}
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return out, nil
}

// FindByID loads the poll and its options ordered by position. TotalVotes is the sum
// of the option counters.
func (r *PollPostgres) FindByID(ctx context.Context, id string) (*model.Poll, error) {
	const qPoll = `SELECT ` + pollColumns + ` FROM polls WHERE id = $1`
	const qOptions = `SELECT ` + pollOptionColumns + ` FROM poll_options
		WHERE poll_id = $1
		ORDER BY position ASC`

	p, err := scanPoll(r.db.QueryRowContext(ctx, qPoll, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, qOptions, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Options = make([]model.PollOption, 0)
	for rows.Next() {
		o, err := scanPollOption(rows)
		if err != nil {
			return nil, err
		}
		p.Options = append(p.Options, *o)
		p.TotalVotes += o.VoteCount
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PollPostgres) ListByOrganization(ctx context.Context, organizationID string, pq repository.PageQuery) (*repository.PageResult[model.Poll], error) {
	const qCount = `SELECT COUNT(*) FROM polls WHERE organization_id = $1`
	const qList = `SELECT p.id, p.organization_id, p.question, p.description, p.closes_at, p.created_by, p.created_at,
			COALESCE((SELECT SUM(o.vote_count) FROM poll_options o WHERE o.poll_id = p.id), 0)
		FROM polls p
		WHERE p.organization_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`
	return listPage(ctx, r.db, qCount, qList, []any{organizationID}, pq, scanPollWithTotal)
}

func (r *PollPostgres) HasVoted(ctx context.Context, pollID, userID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM poll_votes WHERE poll_id = $1 AND user_id = $2)`
	var voted bool
	if err := r.db.QueryRowContext(ctx, q, pollID, userID).Scan(&voted); err != nil {
		return false, err
	}
	return voted, nil
}

// RecordVote inserts the vote record, then bumps the option counter in a single
// UPDATE so concurrent voters never lose increments.
func (r *PollPostgres) RecordVote(ctx context.Context, v *model.PollVote) (*model.PollVote, error) {
	const qVote = `
		INSERT INTO poll_votes (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, poll_id, option_id, user_id, created_at`
	const qIncrement = `UPDATE poll_options SET vote_count = vote_count + 1 WHERE id = $1 AND poll_id = $2`

	var out model.PollVote
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, qVote, v.ID, v.PollID, v.OptionID, v.UserID, v.CreatedAt).
			Scan(&out.ID, &out.PollID, &out.OptionID, &out.UserID, &out.CreatedAt); err != nil {
			switch {
			case isUniqueViolation(err):
				return repository.ErrDuplicate
			case isForeignKeyViolation(err):
				return sql.ErrNoRows
			}
			return err
		}

		res, err := tx.ExecContext(ctx, qIncrement, v.OptionID, v.PollID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			// The option exists but belongs to another poll.
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
