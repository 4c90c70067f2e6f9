// Package service holds the use cases behind the HTTP handlers: input validation,
// derived fields and translation of repository outcomes into the sentinels below.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ubuntuhub/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrUserRequired = errors.New("user id is required")
	ErrNotFound     = errors.New("resource not found")
	ErrReaderNil    = errors.New("reader is nil")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("not allowed to modify this resource")

	ErrInvalidInterval = errors.New("invalid time interval")
	ErrSlotUnavailable = errors.New("facility is already booked for the requested time")

	ErrPollClosed     = errors.New("poll is closed")
	ErrOptionNotFound = errors.New("option does not belong to poll")
	ErrAlreadyVoted   = errors.New("user has already voted on this poll")

	ErrNoSpotsLeft     = errors.New("no volunteer spots left")
	ErrAlreadySignedUp = errors.New("user is already signed up")
	ErrNotSignedUp     = errors.New("user is not signed up")

	ErrEventFull         = errors.New("event is at capacity")
	ErrAlreadyRegistered = errors.New("user is already registered")
	ErrNotRegistered     = errors.New("user is not registered")

	ErrCampaignEnded = errors.New("campaign has ended")

	ErrGroupNameTaken = errors.New("group name is already used in this organization")
)

// ValidationError names the offending field. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// requireText trims s and checks it is present and at most max runes long.
func requireText(field, s string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid(field, "is required")
	}
	if utf8.RuneCountInString(s) > max {
		return "", invalid(field, "must be at most %d characters", max)
	}
	return s, nil
}

// optionalText trims s and checks its length.
func optionalText(field, s string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > max {
		return "", invalid(field, "must be at most %d characters", max)
	}
	return s, nil
}

// optionalEmail trims s and, when present, checks it parses as an address.
func optionalEmail(field, s string) (string, error) {
	s, err := optionalText(field, s, 320)
	if err != nil || s == "" {
		return s, err
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "", invalid(field, "is not a valid email address")
	}
	return s, nil
}

// optionalURL trims s and, when present, checks it is an absolute http(s) URL.
func optionalURL(field, s string) (string, error) {
	s, err := optionalText(field, s, 500)
	if err != nil || s == "" {
		return s, err
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", invalid(field, "must be an http or https URL")
	}
	return s, nil
}

// ListResult is the service-level DTO for a page of items.
type ListResult[T any] struct {
	Items  []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func listResult[T any](res *repository.PageResult[T], pq repository.PageQuery) *ListResult[T] {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{Items: items, Total: res.Total, Limit: pq.Limit, Offset: pq.Offset}
}

// notFound maps a missing row onto ErrNotFound and passes anything else through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// canonicalID lowercases a UUID into the form Postgres returns it in. Anything that
// does not parse is passed through for the caller to report.
func canonicalID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

// percent returns part/whole as a percentage rounded to two decimals; 0 when whole is 0.
func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	p := float64(part) * 100 / float64(whole)
	return math.Round(p*100) / 100
}

var tracer = otel.Tracer("ubuntuhub/internal/service")

func startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, opts...)
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func utcNow() time.Time {
	return time.Now().UTC()
}
