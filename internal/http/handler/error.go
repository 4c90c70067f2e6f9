package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/logging"
	"ubuntuhub/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// badRequest is a request-shape problem detected by the handler itself.
type badRequest struct {
	code    string
	message string
}

func (e *badRequest) Error() string { return e.message }

var (
	errInvalidID     = &badRequest{code: "INVALID_ID", message: "invalid id format"}
	errInvalidLimit  = &badRequest{code: "INVALID_LIMIT", message: "invalid limit"}
	errInvalidOffset = &badRequest{code: "INVALID_OFFSET", message: "invalid offset"}
	errInvalidBody   = &badRequest{code: "INVALID_BODY", message: "request body must be valid JSON"}
	errFileRequired  = &badRequest{code: "FILE_REQUIRED", message: "file is required"}
)

func errInvalidTime(param string) error {
	return &badRequest{code: "INVALID_TIME", message: param + " must be an RFC 3339 timestamp"}
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// serviceErrors maps service sentinels to responses. The sentinel's own text is the message.
var serviceErrors = []errorMapping{
	{service.ErrIDRequired, fiber.StatusBadRequest, "INVALID_ID"},
	{service.ErrUserRequired, fiber.StatusUnauthorized, "USER_REQUIRED"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{sql.ErrNoRows, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrSlotUnavailable, fiber.StatusConflict, "SLOT_UNAVAILABLE"},
	{service.ErrPollClosed, fiber.StatusConflict, "POLL_CLOSED"},
	{service.ErrOptionNotFound, fiber.StatusBadRequest, "INVALID_OPTION"},
	{service.ErrAlreadyVoted, fiber.StatusConflict, "ALREADY_VOTED"},
	{service.ErrNoSpotsLeft, fiber.StatusConflict, "NO_SPOTS_LEFT"},
	{service.ErrAlreadySignedUp, fiber.StatusConflict, "ALREADY_SIGNED_UP"},
	{service.ErrNotSignedUp, fiber.StatusNotFound, "NOT_SIGNED_UP"},
	{service.ErrEventFull, fiber.StatusConflict, "EVENT_FULL"},
	{service.ErrAlreadyRegistered, fiber.StatusConflict, "ALREADY_REGISTERED"},
	{service.ErrNotRegistered, fiber.StatusNotFound, "NOT_REGISTERED"},
	{service.ErrCampaignEnded, fiber.StatusConflict, "CAMPAIGN_ENDED"},
	{service.ErrGroupNameTaken, fiber.StatusConflict, "GROUP_NAME_TAKEN"},
}

// respondError translates err into the error envelope. Unknown errors are logged and
// answered with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var br *badRequest
	if errors.As(err, &br) {
		return writeError(c, fiber.StatusBadRequest, br.code, br.message)
	}
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
	}
	if errors.Is(err, service.ErrInvalidInterval) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_INTERVAL", err.Error())
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			msg := m.err.Error()
			if m.err == sql.ErrNoRows {
				msg = service.ErrNotFound.Error()
			}
			return writeError(c, m.status, m.code, msg)
		}
	}

	logging.Default().Error("request_failed", err, map[string]any{
		"request_id": middleware.RequestIDFromCtx(c),
		"method":     c.Method(),
		"path":       c.Path(),
	})
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			if status >= fiber.StatusInternalServerError {
				logging.Default().Error("unhandled_error", err, map[string]any{
					"request_id": middleware.RequestIDFromCtx(c),
					"path":       c.Path(),
				})
			}
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}

// RejectUserID answers requests whose X-User-ID header is not a UUID.
func RejectUserID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_USER_ID", "X-User-ID must be a UUID")
}
