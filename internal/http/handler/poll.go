package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/service"
)

type voteRequest struct {
	OptionID string `json:"option_id"`
}

func CreatePoll(svc service.PollService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.PollInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		p, err := svc.Create(c.UserContext(), orgID, middleware.UserIDFromCtx(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

func ListPolls(svc service.PollService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		limit, offset, err := pageParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.ListByOrganization(c.UserContext(), orgID, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetPoll returns tallies; has_voted reflects the X-User-ID caller.
func GetPoll(svc service.PollService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		p, err := svc.Get(c.UserContext(), id, middleware.UserIDFromCtx(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

func Vote(svc service.PollService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var req voteRequest
		if err := bindJSON(c, &req); err != nil {
			return respondError(c, err)
		}
		if optionID, err := parseUUID(req.OptionID); err == nil {
			req.OptionID = optionID
		}
		p, err := svc.Vote(c.UserContext(), id, req.OptionID, middleware.UserIDFromCtx(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}
