package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/service"
)

func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.EventInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		e, err := svc.Create(c.UserContext(), orgID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

func ListEvents(svc service.EventService) fiber.Handler {
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

func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(e)
	}
}

func RegisterForEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		e, err := svc.Register(c.UserContext(), id, middleware.UserIDFromCtx(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

func UnregisterFromEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		e, err := svc.Unregister(c.UserContext(), id, middleware.UserIDFromCtx(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(e)
	}
}
