package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/service"
)

func CreateGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.GroupInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		out, err := svc.Create(c.UserContext(), orgID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func ListGroups(svc service.GroupService) fiber.Handler {
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

func GetGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		out, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

func UpdateGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.GroupInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		out, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

func DeleteGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
