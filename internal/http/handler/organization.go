package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/service"
)

func CreateOrganization(svc service.OrganizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.OrganizationInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		org, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(org)
	}
}

func ListOrganizations(svc service.OrganizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func GetOrganization(svc service.OrganizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		org, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(org)
	}
}

func UpdateOrganization(svc service.OrganizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.OrganizationInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		org, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(org)
	}
}

func DeleteOrganization(svc service.OrganizationService) fiber.Handler {
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
