package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/service"
)

func CreateBusiness(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.BusinessInput
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

func ListBusinesses(svc service.BusinessService) fiber.Handler {
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

func GetBusiness(svc service.BusinessService) fiber.Handler {
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

func UpdateBusiness(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.BusinessInput
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

func DeleteBusiness(svc service.BusinessService) fiber.Handler {
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

// AddBusinessCard publishes a card under the business in the path.
func AddBusinessCard(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.BusinessCardInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		card, err := svc.AddCard(c.UserContext(), businessID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(card)
	}
}

func ListBusinessCards(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		limit, offset, err := pageParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.ListCards(c.UserContext(), businessID, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func DeleteBusinessCard(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.DeleteCard(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
