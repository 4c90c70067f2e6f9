package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/service"
)

func CreateCampaign(svc service.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.CampaignInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		camp, err := svc.Create(c.UserContext(), orgID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(camp)
	}
}

func ListCampaigns(svc service.CampaignService) fiber.Handler {
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

func GetCampaign(svc service.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		camp, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(camp)
	}
}

// Donate accepts guests; the caller's X-User-ID is recorded when present.
func Donate(svc service.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.DonationInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		d, err := svc.Donate(c.UserContext(), id, middleware.UserIDFromCtx(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

func ListDonations(svc service.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		limit, offset, err := pageParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.ListDonations(c.UserContext(), id, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
