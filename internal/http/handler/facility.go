package handler

import (
	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/service"
)

func CreateFacility(svc service.FacilityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.FacilityInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		f, err := svc.Create(c.UserContext(), orgID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

func ListFacilities(svc service.FacilityService) fiber.Handler {
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

func GetFacility(svc service.FacilityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

// CheckAvailability answers GET /facilities/:id/availability?start=&end=.
func CheckAvailability(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		start, err := timeQuery(c, "start", true)
		if err != nil {
			return respondError(c, err)
		}
		end, err := timeQuery(c, "end", true)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.CheckAvailability(c.UserContext(), id, start, end)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// ListBookings answers GET /facilities/:id/bookings?from=&to=.
func ListBookings(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		from, err := timeQuery(c, "from", false)
		if err != nil {
			return respondError(c, err)
		}
		to, err := timeQuery(c, "to", false)
		if err != nil {
			return respondError(c, err)
		}
		bookings, err := svc.ListBookings(c.UserContext(), id, from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": bookings})
	}
}

func CreateBooking(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		var in service.BookingInput
		if err := bindJSON(c, &in); err != nil {
			return respondError(c, err)
		}
		b, err := svc.CreateBooking(c.UserContext(), id, middleware.UserIDFromCtx(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

func CancelBooking(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		b, err := svc.CancelBooking(c.UserContext(), id, middleware.UserIDFromCtx(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}
