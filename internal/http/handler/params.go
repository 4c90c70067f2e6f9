package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uuidParam returns the route parameter name in canonical lowercase form.
func uuidParam(c *fiber.Ctx, name string) (string, error) {
	return parseUUID(c.Params(name))
}

func parseUUID(raw string) (string, error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", errInvalidID
	}
	return u.String(), nil
}

// pageParams reads limit and offset, defaulting to 10 and 0.
func pageParams(c *fiber.Ctx) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, errInvalidLimit
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, errInvalidOffset
	}
	return limit, offset, nil
}

// timeQuery parses an RFC 3339 query value. An absent value yields the zero time
// unless required.
func timeQuery(c *fiber.Ctx, key string, required bool) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		if required {
			return time.Time{}, errInvalidTime(key)
		}
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errInvalidTime(key)
	}
	return t, nil
}

func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return nil
}
