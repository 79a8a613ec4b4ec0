// Package validate rejects malformed input before it ever reaches the booking
// API. A request that fails here causes no upstream traffic at all.
package validate

import (
	"errors"
	"time"

	"booking_console/constants"
	"booking_console/model"
	"booking_console/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// EventID parses the :id param into a UUID and stores it in locals.
func EventID(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params(key))
		if err != nil || id == uuid.Nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EVENT_ID, errors.New("params invalid"))
		}

		c.Locals("eventId", id)
		return c.Next()
	}
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_EVENT_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_EVENT_INPUT, err)
		}

		// datetime-local arrives without a zone; interpret it in the
		// console's timezone and send an absolute timestamp upstream.
		eventAt, err := parseLocalDateTime(input.EventAt)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_DATE_FORMAT, err)
		}

		c.Locals("createInput", model.CreateEventRequest{
			Title:      input.Title,
			EventAt:    eventAt.UTC(),
			TotalSeats: input.TotalSeats,
		})
		return c.Next()
	}
}

func BookSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_BOOKING_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.INVALID_BOOKING_INPUT, err)
		}

		c.Locals("bookInput", input)
		return c.Next()
	}
}

func parseLocalDateTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("invalid date format: " + s)
}
