package handler

import (
	"booking_console/constants"
	"booking_console/database"
	"booking_console/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAudit lists the console's recent action trail, newest first.
func (h *Handler) GetAudit(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries, err := database.RecentAudit(limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, entries)
}
