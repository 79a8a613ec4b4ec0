package handler

import (
	"errors"

	"booking_console/config"
	"booking_console/constants"
	"booking_console/helper"
	"booking_console/model"
	"booking_console/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	if !helper.AuthEnabled() {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "authentication disabled"})
	}

	loginInput := new(model.LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	if loginInput.Username != config.ConfigOr("ADMIN_USERNAME", "admin") ||
		!helper.CheckPasswordHash(loginInput.Password, config.Config("ADMIN_PASSWORD_HASH")) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("credentials do not match"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{Username: loginInput.Username})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"username": loginInput.Username})
}
