package handler

import (
	"fmt"
	"net/url"
	"time"

	"booking_console/config"
	"booking_console/utils"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature signs direct-to-cloudinary upload params for event poster
// assets. The browser uploads the file itself; the console never proxies it.
func (h *Handler) GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params", err)
	}

	timestamp := time.Now().Unix()

	signable := url.Values{}
	signable.Set("timestamp", fmt.Sprintf("%d", timestamp))
	if params.Folder == "" {
		params.Folder = "event-posters"
	}
	signable.Set("folder", params.Folder)
	if params.PublicID != "" {
		signable.Set("public_id", params.PublicID)
	}

	signature, err := api.SignParameters(signable, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not sign params", err)
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
		"folder":    params.Folder,
	})
}
