package handler

import (
	"errors"
	"log"

	"booking_console/client"
	"booking_console/constants"
	"booking_console/database"
	"booking_console/model"
	"booking_console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RenderEvents serves the event-list fragment. Fetch failures render inline
// (fail-closed: error markup replaces the list, no stale cards).
func (h *Handler) RenderEvents(c *fiber.Ctx) error {
	includeBookings := c.QueryBool("bookings")
	html, _ := h.views.Refresh(c.Context(), includeBookings)
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateEventRequest)

	event, err := h.api.CreateEvent(c.Context(), input)
	if err != nil {
		return h.actionFailed(c, "create_event", "", constants.CREATE_EVENT_FAILED, err)
	}

	h.actionSucceeded(c, "create_event", event.ID.String(), constants.EVENT_CREATED)
	// the admin view includes bookings
	return h.respondWithRefresh(c, constants.EVENT_CREATED, true, model.ActionResult{ClearForm: true})
}

func (h *Handler) BookSeats(c *fiber.Ctx) error {
	eventID := c.Locals("eventId").(uuid.UUID)
	input := c.Locals("bookInput").(model.BookInput)

	if _, err := h.api.BookSeats(c.Context(), eventID, input); err != nil {
		// the booking dialog stays open for correction
		return h.actionFailed(c, "book_seats", eventID.String(), constants.BOOK_SEATS_FAILED, err)
	}

	h.actionSucceeded(c, "book_seats", eventID.String(), constants.BOOKING_CREATED)
	return h.respondWithRefresh(c, constants.BOOKING_CREATED, false, model.ActionResult{CloseModal: "bookModal"})
}

func (h *Handler) ConfirmBooking(c *fiber.Ctx) error {
	eventID := c.Locals("eventId").(uuid.UUID)

	if err := h.api.ConfirmBooking(c.Context(), eventID); err != nil {
		return h.actionFailed(c, "confirm_booking", eventID.String(), constants.CONFIRM_BOOKING_FAILED, err)
	}

	h.actionSucceeded(c, "confirm_booking", eventID.String(), constants.BOOKING_CONFIRMED)
	return h.respondWithRefresh(c, constants.BOOKING_CONFIRMED, true, model.ActionResult{CloseModal: "confirmModal"})
}

func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	eventID := c.Locals("eventId").(uuid.UUID)

	var input model.CancelInput
	c.BodyParser(&input)
	if input.Confirm != "yes" {
		// user declined the prompt: no upstream call, no refresh
		return c.SendStatus(fiber.StatusNoContent)
	}

	if err := h.api.CancelBooking(c.Context(), eventID); err != nil {
		return h.actionFailed(c, "cancel_booking", eventID.String(), constants.CANCEL_BOOKING_FAILED, err)
	}

	h.actionSucceeded(c, "cancel_booking", eventID.String(), constants.BOOKING_CANCELLED)
	h.notifyCancelled(c, eventID)
	return h.respondWithRefresh(c, constants.BOOKING_CANCELLED, true, model.ActionResult{})
}

// EventQR returns a PNG QR code with the public booking link for an event.
func (h *Handler) EventQR(c *fiber.Ctx) error {
	eventID := c.Locals("eventId").(uuid.UUID)

	link := h.publicURL + "/booking?event=" + eventID.String()
	png, err := utils.GenerateQRCode(link, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// respondWithRefresh completes a successful action. The refresh is issued only
// after the action call finished; if the re-fetch itself fails, the success
// message still goes out and the fragment is the inline error markup.
func (h *Handler) respondWithRefresh(c *fiber.Ctx, message string, includeBookings bool, result model.ActionResult) error {
	html, err := h.views.Refresh(c.Context(), includeBookings)

	result.Message = message
	result.HTML = html
	result.RefreshFailed = err != nil
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (h *Handler) actionSucceeded(c *fiber.Ctx, action, eventID, message string) {
	database.RecordAudit(action, eventID, true, message)
	h.flash.Push(c, "success", message)
	h.hub.Broadcast()
}

func (h *Handler) actionFailed(c *fiber.Ctx, action, eventID, prefix string, err error) error {
	message := prefix + ": " + err.Error()
	database.RecordAudit(action, eventID, false, message)
	h.flash.Push(c, "error", message)

	status := fiber.StatusBadGateway
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) && reqErr.Status != 0 {
		status = reqErr.Status
	}
	return utils.ErrorResponse(c, status, message, err)
}

func (h *Handler) notifyCancelled(c *fiber.Ctx, eventID uuid.UUID) {
	if h.sender == nil {
		return
	}

	// best effort: look the event up again so the message can name it
	event, err := h.api.GetEventByID(c.Context(), eventID)
	if err != nil {
		log.Printf("cancel notice lookup failed: %v", err)
		return
	}
	for _, b := range event.Bookings {
		if b.Status == model.StatusCancelled && b.TelegramID != 0 {
			h.sender.SendCancellationNotice(b.TelegramID, event.Title)
			return
		}
	}
}
