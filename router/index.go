package router

import (
	"booking_console/handler"
	"booking_console/middleware"
	"booking_console/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, hub *handler.Hub) {
	auth := app.Group("/auth", logger.New())
	auth.Post("/login", h.Login)

	console := app.Group("/console", logger.New())
	console.Get("/events", h.RenderEvents)
	console.Get("/events/:id/qr", validate.EventID("id"), h.EventQR)
	console.Get("/notifications", h.Notifications)

	console.Post("/events", middleware.Protected(), validate.CreateEvent(), h.CreateEvent)
	console.Post("/events/:id/book", validate.EventID("id"), validate.BookSeats(), h.BookSeats)
	console.Post("/events/:id/confirm", middleware.Protected(), validate.EventID("id"), h.ConfirmBooking)
	console.Post("/events/:id/cancel", middleware.Protected(), validate.EventID("id"), h.CancelBooking)

	console.Get("/audit", middleware.Protected(), h.GetAudit)
	console.Post("/cloudinary-signature", middleware.Protected(), h.GenerateSignature)

	console.Get("/ws", websocket.New(hub.Websocket))

	app.Static("/", "./web")
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile("./web/index.html")
	})
	app.Get("/booking", func(c *fiber.Ctx) error {
		return c.SendFile("./web/booking.html")
	})
}
