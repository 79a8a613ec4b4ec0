package main

import (
	"log"

	"booking_console/client"
	"booking_console/config"
	"booking_console/database"
	"booking_console/handler"
	"booking_console/helper"
	"booking_console/router"
	"booking_console/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "booking-console",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	database.ConnectDB()

	var rdb *redis.Client
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	api := client.New(config.ConfigOr("BOOKING_API_URL", "http://localhost:8081/api/events"), nil)
	views := view.New(api)
	flash := handler.NewFlash(rdb)
	hub := handler.NewHub(rdb)
	sender := helper.NewTelegramSender()

	h := handler.New(api, views, flash, hub, sender, config.ConfigOr("PUBLIC_URL", "http://localhost:8002"))
	router.SetupRoutes(app, h, hub)

	helper.StartUpstreamProbe(api)
	defer helper.StopUpstreamProbe()
	helper.StartDigestScheduler(api)
	defer helper.StopDigestScheduler()

	log.Fatal(app.Listen(config.ConfigOr("LISTEN_ADDR", ":8002")))
}
