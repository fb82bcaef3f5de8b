package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/servibook/booking-platform/cron"

	"github.com/servibook/booking-platform/db"

	"github.com/servibook/booking-platform/redis"

	"github.com/servibook/booking-platform/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Booking platform up")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupProviderRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
