package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/controllers"
	"github.com/servibook/booking-platform/middleware"
)

// SetupAvailabilityRoutes configures the availability probe and the weekly
// window / blackout management routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability")

	// Read-only pre-flight probe, callable by any authenticated user
	availability.Get("/check", middleware.Protected(), controllers.CheckAvailability)

	availability.Get("/providers/:id", controllers.GetProviderAvailability)
	availability.Post("/", middleware.Protected(), middleware.RequireRole("provider"), controllers.CreateAvailability)
	availability.Patch("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.UpdateAvailability)
	availability.Delete("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.DeleteAvailability)

	exceptions := app.Group("/availability-exceptions")
	exceptions.Get("/providers/:id", controllers.GetProviderExceptions)
	exceptions.Post("/", middleware.Protected(), middleware.RequireRole("provider"), controllers.CreateException)
	exceptions.Delete("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.DeleteException)
}
