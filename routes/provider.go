package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/controllers"
	"github.com/servibook/booking-platform/controllers/provider"
	"github.com/servibook/booking-platform/middleware"
)

// SetupProviderRoutes configures provider profile, dashboard and review routes
func SetupProviderRoutes(app *fiber.App) {
	providers := app.Group("/providers")

	// "me" routes must be registered before the ":id" wildcard
	providers.Put("/me", middleware.Protected(), middleware.RequireRole("provider"), provider.UpsertProviderProfile)
	providers.Post("/me/picture", middleware.Protected(), middleware.RequireRole("provider"), provider.UploadProfilePicture)
	providers.Post("/me/services/:id", middleware.Protected(), middleware.RequireRole("provider"), provider.AddOfferedService)
	providers.Get("/me/dashboard", middleware.Protected(), middleware.RequireRole("provider"), provider.GetDashboardOverview)
	providers.Get("/me/upcoming", middleware.Protected(), middleware.RequireRole("provider"), provider.GetUpcomingBookings)

	providers.Get("/:id", provider.GetProviderProfile)
	providers.Get("/:id/reviews", controllers.GetProviderReviews)

	reviews := app.Group("/reviews", middleware.Protected())
	reviews.Post("/", controllers.CreateReview)
}
