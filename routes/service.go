package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/controllers"
	"github.com/servibook/booking-platform/middleware"
)

// SetupServiceRoutes configures all service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole("provider"), controllers.CreateService)
	service.Patch("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.UpdateService)
	service.Patch("/:id/deactivate", middleware.Protected(), middleware.RequireRole("provider"), controllers.DeactivateService)

	category := app.Group("/categories")
	category.Get("/", controllers.GetCategories)
	category.Post("/", middleware.Protected(), middleware.RequireRole("admin"), controllers.CreateCategory)

	favorite := app.Group("/favorites", middleware.Protected())
	favorite.Get("/", controllers.GetFavorites)
	favorite.Post("/:id", controllers.AddFavorite)
	favorite.Delete("/:id", controllers.RemoveFavorite)
}
