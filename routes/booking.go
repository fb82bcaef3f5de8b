package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/controllers"
	"github.com/servibook/booking-platform/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/", controllers.GetBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", controllers.CreateBooking)
	booking.Patch("/:id/status", controllers.UpdateBookingStatus)
	booking.Patch("/:id/cancel", controllers.CancelBooking)
	booking.Patch("/:id/reschedule", controllers.RescheduleBooking)
	booking.Patch("/:id/payment", middleware.RequireRole("admin"), controllers.UpdatePaymentStatus)

	group := app.Group("/group-bookings", middleware.Protected())
	group.Get("/", controllers.GetGroupBookings)
	group.Post("/", middleware.RequireRole("provider"), controllers.CreateGroupBooking)
	group.Post("/:id/join", controllers.JoinGroupBooking)
}
