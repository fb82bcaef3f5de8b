package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
)

// GetDashboardOverview returns the provider's booking and revenue metrics.
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var serviceProvider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&serviceProvider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider profile not found",
		})
	}

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		ActiveServices int64     `json:"active_services"`
		Revenue        string    `json:"revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	base := db.DB.Model(&models.Booking{}).Where("provider_id = ?", serviceProvider.ID)
	base.Count(&statistics.TotalBookings)

	countByStatus := func(status models.BookingStatus, dest *int64) {
		db.DB.Model(&models.Booking{}).
			Where("provider_id = ? AND status = ?", serviceProvider.ID, status).
			Count(dest)
	}
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)
	countByStatus(models.StatusCancelled, &statistics.CancelledCount)

	db.DB.Table("provider_services").
		Joins("JOIN services ON services.id = provider_services.service_id").
		Where("provider_services.service_provider_id = ? AND services.is_active = ?", serviceProvider.ID, true).
		Count(&statistics.ActiveServices)

	// Revenue comes from persisted totals of completed bookings, so later
	// service price changes never distort history.
	var revenue struct {
		Total string
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)::text AS total").
		Where("provider_id = ? AND status = ?", serviceProvider.ID, models.StatusCompleted).
		Scan(&revenue)
	statistics.Revenue = revenue.Total
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetUpcomingBookings returns the provider's pending and confirmed bookings
// inside a date window (today, tomorrow, week, month).
func GetUpcomingBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var serviceProvider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&serviceProvider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider profile not found",
		})
	}

	limit := 10
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 1, 0)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		startDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	}

	var bookings []models.Booking
	err := db.DB.
		Preload("Service").
		Preload("User").
		Where("provider_id = ?", serviceProvider.ID).
		Where("appointment_time BETWEEN ? AND ?", startDate, endDate).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("appointment_time asc").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings":   bookings,
		"count":      len(bookings),
		"filter":     dateFilter,
		"start_date": startDate.Format("2006-01-02"),
		"end_date":   endDate.Format("2006-01-02"),
	})
}
