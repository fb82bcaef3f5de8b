package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
)

// CheckAvailability is the read-only availability probe:
// GET /availability/check?provider_id=&service_id=&appointment_time=
// Business "not available" answers are 200 payloads; only malformed input
// is a 400.
func CheckAvailability(c *fiber.Ctx) error {
	providerID, _ := strconv.ParseUint(c.Query("provider_id"), 10, 32)
	serviceID, _ := strconv.ParseUint(c.Query("service_id"), 10, 32)
	appointmentTime := c.Query("appointment_time")

	available, reason, _, _, err := utils.CheckSlotAvailability(uint(providerID), uint(serviceID), appointmentTime, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}

	status := fiber.StatusOK
	if reason == utils.ReasonMissingParameters || reason == utils.ReasonInvalidTimeFormat {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"available": available,
		"reason":    reason,
	})
}

// canManageProvider reports whether the caller may manage calendar rows
// belonging to the given provider.
func canManageProvider(role string, callerProviderID, targetProviderID uint) bool {
	if role == "admin" {
		return true
	}
	return callerProviderID != 0 && callerProviderID == targetProviderID
}

// callerProviderID resolves the caller's own provider profile ID, 0 when
// the user has none.
func callerProviderID(c *fiber.Ctx) uint {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0
	}
	var provider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return 0
	}
	return provider.ID
}

// GetProviderAvailability lists a provider's weekly windows.
func GetProviderAvailability(c *fiber.Ctx) error {
	providerID := c.Params("id")
	var windows []models.WeeklyAvailability
	if err := db.DB.Where("provider_id = ?", providerID).Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(windows)
}

// CreateAvailability adds a weekly window for the caller's own provider
// profile and drops the cached windows so the calendar sees the change
// immediately.
func CreateAvailability(c *fiber.Ctx) error {
	window := new(models.WeeklyAvailability)
	if err := c.BodyParser(window); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	callerID := callerProviderID(c)
	if window.ProviderID == 0 {
		window.ProviderID = callerID
	}
	if !canManageProvider(role, callerID, window.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only manage your own availability",
		})
	}

	if err := db.DB.Create(window).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create availability window",
			Error:   err.Error(),
		})
	}
	utils.InvalidateAvailabilityCache(window.ProviderID)
	return c.Status(fiber.StatusCreated).JSON(window)
}

// UpdateAvailability modifies a weekly window.
func UpdateAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var window models.WeeklyAvailability
	if err := db.DB.First(&window, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability window not found",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	if !canManageProvider(role, callerProviderID(c), window.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only manage your own availability",
		})
	}

	ownerID := window.ProviderID
	if err := c.BodyParser(&window); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	// The window cannot be reassigned to another provider.
	window.ProviderID = ownerID

	if err := db.DB.Save(&window).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to update availability window",
			Error:   err.Error(),
		})
	}
	utils.InvalidateAvailabilityCache(window.ProviderID)
	return c.JSON(window)
}

// DeleteAvailability removes a weekly window. Removing windows never
// cascades to the provider.
func DeleteAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	var window models.WeeklyAvailability
	if err := db.DB.First(&window, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability window not found",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	if !canManageProvider(role, callerProviderID(c), window.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only manage your own availability",
		})
	}

	if err := db.DB.Delete(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability window",
			Error:   err.Error(),
		})
	}
	utils.InvalidateAvailabilityCache(window.ProviderID)
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProviderExceptions lists a provider's blackout dates.
func GetProviderExceptions(c *fiber.Ctx) error {
	providerID := c.Params("id")
	var exceptions []models.AvailabilityException
	if err := db.DB.Where("provider_id = ?", providerID).Find(&exceptions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability exceptions",
			Error:   err.Error(),
		})
	}
	return c.JSON(exceptions)
}

// CreateException blacks out a whole calendar date for the caller's own
// provider profile.
func CreateException(c *fiber.Ctx) error {
	exception := new(models.AvailabilityException)
	if err := c.BodyParser(exception); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	callerID := callerProviderID(c)
	if exception.ProviderID == 0 {
		exception.ProviderID = callerID
	}
	if !canManageProvider(role, callerID, exception.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only manage your own availability",
		})
	}

	if err := db.DB.Create(exception).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create availability exception",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(exception)
}

// DeleteException re-opens a blacked-out date.
func DeleteException(c *fiber.Ctx) error {
	id := c.Params("id")
	var exception models.AvailabilityException
	if err := db.DB.First(&exception, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability exception not found",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	if !canManageProvider(role, callerProviderID(c), exception.ProviderID) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only manage your own availability",
		})
	}

	if err := db.DB.Delete(&exception).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability exception",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
