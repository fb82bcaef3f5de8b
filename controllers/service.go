package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
)

// GetAllServices lists services; inactive services are hidden unless
// include_inactive is set (providers managing their catalog need them).
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Preload("Category")
	if c.Query("include_inactive") == "" {
		query = query.Where("is_active = ?", true)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns a single service with its category and providers.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Category").Preload("Providers").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// CreateService creates a service and, when the caller is a provider, adds
// it to that provider's offerings in the same request.
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		var provider models.ServiceProvider
		if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err == nil {
			db.DB.Model(&provider).Association("ServicesOffered").Append(service)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService modifies a service. Historical bookings keep their persisted
// total_price; price changes only affect future bookings.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeactivateService flips is_active off; the admission gate rejects bookings
// for inactive services.
func DeactivateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	service.IsActive = false
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to deactivate service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// GetCategories lists service categories.
func GetCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// CreateCategory adds a service category.
func CreateCategory(c *fiber.Ctx) error {
	category := new(models.ServiceCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(category).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
