package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
)

// GetFavorites lists the caller's favorite services.
func GetFavorites(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.Preload("Favorites.Category").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(user.Favorites)
}

// AddFavorite marks a service as a favorite of the caller.
func AddFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}
	serviceID := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	user := models.User{ID: userID}
	if err := db.DB.Model(&user).Association("Favorites").Append(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add favorite",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Service added to favorites"})
}

// RemoveFavorite unmarks a favorite service.
func RemoveFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}
	serviceID := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	user := models.User{ID: userID}
	if err := db.DB.Model(&user).Association("Favorites").Delete(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove favorite",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
