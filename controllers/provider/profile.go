package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
)

// GetProviderProfile returns a provider with offerings and availability.
func GetProviderProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	var serviceProvider models.ServiceProvider
	if err := db.DB.Preload("User").Preload("ServicesOffered").
		Preload("Availabilities").Preload("Exceptions").
		First(&serviceProvider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}
	serviceProvider.User.Password = ""
	return c.JSON(serviceProvider)
}

// UpsertProviderProfile creates or updates the caller's provider profile.
func UpsertProviderProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var serviceProvider models.ServiceProvider
	err := db.DB.Where("user_id = ?", userID).First(&serviceProvider).Error
	isNew := err != nil

	if parseErr := c.BodyParser(&serviceProvider); parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   parseErr.Error(),
		})
	}
	serviceProvider.UserID = userID

	if isNew {
		err = db.DB.Create(&serviceProvider).Error
	} else {
		err = db.DB.Save(&serviceProvider).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save provider profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(serviceProvider)
}

// UploadProfilePicture stores the provider's picture in Cloudinary and saves
// the returned URL.
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var serviceProvider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&serviceProvider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider profile not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing picture file",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadProfilePicture(file, fmt.Sprintf("provider_%d", serviceProvider.ID), "provider_profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	serviceProvider.ProfilePicture = url
	if err := db.DB.Save(&serviceProvider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save profile picture",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"profile_picture": url})
}

// AddOfferedService links an existing service to the caller's offerings.
func AddOfferedService(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}
	serviceID := c.Params("id")

	var serviceProvider models.ServiceProvider
	if err := db.DB.Where("user_id = ?", userID).First(&serviceProvider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider profile not found",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&serviceProvider).Association("ServicesOffered").Append(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add service to offerings",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Service added to offerings"})
}
