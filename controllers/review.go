package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
	"gorm.io/gorm"
)

// CreateReview adds a review for a provider. The completed-booking and
// ownership rules are enforced by the model's create hook; the provider's
// average rating is recomputed as an explicit step after the commit.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	review.UserID = userID

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, review.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "You have already reviewed this provider",
		})
	}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	// Post-commit aggregate update, deliberately outside the write path.
	if err := recomputeProviderRating(db.DB, review.ProviderID); err != nil {
		log.Printf("Failed to recompute rating for provider %d: %v", review.ProviderID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// recomputeProviderRating writes the current review average through to the
// provider row.
func recomputeProviderRating(tx *gorm.DB, providerID uint) error {
	var avg float64
	err := tx.Model(&models.Review{}).
		Where("provider_id = ? AND deleted_at IS NULL", providerID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.ServiceProvider{}).
		Where("id = ?", providerID).
		Update("rating", avg).Error
}

// GetProviderReviews lists reviews for a provider, newest first.
func GetProviderReviews(c *fiber.Ctx) error {
	providerID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, first_name, last_name, created_at")
	}).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("provider_id = ?", providerID).Count(&count)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"page":    page,
		"limit":   limit,
	})
}
