package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetGroupBookings lists group bookings with their participants.
func GetGroupBookings(c *fiber.Ctx) error {
	var groups []models.GroupBooking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Participants").
		Order("appointment_time desc").Find(&groups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch group bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(groups)
}

// CreateGroupBooking opens a capacity-limited shared slot.
func CreateGroupBooking(c *fiber.Ctx) error {
	group := new(models.GroupBooking)
	if err := c.BodyParser(group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(group).Error; err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to create group booking",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// JoinGroupBooking adds the caller to a group. The row is locked, the
// capacity re-checked, and the counter and participant row written in one
// transaction so they can never diverge.
func JoinGroupBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}
	id := c.Params("id")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var group models.GroupBooking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, id).Error; err != nil {
			return fmt.Errorf("group booking not found")
		}
		if group.IsFull() {
			return fmt.Errorf("this group booking is full")
		}

		participant := models.GroupParticipant{
			GroupBookingID: group.ID,
			UserID:         userID,
			JoinedAt:       time.Now(),
		}
		if err := tx.Create(&participant).Error; err != nil {
			return fmt.Errorf("failed to join group booking: %v", err)
		}

		group.CurrentParticipants++
		return tx.Save(&group).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "You have successfully joined the group booking"})
}
