package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
	"gorm.io/gorm"
)

// bookingErrorStatus maps booking-transaction failures to HTTP statuses:
// slot conflicts are 409, anything else is an internal failure.
func bookingErrorStatus(err error) int {
	if errors.Is(err, utils.ErrOverlappingBooking) {
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// CreateBookingRequest is the booking-creation payload. Duration is an
// optional override; when omitted the service's nominal duration applies.
type CreateBookingRequest struct {
	ProviderID      uint             `json:"provider_id"`
	ServiceID       uint             `json:"service_id"`
	AppointmentTime string           `json:"appointment_time"`
	Duration        *models.Duration `json:"duration"`
	Notes           string           `json:"notes"`
	Recurrence      *struct {
		Frequency models.RecurrenceFrequency `json:"frequency"`
		Interval  uint                       `json:"interval"`
		EndDate   string                     `json:"end_date"`
	} `json:"recurrence"`
}

// CreateBooking runs the admission gate, then creates the booking (and, for
// recurring requests, the whole occurrence series) inside one transaction.
// The gate's conflict check is re-run inside the transaction with row locks
// held, so two concurrent requests for the same slot cannot both insert.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	available, reason, appointmentTime, service, err := utils.CheckSlotAvailability(req.ProviderID, req.ServiceID, req.AppointmentTime, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}
	if !available {
		status := fiber.StatusConflict
		if reason == utils.ReasonMissingParameters || reason == utils.ReasonInvalidTimeFormat {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(utils.ErrorResponse{Message: reason})
	}

	duration := service.Duration
	if req.Duration != nil && req.Duration.ToDuration() > 0 {
		duration = req.Duration.ToDuration()
	}

	var rule *models.Recurrence
	if req.Recurrence != nil {
		endDate, err := time.Parse("2006-01-02", req.Recurrence.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid recurrence end_date format",
				Error:   err.Error(),
			})
		}
		interval := req.Recurrence.Interval
		if interval == 0 {
			interval = 1
		}
		rule = &models.Recurrence{
			Frequency: req.Recurrence.Frequency,
			Interval:  interval,
			EndDate:   endDate,
		}
		if _, err := models.RecurrenceDelta(rule.Frequency, rule.Interval); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid recurrence rule",
				Error:   err.Error(),
			})
		}
	}

	booking := models.Booking{
		UserID:          userID,
		ProviderID:      req.ProviderID,
		ServiceID:       req.ServiceID,
		AppointmentTime: appointmentTime,
		Notes:           req.Notes,
		TotalPrice:      utils.CalculatePrice(service, duration),
	}
	booking.SetSchedule(service, duration)

	// Seed, recurrence rule and every occurrence commit or roll back
	// together; a conflict on occurrence k undoes the whole series.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		conflict, err := utils.HasBookingConflict(tx, booking.ProviderID, booking.AppointmentTime, duration, service.BufferTime, 0)
		if err != nil {
			return err
		}
		if conflict {
			return utils.ErrOverlappingBooking
		}

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if rule != nil {
			rule.BookingID = &booking.ID
			if err := tx.Create(rule).Error; err != nil {
				return fmt.Errorf("failed to create recurrence: %v", err)
			}
			if _, err := utils.ExpandRecurrence(tx, &booking, rule); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(bookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Fire-and-forget: email, calendar invite and invoice must never fail
	// the booking itself.
	go utils.DispatchBookingNotifications(booking.ID)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookings lists bookings. Staff see everything; everyone else sees only
// their own. Supports status and date-range filters.
func GetBookings(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	query := db.DB.Preload("Service").Preload("Provider").Preload("User").
		Order("appointment_time desc")

	if role != "admin" {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns a single booking by ID. Visible only to its customer,
// its provider, or staff.
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("User").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if !booking.CanModify(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot view this booking",
		})
	}
	return c.JSON(booking)
}

// UpdateBookingStatus applies a guarded lifecycle transition
// (confirm/complete/cancel). Terminal states reject all further changes.
// Only the booking's customer, its provider, or staff may transition it.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Provider").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if !booking.CanModify(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot modify this booking",
		})
	}
	if err := booking.UpdateStatus(db.DB, body.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CancelBooking is the escape transition from any non-terminal state.
func CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var booking models.Booking
	if err := db.DB.Preload("Provider").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if !booking.CanModify(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot cancel this booking",
		})
	}
	if err := booking.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "booking cancelled"})
}

// RescheduleBooking moves a booking to a new slot. The new slot passes the
// full admission gate and the overlap re-check inside the update
// transaction, exactly like a fresh booking.
func RescheduleBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var body struct {
		AppointmentTime string `json:"appointment_time"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if !booking.CanModify(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot reschedule this booking",
		})
	}
	if booking.Status == models.StatusCancelled || booking.Status == models.StatusCompleted {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("cannot reschedule a %s booking", booking.Status),
		})
	}

	// The booking's own row must not count against the new slot.
	available, reason, newTime, service, err := utils.CheckSlotAvailability(booking.ProviderID, booking.ServiceID, body.AppointmentTime, booking.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}
	if !available {
		status := fiber.StatusConflict
		if reason == utils.ReasonMissingParameters || reason == utils.ReasonInvalidTimeFormat {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(utils.ErrorResponse{Message: reason})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		conflict, err := utils.HasBookingConflict(tx, booking.ProviderID, newTime, booking.Duration, service.BufferTime, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return utils.ErrOverlappingBooking
		}

		booking.AppointmentTime = newTime
		y, m, d := newTime.Date()
		booking.Date = time.Date(y, m, d, 0, 0, 0, 0, newTime.Location())
		booking.SetSchedule(service, booking.Duration)
		return tx.Save(&booking).Error
	})
	if err != nil {
		return c.Status(bookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// UpdatePaymentStatus moves the payment state (pending -> paid -> refunded).
func UpdatePaymentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var body struct {
		PaymentStatus models.PaymentStatus `json:"payment_status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if err := booking.UpdatePaymentStatus(db.DB, body.PaymentStatus); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid payment status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}
