package utils

import (
	"fmt"

	"github.com/servibook/booking-platform/models"
	"gorm.io/gorm"
)

// ExpandRecurrence generates and persists the occurrence series for a seed
// booking. Each occurrence is re-checked against existing bookings before it
// is created; the first conflict aborts with the failing occurrence index so
// the caller's transaction rolls back the whole series. Occurrences are
// ordinary bookings: same user, provider and service as the seed, each
// priced and protected-windowed independently.
func ExpandRecurrence(tx *gorm.DB, seed *models.Booking, rule *models.Recurrence) ([]models.Booking, error) {
	schedule, err := rule.Schedule(seed.AppointmentTime)
	if err != nil {
		return nil, err
	}

	var service models.Service
	if err := tx.First(&service, seed.ServiceID).Error; err != nil {
		return nil, fmt.Errorf("failed to load service for recurrence expansion: %v", err)
	}

	occurrences := make([]models.Booking, 0, len(schedule))
	for i, at := range schedule {
		conflict, err := HasBookingConflict(tx, seed.ProviderID, at, seed.Duration, service.BufferTime, 0)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, fmt.Errorf("recurring appointment conflicts with an existing booking at occurrence %d: %w", i+1, ErrOverlappingBooking)
		}

		booking := models.Booking{
			UserID:          seed.UserID,
			ProviderID:      seed.ProviderID,
			ServiceID:       seed.ServiceID,
			AppointmentTime: at,
			Notes:           seed.Notes,
			TotalPrice:      CalculatePrice(&service, seed.Duration),
		}
		booking.SetSchedule(&service, seed.Duration)
		if err := tx.Create(&booking).Error; err != nil {
			return nil, fmt.Errorf("failed to create occurrence %d: %v", i+1, err)
		}
		occurrences = append(occurrences, booking)
	}
	return occurrences, nil
}
