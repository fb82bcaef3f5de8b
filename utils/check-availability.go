package utils

import (
	"errors"
	"time"

	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"gorm.io/gorm"
)

// Reason strings returned by the admission gate. The probe endpoint and the
// booking pipeline both surface these verbatim.
const (
	ReasonMissingParameters  = "missing required parameters"
	ReasonInvalidTimeFormat  = "invalid appointment_time format"
	ReasonProviderClosed     = "provider not available at this time"
	ReasonServiceNotFound    = "service does not exist"
	ReasonServiceInactive    = "service not available"
	ReasonServiceNotOffered  = "provider does not offer this service"
	ReasonOverlappingBooking = "overlapping booking found"
	ReasonSlotAvailable      = "time slot is available"
)

// ErrOverlappingBooking distinguishes a slot conflict inside a booking
// transaction from infrastructure failures, which map to different HTTP
// statuses.
var ErrOverlappingBooking = errors.New(ReasonOverlappingBooking)

var appointmentTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseAppointmentTime parses the ISO-8601-ish timestamps booking requests
// carry. No timezone normalization happens beyond what the string encodes.
func ParseAppointmentTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range appointmentTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ProtectedWindow is the buffer-expanded interval
// [start-buffer, start+duration+buffer] that must not intersect any other
// booking for the same provider.
func ProtectedWindow(start time.Time, duration, buffer time.Duration) (time.Time, time.Time) {
	return start.Add(-buffer), start.Add(duration).Add(buffer)
}

// IntervalsOverlap tests true interval intersection with strict bounds:
// windows that merely touch do not conflict.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasBookingConflict checks the candidate's protected window against the
// stored protected windows of every live booking for the provider, locking
// the matched rows so a concurrent writer re-running this check inside its
// own insert transaction blocks until we commit. Cancelled bookings do not
// hold their slot. excludeBookingID skips that booking's own row, which a
// reschedule would otherwise always collide with; 0 skips nothing.
func HasBookingConflict(tx *gorm.DB, providerID uint, start time.Time, duration, buffer time.Duration, excludeBookingID uint) (bool, error) {
	candidateStart, candidateEnd := ProtectedWindow(start, duration, buffer)

	var overlapping []models.Booking
	err := tx.Raw(`
		SELECT *
		FROM bookings
		WHERE provider_id = ?
		  AND status <> ?
		  AND deleted_at IS NULL
		  AND buffer_start < ?
		  AND buffer_end > ?
		FOR UPDATE
	`, providerID, models.StatusCancelled, candidateEnd, candidateStart).
		Scan(&overlapping).Error
	if err != nil {
		return false, err
	}
	return firstConflict(overlapping, candidateStart, candidateEnd, excludeBookingID) != nil, nil
}

// firstConflict returns the first booking whose stored protected window
// truly intersects the candidate window, skipping excludeID (0 skips
// nothing).
func firstConflict(bookings []models.Booking, candidateStart, candidateEnd time.Time, excludeID uint) *models.Booking {
	for i := range bookings {
		b := &bookings[i]
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if IntervalsOverlap(b.BufferStart, b.BufferEnd, candidateStart, candidateEnd) {
			return b
		}
	}
	return nil
}

// CheckSlotAvailability is the single admission gate: a pure read-side query
// run as a pre-flight probe and again before every booking insert. Checks
// run in order and short-circuit on the first failure. The returned service
// is non-nil only once the service checks have passed. excludeBookingID is
// 0 for new bookings and the booking's own ID for reschedules.
func CheckSlotAvailability(providerID, serviceID uint, appointmentTime string, excludeBookingID uint) (bool, string, time.Time, *models.Service, error) {
	if providerID == 0 || serviceID == 0 || appointmentTime == "" {
		return false, ReasonMissingParameters, time.Time{}, nil, nil
	}

	parsed, err := ParseAppointmentTime(appointmentTime)
	if err != nil {
		return false, ReasonInvalidTimeFormat, time.Time{}, nil, nil
	}

	open, err := IsProviderOpen(providerID, parsed)
	if err != nil {
		return false, "", time.Time{}, nil, err
	}
	if !open {
		return false, ReasonProviderClosed, parsed, nil, nil
	}

	var service models.Service
	if err := db.DB.Preload("Category").First(&service, serviceID).Error; err != nil {
		return false, ReasonServiceNotFound, parsed, nil, nil
	}
	if !service.IsActive {
		return false, ReasonServiceInactive, parsed, &service, nil
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, providerID).Error; err != nil {
		return false, ReasonProviderClosed, parsed, &service, nil
	}
	offered, err := provider.OffersService(db.DB, serviceID)
	if err != nil {
		return false, "", parsed, &service, err
	}
	if !offered {
		return false, ReasonServiceNotOffered, parsed, &service, nil
	}

	conflict, err := HasBookingConflict(db.DB, providerID, parsed, service.Duration, service.BufferTime, excludeBookingID)
	if err != nil {
		return false, "", parsed, &service, err
	}
	if conflict {
		return false, ReasonOverlappingBooking, parsed, &service, nil
	}

	return true, ReasonSlotAvailable, parsed, &service, nil
}
