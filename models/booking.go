package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a single confirmed-or-pending appointment. The buffer-expanded
// protected window is persisted at creation so overlap checks and the
// storage-level race guard can compare interval bounds directly instead of
// recomputing them from the service on every read.
type Booking struct {
	gorm.Model
	Reference       string          `json:"reference" gorm:"uniqueIndex"`
	UserID          uint            `json:"user_id"`
	User            User            `json:"user" gorm:"foreignKey:UserID"`
	ProviderID      uint            `json:"provider_id" gorm:"index"`
	Provider        ServiceProvider `json:"provider" gorm:"foreignKey:ProviderID"`
	ServiceID       uint            `json:"service_id"`
	Service         Service         `json:"service" gorm:"foreignKey:ServiceID"`
	AppointmentTime time.Time       `json:"appointment_time" gorm:"index"`
	Date            time.Time       `json:"date" gorm:"type:date"`
	EndTime         time.Time       `json:"end_time"`
	BufferStart     time.Time       `json:"buffer_start"`
	BufferEnd       time.Time       `json:"buffer_end"`
	Duration        time.Duration   `json:"duration"`
	Status          BookingStatus   `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2)"`
	Notes           string          `json:"notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	if b.Date.IsZero() && !b.AppointmentTime.IsZero() {
		y, m, d := b.AppointmentTime.Date()
		b.Date = time.Date(y, m, d, 0, 0, 0, 0, b.AppointmentTime.Location())
	}
	return nil
}

// SetSchedule derives duration, end time and the protected window from the
// service. An explicit duration overrides the service default; the buffer
// always comes from the service.
func (b *Booking) SetSchedule(service *Service, duration time.Duration) {
	if duration <= 0 {
		duration = service.Duration
	}
	b.Duration = duration
	b.EndTime = b.AppointmentTime.Add(duration)
	b.BufferStart = b.AppointmentTime.Add(-service.BufferTime)
	b.BufferEnd = b.EndTime.Add(service.BufferTime)
}

// CanModify reports whether the user may read or mutate the booking: staff,
// the booking's own customer, or the provider's account. Provider must be
// preloaded for the provider check to apply.
func (b *Booking) CanModify(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	if b.UserID == userID {
		return true
	}
	return b.Provider.UserID != 0 && b.Provider.UserID == userID
}

// CanTransition reports whether the status change is legal. Completed and
// cancelled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// UpdateStatus applies a guarded state transition and persists it.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if b.Status == StatusCompleted || b.Status == StatusCancelled {
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}
	b.Status = newStatus
	return tx.Save(b).Error
}

// UpdatePaymentStatus moves the payment along pending -> paid -> refunded.
func (b *Booking) UpdatePaymentStatus(tx *gorm.DB, newStatus PaymentStatus) error {
	switch {
	case b.PaymentStatus == PaymentPending && newStatus == PaymentPaid:
	case b.PaymentStatus == PaymentPaid && newStatus == PaymentRefunded:
	default:
		return fmt.Errorf("invalid payment transition from %s to %s", b.PaymentStatus, newStatus)
	}
	b.PaymentStatus = newStatus
	return tx.Save(b).Error
}
