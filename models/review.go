package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Review is feedback on a completed booking. Only the booking's own user may
// author it, and only once the booking reached completed.
type Review struct {
	gorm.Model
	Rating     int             `json:"rating" gorm:"not null"`
	Comment    string          `json:"comment"`
	ProviderID uint            `json:"provider_id" gorm:"index"`
	Provider   ServiceProvider `json:"provider" gorm:"foreignKey:ProviderID"`
	UserID     uint            `json:"user_id"`
	User       User            `json:"user" gorm:"foreignKey:UserID"`
	BookingID  *uint           `json:"booking_id"`
	IsVerified bool            `json:"is_verified" gorm:"default:false"`
}

// BeforeCreate clamps the rating and enforces the completed-booking rule:
// a review attached to a booking requires that booking to belong to the
// reviewer and to have reached completed.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}

	if r.BookingID != nil && *r.BookingID > 0 {
		var booking Booking
		if err := tx.First(&booking, *r.BookingID).Error; err != nil {
			return fmt.Errorf("booking not found: %v", err)
		}
		if err := CanReviewBooking(&booking, r.UserID); err != nil {
			return err
		}
		r.IsVerified = true
	}
	return nil
}

// CanReviewBooking enforces the review anchor rules: the booking must belong
// to the reviewer and must have reached completed.
func CanReviewBooking(booking *Booking, userID uint) error {
	if booking.UserID != userID {
		return fmt.Errorf("cannot review another user's booking")
	}
	if booking.Status != StatusCompleted {
		return fmt.Errorf("cannot review an uncompleted booking")
	}
	return nil
}

// HasExistingReview reports whether this user already reviewed the provider.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("user_id = ? AND provider_id = ? AND deleted_at IS NULL", r.UserID, r.ProviderID).
		Count(&count).Error
	return count > 0, err
}
