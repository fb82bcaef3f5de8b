package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GroupBooking is a capacity-limited shared slot. The participant counter and
// the participant rows are only ever changed together inside one transaction.
type GroupBooking struct {
	gorm.Model
	ProviderID          uint               `json:"provider_id" gorm:"index"`
	Provider            ServiceProvider    `json:"provider" gorm:"foreignKey:ProviderID"`
	ServiceID           uint               `json:"service_id"`
	Service             Service            `json:"service" gorm:"foreignKey:ServiceID"`
	AppointmentTime     time.Time          `json:"appointment_time"`
	MaxParticipants     int                `json:"max_participants"`
	CurrentParticipants int                `json:"current_participants" gorm:"default:0"`
	Participants        []GroupParticipant `json:"participants,omitempty" gorm:"foreignKey:GroupBookingID"`
}

func (g *GroupBooking) BeforeCreate(tx *gorm.DB) error {
	if g.MaxParticipants < 1 {
		return fmt.Errorf("max_participants must be at least 1")
	}
	return nil
}

// IsFull reports whether no further joins are legal.
func (g *GroupBooking) IsFull() bool {
	return g.CurrentParticipants >= g.MaxParticipants
}

type GroupParticipant struct {
	gorm.Model
	GroupBookingID uint      `json:"group_booking_id" gorm:"index:idx_group_participant,unique"`
	UserID         uint      `json:"user_id" gorm:"index:idx_group_participant,unique"`
	User           User      `json:"user" gorm:"foreignKey:UserID"`
	JoinedAt       time.Time `json:"joined_at"`
}
