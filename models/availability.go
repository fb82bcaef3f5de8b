package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeeklyAvailability is one recurring open window for a provider. A provider
// may hold several windows on the same day; they are never merged, any one
// match opens the slot.
type WeeklyAvailability struct {
	gorm.Model
	ProviderID uint            `json:"provider_id" gorm:"index"`
	Provider   ServiceProvider `json:"provider" gorm:"foreignKey:ProviderID"`
	DayOfWeek  DayOfWeek       `json:"day_of_week"`
	StartTime  string          `json:"start_time"` // "HH:MM" in 24h
	EndTime    string          `json:"end_time"`   // "HH:MM" in 24h
}

func (w *WeeklyAvailability) BeforeSave(tx *gorm.DB) error {
	layout := "15:04"
	start, err := time.Parse(layout, w.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start_time format: %v", err)
	}
	end, err := time.Parse(layout, w.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end_time format: %v", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("start_time must be before end_time")
	}
	if w.DayOfWeek < Sunday || w.DayOfWeek > Saturday {
		return fmt.Errorf("invalid day_of_week: %d", w.DayOfWeek)
	}
	return nil
}

// AvailabilityException marks a whole calendar date as closed regardless of
// the weekly windows. Partial-day exceptions are not supported.
type AvailabilityException struct {
	gorm.Model
	ProviderID uint            `json:"provider_id" gorm:"index"`
	Provider   ServiceProvider `json:"provider" gorm:"foreignKey:ProviderID"`
	Date       time.Time       `json:"date" gorm:"type:date"`
	Reason     string          `json:"reason"`
}
