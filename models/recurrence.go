package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
)

// Recurrence is the rule a seed booking was expanded from. Generated
// occurrences are ordinary bookings with no back-reference; only the seed
// booking (or group booking) is linked here.
type Recurrence struct {
	gorm.Model
	BookingID      *uint               `json:"booking_id"`
	GroupBookingID *uint               `json:"group_booking_id"`
	Frequency      RecurrenceFrequency `json:"frequency"`
	Interval       uint                `json:"interval" gorm:"default:1"`
	EndDate        time.Time           `json:"end_date" gorm:"type:date"`
}

func (r *Recurrence) BeforeSave(tx *gorm.DB) error {
	_, err := RecurrenceDelta(r.Frequency, r.Interval)
	return err
}

// RecurrenceDelta maps a frequency and interval to the step between
// occurrences. Monthly is a fixed 30-day approximation, not calendar-month
// arithmetic. A zero interval is rejected: Schedule never advances on a
// zero delta.
func RecurrenceDelta(frequency RecurrenceFrequency, interval uint) (time.Duration, error) {
	if interval < 1 {
		return 0, fmt.Errorf("interval must be at least 1")
	}
	day := 24 * time.Hour
	switch frequency {
	case FrequencyDaily:
		return time.Duration(interval) * day, nil
	case FrequencyWeekly:
		return time.Duration(interval) * 7 * day, nil
	case FrequencyMonthly:
		return time.Duration(interval) * 30 * day, nil
	default:
		return 0, fmt.Errorf("invalid recurrence frequency: %s", frequency)
	}
}

// Schedule generates the occurrence instants after the seed time, advancing
// by the rule's delta until the advanced date passes EndDate. The seed
// instant itself is not included.
func (r *Recurrence) Schedule(seed time.Time) ([]time.Time, error) {
	delta, err := RecurrenceDelta(r.Frequency, r.Interval)
	if err != nil {
		return nil, err
	}
	endY, endM, endD := r.EndDate.Date()
	end := time.Date(endY, endM, endD, 0, 0, 0, 0, seed.Location())

	var occurrences []time.Time
	for t := seed.Add(delta); ; t = t.Add(delta) {
		y, m, d := t.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		if day.After(end) {
			break
		}
		occurrences = append(occurrences, t)
	}
	return occurrences, nil
}
