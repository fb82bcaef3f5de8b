package utils

import (
	"testing"
	"time"

	"github.com/servibook/booking-platform/models"
)

func TestWindowContains(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		instant time.Time
		want    bool
		wantErr bool
	}{
		{"inside window", "09:00", "17:00", time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC), true, false},
		{"exactly at open", "09:00", "17:00", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), true, false},
		{"exactly at close is still open", "09:00", "17:00", time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), true, false},
		{"one minute past close", "09:00", "17:00", time.Date(2026, 3, 2, 17, 1, 0, 0, time.UTC), false, false},
		{"one minute before open", "09:00", "17:00", time.Date(2026, 3, 2, 8, 59, 0, 0, time.UTC), false, false},
		{"evening window", "18:00", "22:00", time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC), true, false},
		{"bad start format", "9am", "17:00", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), false, true},
		{"bad end format", "09:00", "late", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := windowContains(tt.start, tt.end, tt.instant)
			if (err != nil) != tt.wantErr {
				t.Fatalf("windowContains() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("windowContains(%s, %s, %v) = %v, want %v", tt.start, tt.end, tt.instant, got, tt.want)
			}
		})
	}
}

func TestIsOpenAt(t *testing.T) {
	monday10 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // a Monday
	window := func(day models.DayOfWeek, start, end string) models.WeeklyAvailability {
		return models.WeeklyAvailability{DayOfWeek: day, StartTime: start, EndTime: end}
	}
	exceptionOn := func(y int, m time.Month, d int) models.AvailabilityException {
		return models.AvailabilityException{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	}

	tests := []struct {
		name       string
		windows    []models.WeeklyAvailability
		exceptions []models.AvailabilityException
		want       bool
	}{
		{"no windows at all means closed", nil, nil, false},
		{"matching window opens",
			[]models.WeeklyAvailability{window(models.Monday, "09:00", "17:00")}, nil, true},
		{"window on another day does not open",
			[]models.WeeklyAvailability{window(models.Tuesday, "09:00", "17:00")}, nil, false},
		{"any one of several windows opens",
			[]models.WeeklyAvailability{
				window(models.Monday, "06:00", "08:00"),
				window(models.Monday, "09:00", "17:00"),
			}, nil, true},
		{"exception overrides a matching window",
			[]models.WeeklyAvailability{window(models.Monday, "09:00", "17:00")},
			[]models.AvailabilityException{exceptionOn(2026, 3, 2)}, false},
		{"exception on another date is ignored",
			[]models.WeeklyAvailability{window(models.Monday, "09:00", "17:00")},
			[]models.AvailabilityException{exceptionOn(2026, 3, 3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isOpenAt(tt.windows, tt.exceptions, monday10)
			if err != nil {
				t.Fatalf("isOpenAt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isOpenAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Wall-clock semantics: the same window admits the same local time-of-day
// regardless of the zone the instant carries.
func TestWindowContainsIgnoresZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	instant := time.Date(2026, 3, 2, 10, 0, 0, 0, ist)

	got, err := windowContains("09:00", "17:00", instant)
	if err != nil {
		t.Fatalf("windowContains() error = %v", err)
	}
	if !got {
		t.Errorf("10:00 local should be inside 09:00-17:00 regardless of zone")
	}
}
