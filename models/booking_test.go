package models

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanModify(t *testing.T) {
	booking := &Booking{UserID: 1, Provider: ServiceProvider{UserID: 2}}

	tests := []struct {
		name   string
		userID uint
		role   string
		want   bool
	}{
		{"admin always allowed", 99, "admin", true},
		{"booking owner allowed", 1, "client", true},
		{"provider account allowed", 2, "provider", true},
		{"unrelated client rejected", 3, "client", false},
		{"unrelated provider rejected", 3, "provider", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := booking.CanModify(tt.userID, tt.role); got != tt.want {
				t.Errorf("CanModify(%d, %s) = %v, want %v", tt.userID, tt.role, got, tt.want)
			}
		})
	}
}

// A booking loaded without its provider must not treat a zero user ID as
// the provider's account.
func TestCanModifyWithoutProviderLoaded(t *testing.T) {
	booking := &Booking{UserID: 1}
	if booking.CanModify(0, "client") {
		t.Error("zero user ID should never match an unloaded provider")
	}
}

func TestSetSchedule(t *testing.T) {
	svc := &Service{
		Duration:   time.Hour,
		BufferTime: 15 * time.Minute,
	}

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	b := &Booking{AppointmentTime: start}
	b.SetSchedule(svc, 0)

	if b.Duration != time.Hour {
		t.Errorf("Duration = %v, want %v", b.Duration, time.Hour)
	}
	if want := start.Add(time.Hour); !b.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", b.EndTime, want)
	}
	if want := start.Add(-15 * time.Minute); !b.BufferStart.Equal(want) {
		t.Errorf("BufferStart = %v, want %v", b.BufferStart, want)
	}
	if want := start.Add(time.Hour + 15*time.Minute); !b.BufferEnd.Equal(want) {
		t.Errorf("BufferEnd = %v, want %v", b.BufferEnd, want)
	}
}

func TestSetScheduleExplicitDurationOverride(t *testing.T) {
	svc := &Service{
		Duration:   time.Hour,
		BufferTime: 10 * time.Minute,
	}

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	b := &Booking{AppointmentTime: start}
	b.SetSchedule(svc, 90*time.Minute)

	if b.Duration != 90*time.Minute {
		t.Errorf("Duration = %v, want %v", b.Duration, 90*time.Minute)
	}
	if want := start.Add(90 * time.Minute); !b.EndTime.Equal(want) {
		t.Errorf("EndTime = %v, want %v", b.EndTime, want)
	}
	if want := start.Add(100 * time.Minute); !b.BufferEnd.Equal(want) {
		t.Errorf("BufferEnd = %v, want %v", b.BufferEnd, want)
	}
}
