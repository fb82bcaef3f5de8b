package utils

import (
	"testing"
	"time"

	"github.com/servibook/booking-platform/models"
)

func TestParseAppointmentTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339 with zone", "2026-03-02T10:00:00Z", false},
		{"rfc3339 with offset", "2026-03-02T10:00:00+05:30", false},
		{"naive with T separator", "2026-03-02T10:00:00", false},
		{"naive with space separator", "2026-03-02 10:00:00", false},
		{"date only", "2026-03-02", true},
		{"garbage", "not-a-time", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppointmentTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAppointmentTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestProtectedWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	winStart, winEnd := ProtectedWindow(start, time.Hour, 15*time.Minute)

	wantStart := time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 3, 2, 11, 15, 0, 0, time.UTC)
	if !winStart.Equal(wantStart) {
		t.Errorf("window start = %v, want %v", winStart, wantStart)
	}
	if !winEnd.Equal(wantEnd) {
		t.Errorf("window end = %v, want %v", winEnd, wantEnd)
	}
}

func TestProtectedWindowZeroBuffer(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	winStart, winEnd := ProtectedWindow(start, 30*time.Minute, 0)
	if !winStart.Equal(start) {
		t.Errorf("window start = %v, want %v", winStart, start)
	}
	if !winEnd.Equal(start.Add(30 * time.Minute)) {
		t.Errorf("window end = %v, want %v", winEnd, start.Add(30*time.Minute))
	}
}

func TestIntervalsOverlap(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint before", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"disjoint after", at(13, 0), at(14, 0), at(11, 0), at(12, 0), false},
		{"touching end to start does not conflict", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching start to end does not conflict", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"partial overlap", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"contained", at(10, 15), at(10, 45), at(10, 0), at(11, 0), true},
		{"containing", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("IntervalsOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Rescheduling within a booking's own protected window must not conflict
// with that booking's row, while other bookings still do.
func TestFirstConflictExcludesOwnRow(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}
	mk := func(id uint, start, end time.Time) models.Booking {
		b := models.Booking{BufferStart: start, BufferEnd: end}
		b.ID = id
		return b
	}

	// Existing 10:00 booking, 1h duration, 15m buffer: protects 9:45-11:15.
	existing := []models.Booking{mk(7, at(9, 45), at(11, 15))}

	// Move the same booking to 10:30: its new window overlaps its old one.
	candidateStart, candidateEnd := ProtectedWindow(at(10, 30), time.Hour, 15*time.Minute)

	if got := firstConflict(existing, candidateStart, candidateEnd, 0); got == nil || got.ID != 7 {
		t.Errorf("without exclusion the old row should conflict, got %v", got)
	}
	if got := firstConflict(existing, candidateStart, candidateEnd, 7); got != nil {
		t.Errorf("excluding the booking's own row should clear the conflict, got booking %d", got.ID)
	}

	withOther := append(existing, mk(9, at(10, 0), at(11, 0)))
	if got := firstConflict(withOther, candidateStart, candidateEnd, 7); got == nil || got.ID != 9 {
		t.Errorf("exclusion must only skip the excluded row, got %v", got)
	}

	disjoint := []models.Booking{mk(9, at(7, 0), at(8, 0))}
	if got := firstConflict(disjoint, candidateStart, candidateEnd, 0); got != nil {
		t.Errorf("disjoint stored window should not conflict, got booking %d", got.ID)
	}
}

// Buffered windows that merely touch must not conflict: a 10:00-11:00
// booking with a 15 minute buffer protects 9:45-11:15, so the earliest
// non-conflicting follow-up for the same service starts at 11:30.
func TestBufferedWindowsTouchingIsFree(t *testing.T) {
	duration := time.Hour
	buffer := 15 * time.Minute

	first := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	firstStart, firstEnd := ProtectedWindow(first, duration, buffer)

	next := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)
	nextStart, nextEnd := ProtectedWindow(next, duration, buffer)

	if IntervalsOverlap(firstStart, firstEnd, nextStart, nextEnd) {
		t.Errorf("touching protected windows %v-%v and %v-%v should not conflict",
			firstStart, firstEnd, nextStart, nextEnd)
	}

	tooEarly := time.Date(2026, 3, 2, 11, 29, 0, 0, time.UTC)
	earlyStart, earlyEnd := ProtectedWindow(tooEarly, duration, buffer)
	if !IntervalsOverlap(firstStart, firstEnd, earlyStart, earlyEnd) {
		t.Errorf("protected windows %v-%v and %v-%v should conflict",
			firstStart, firstEnd, earlyStart, earlyEnd)
	}
}
