package models

import (
	"testing"
	"time"
)

func TestRecurrenceDelta(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		name      string
		frequency RecurrenceFrequency
		interval  uint
		want      time.Duration
		wantErr   bool
	}{
		{"daily", FrequencyDaily, 1, day, false},
		{"every third day", FrequencyDaily, 3, 3 * day, false},
		{"weekly", FrequencyWeekly, 1, 7 * day, false},
		{"biweekly", FrequencyWeekly, 2, 14 * day, false},
		{"monthly approximation", FrequencyMonthly, 1, 30 * day, false},
		{"bimonthly approximation", FrequencyMonthly, 2, 60 * day, false},
		{"unknown frequency", RecurrenceFrequency("yearly"), 1, 0, true},
		{"empty frequency", RecurrenceFrequency(""), 1, 0, true},
		{"zero interval rejected", FrequencyDaily, 0, 0, true},
		{"zero interval rejected for weekly", FrequencyWeekly, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecurrenceDelta(tt.frequency, tt.interval)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecurrenceDelta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RecurrenceDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleWeekly(t *testing.T) {
	// Monday seed, four weeks of weekly occurrences after it
	seed := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rule := &Recurrence{
		Frequency: FrequencyWeekly,
		Interval:  1,
		EndDate:   time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
	}

	occurrences, err := rule.Schedule(seed)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if len(occurrences) != 4 {
		t.Fatalf("Schedule() returned %d occurrences, want 4", len(occurrences))
	}

	for i, occ := range occurrences {
		want := seed.Add(time.Duration(i+1) * 7 * 24 * time.Hour)
		if !occ.Equal(want) {
			t.Errorf("occurrence %d = %v, want %v", i, occ, want)
		}
		if occ.Weekday() != time.Monday {
			t.Errorf("occurrence %d falls on %v, want Monday", i, occ.Weekday())
		}
		if occ.Hour() != 10 || occ.Minute() != 0 {
			t.Errorf("occurrence %d time-of-day = %02d:%02d, want 10:00", i, occ.Hour(), occ.Minute())
		}
	}
}

func TestScheduleDailyStopsAtEndDate(t *testing.T) {
	seed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rule := &Recurrence{
		Frequency: FrequencyDaily,
		Interval:  1,
		EndDate:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	occurrences, err := rule.Schedule(seed)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	// March 3, 4 and 5: the end date itself is included
	if len(occurrences) != 3 {
		t.Fatalf("Schedule() returned %d occurrences, want 3", len(occurrences))
	}
	last := occurrences[len(occurrences)-1]
	if last.Day() != 5 {
		t.Errorf("last occurrence day = %d, want 5", last.Day())
	}
}

func TestScheduleEndBeforeFirstOccurrence(t *testing.T) {
	seed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rule := &Recurrence{
		Frequency: FrequencyWeekly,
		Interval:  1,
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	occurrences, err := rule.Schedule(seed)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if len(occurrences) != 0 {
		t.Errorf("Schedule() returned %d occurrences, want 0", len(occurrences))
	}
}

func TestScheduleInvalidFrequency(t *testing.T) {
	rule := &Recurrence{
		Frequency: RecurrenceFrequency("hourly"),
		Interval:  1,
		EndDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := rule.Schedule(time.Now()); err == nil {
		t.Error("Schedule() with invalid frequency should error")
	}
}
