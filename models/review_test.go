package models

import (
	"strings"
	"testing"
)

func TestCanReviewBooking(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		owner   uint
		caller  uint
		wantErr string
	}{
		{"completed own booking", StatusCompleted, 1, 1, ""},
		{"pending booking rejected", StatusPending, 1, 1, "uncompleted"},
		{"confirmed booking rejected", StatusConfirmed, 1, 1, "uncompleted"},
		{"cancelled booking rejected", StatusCancelled, 1, 1, "uncompleted"},
		{"someone else's booking rejected", StatusCompleted, 1, 2, "another user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{UserID: tt.owner, Status: tt.status}
			err := CanReviewBooking(booking, tt.caller)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CanReviewBooking() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("CanReviewBooking() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
