package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/servibook/booking-platform/utils"
)

func TestBookingErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"slot conflict", utils.ErrOverlappingBooking, fiber.StatusConflict},
		{"wrapped slot conflict from recurrence expansion",
			fmt.Errorf("recurring appointment conflicts with an existing booking at occurrence 3: %w", utils.ErrOverlappingBooking),
			fiber.StatusConflict},
		{"database failure", errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bookingErrorStatus(tt.err); got != tt.want {
				t.Errorf("bookingErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
