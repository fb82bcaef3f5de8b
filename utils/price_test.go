package utils

import (
	"testing"
	"time"

	"github.com/servibook/booking-platform/models"
	"github.com/shopspring/decimal"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		unit     string
		svcDur   time.Duration
		duration time.Duration
		want     string
	}{
		{"base plus one hour", "50", "25", time.Hour, time.Hour, "75.00"},
		{"base plus two hours", "50", "25", time.Hour, 2 * time.Hour, "100.00"},
		{"half hour prorated", "50", "25", time.Hour, 30 * time.Minute, "62.50"},
		{"ninety minutes", "10.50", "20", time.Hour, 90 * time.Minute, "40.50"},
		{"zero duration falls back to service duration", "50", "25", 2 * time.Hour, 0, "100.00"},
		{"no duration anywhere returns base only", "50", "25", 0, 0, "50.00"},
		{"zero unit price", "80", "0", time.Hour, 3 * time.Hour, "80.00"},
		{"rounds to two places", "0", "10", time.Hour, 10 * time.Minute, "1.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &models.Service{
				BasePrice: decimal.RequireFromString(tt.base),
				UnitPrice: decimal.RequireFromString(tt.unit),
				Duration:  tt.svcDur,
			}
			got := CalculatePrice(svc, tt.duration)
			if got.StringFixed(2) != tt.want {
				t.Errorf("CalculatePrice() = %s, want %s", got.StringFixed(2), tt.want)
			}
		})
	}
}
