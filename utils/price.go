package utils

import (
	"time"

	"github.com/servibook/booking-platform/models"
	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// CalculatePrice computes base_price + unit_price * duration_hours for a
// booking of the given service. A non-positive duration falls back to the
// service's nominal duration; if that is also unset the variable part is
// zero. All arithmetic is decimal, rounded to 2 fraction digits at the end.
func CalculatePrice(service *models.Service, duration time.Duration) decimal.Decimal {
	if duration <= 0 {
		duration = service.Duration
	}
	if duration <= 0 {
		return service.BasePrice.Round(2)
	}

	hours := decimal.NewFromInt(int64(duration / time.Second)).Div(secondsPerHour)
	return service.BasePrice.Add(service.UnitPrice.Mul(hours)).Round(2)
}
