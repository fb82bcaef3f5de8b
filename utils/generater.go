package utils

import "github.com/google/uuid"

// GenerateReference returns an opaque identifier for bookings and invoices.
func GenerateReference() string {
	return uuid.NewString()
}
