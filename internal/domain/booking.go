package domain

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Base
	State              string
	PaymentDate        *time.Time
	PaymentAmountCents int64
	Insurance          bool
	LuggageKg          int16

	CustomerID *uuid.UUID
	FlightID   *uuid.UUID
}

// BookingLinks names the reference columns mutated by BookingRepository.SetLinks.
type BookingLinks struct {
	CustomerID *uuid.UUID
	FlightID   *uuid.UUID
}
