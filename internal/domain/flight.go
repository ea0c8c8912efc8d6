package domain

import (
	"time"

	"github.com/google/uuid"
)

type Flight struct {
	Base
	DepartureDate time.Time
	ArrivalDate   time.Time
	PriceCents    int64

	// Reference columns stay nil until wired through the repository link
	// operation; they are never touched by the CRUD update path. A reference
	// may point at a soft-deleted row.
	DepartureAirportID   *uuid.UUID
	DestinationAirportID *uuid.UUID
	AircraftID           *uuid.UUID
	AirlineID            *uuid.UUID
}

// FlightLinks names the reference columns mutated by FlightRepository.SetLinks.
type FlightLinks struct {
	DepartureAirportID   *uuid.UUID
	DestinationAirportID *uuid.UUID
	AircraftID           *uuid.UUID
	AirlineID            *uuid.UUID
}
