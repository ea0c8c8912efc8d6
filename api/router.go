package api

import "github.com/gin-gonic/gin"

type Handlers struct {
	Customers     *CustomerHandler
	Airports      *AirportHandler
	Aircraft      *AircraftHandler
	Airlines      *AirlineHandler
	Flights       *FlightHandler
	Bookings      *BookingHandler
	Notifications *NotificationHandler
}

// NewRouter mounts every handler under its own resource group.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	h.Customers.Register(router.Group("/customers"))
	h.Airports.Register(router.Group("/airports"))
	h.Aircraft.Register(router.Group("/aircrafts"))
	h.Airlines.Register(router.Group("/airlines"))
	h.Flights.Register(router.Group("/flights"))
	h.Bookings.Register(router.Group("/bookings"))
	h.Notifications.Register(router.Group("/notifications"))

	return router
}
