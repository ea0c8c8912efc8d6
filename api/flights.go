package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/flight"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlightHandler struct {
	service flight.FlightUseCase
}

func NewFlightHandler(service flight.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

type flightRequest struct {
	DepartureDate time.Time `json:"departureDate"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	PriceCents    int64     `json:"priceCents"`
}

func (r flightRequest) validate() []FieldError {
	var errs []FieldError
	errs = requiredTime(errs, "departureDate", r.DepartureDate)
	errs = requiredTime(errs, "arrivalDate", r.ArrivalDate)
	return errs
}

func (r flightRequest) toInput() flight.FlightInput {
	return flight.FlightInput{
		DepartureDate: r.DepartureDate,
		ArrivalDate:   r.ArrivalDate,
		PriceCents:    r.PriceCents,
	}
}

type flightResponse struct {
	ID                   uuid.UUID  `json:"id"`
	DepartureDate        time.Time  `json:"departureDate"`
	ArrivalDate          time.Time  `json:"arrivalDate"`
	PriceCents           int64      `json:"priceCents"`
	DepartureAirportID   *uuid.UUID `json:"departureAirportId,omitempty"`
	DestinationAirportID *uuid.UUID `json:"destinationAirportId,omitempty"`
	AircraftID           *uuid.UUID `json:"aircraftId,omitempty"`
	AirlineID            *uuid.UUID `json:"airlineId,omitempty"`
	CreationTime         time.Time  `json:"creationTime"`
	UpdateTime           time.Time  `json:"updateTime"`
	DeletionTime         *time.Time `json:"deletionTime,omitempty"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:                   f.ID,
		DepartureDate:        f.DepartureDate,
		ArrivalDate:          f.ArrivalDate,
		PriceCents:           f.PriceCents,
		DepartureAirportID:   f.DepartureAirportID,
		DestinationAirportID: f.DestinationAirportID,
		AircraftID:           f.AircraftID,
		AirlineID:            f.AirlineID,
		CreationTime:         f.CreationTime,
		UpdateTime:           f.UpdateTime,
		DeletionTime:         f.DeletionTime,
	}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *FlightHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]flightResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toFlightResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[flightResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(found))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.service.Add(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(created))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(updated))
}

func (h *FlightHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(removed))
}
