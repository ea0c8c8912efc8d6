package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookingRequest struct {
	State              string     `json:"state"`
	PaymentDate        *time.Time `json:"paymentDate"`
	PaymentAmountCents int64      `json:"paymentAmountCents"`
	Insurance          bool       `json:"insurance"`
	LuggageKg          int16      `json:"luggageKg"`
}

func (r bookingRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "state", r.State)
	return errs
}

func (r bookingRequest) toInput() booking.BookingInput {
	return booking.BookingInput{
		State:              r.State,
		PaymentDate:        r.PaymentDate,
		PaymentAmountCents: r.PaymentAmountCents,
		Insurance:          r.Insurance,
		LuggageKg:          r.LuggageKg,
	}
}

type bookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	State              string     `json:"state"`
	PaymentDate        *time.Time `json:"paymentDate,omitempty"`
	PaymentAmountCents int64      `json:"paymentAmountCents"`
	Insurance          bool       `json:"insurance"`
	LuggageKg          int16      `json:"luggageKg"`
	CustomerID         *uuid.UUID `json:"customerId,omitempty"`
	FlightID           *uuid.UUID `json:"flightId,omitempty"`
	CreationTime       time.Time  `json:"creationTime"`
	UpdateTime         time.Time  `json:"updateTime"`
	DeletionTime       *time.Time `json:"deletionTime,omitempty"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:                 b.ID,
		State:              b.State,
		PaymentDate:        b.PaymentDate,
		PaymentAmountCents: b.PaymentAmountCents,
		Insurance:          b.Insurance,
		LuggageKg:          b.LuggageKg,
		CustomerID:         b.CustomerID,
		FlightID:           b.FlightID,
		CreationTime:       b.CreationTime,
		UpdateTime:         b.UpdateTime,
		DeletionTime:       b.DeletionTime,
	}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *BookingHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]bookingResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toBookingResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[bookingResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) create(c *gin.Context) {
	var req bookingRequest
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
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req bookingRequest
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
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(removed))
}
