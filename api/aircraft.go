package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/flight"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AircraftHandler struct {
	service flight.AircraftUseCase
}

func NewAircraftHandler(service flight.AircraftUseCase) *AircraftHandler {
	return &AircraftHandler{service: service}
}

type aircraftRequest struct {
	ModelName       string    `json:"modelName"`
	Code            string    `json:"code"`
	Seats           int16     `json:"seats"`
	Country         string    `json:"country"`
	ManufactureDate time.Time `json:"manufactureDate"`
}

func (r aircraftRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "modelName", r.ModelName)
	errs = required(errs, "code", r.Code)
	return errs
}

func (r aircraftRequest) toInput() flight.AircraftInput {
	return flight.AircraftInput{
		ModelName:       r.ModelName,
		Code:            r.Code,
		Seats:           r.Seats,
		Country:         r.Country,
		ManufactureDate: r.ManufactureDate,
	}
}

type aircraftResponse struct {
	ID              uuid.UUID  `json:"id"`
	ModelName       string     `json:"modelName"`
	Code            string     `json:"code"`
	Seats           int16      `json:"seats"`
	Country         string     `json:"country"`
	ManufactureDate time.Time  `json:"manufactureDate"`
	CreationTime    time.Time  `json:"creationTime"`
	UpdateTime      time.Time  `json:"updateTime"`
	DeletionTime    *time.Time `json:"deletionTime,omitempty"`
}

func toAircraftResponse(a *domain.Aircraft) aircraftResponse {
	return aircraftResponse{
		ID:              a.ID,
		ModelName:       a.ModelName,
		Code:            a.Code,
		Seats:           a.Seats,
		Country:         a.Country,
		ManufactureDate: a.ManufactureDate,
		CreationTime:    a.CreationTime,
		UpdateTime:      a.UpdateTime,
		DeletionTime:    a.DeletionTime,
	}
}

func (h *AircraftHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *AircraftHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]aircraftResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAircraftResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[aircraftResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *AircraftHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAircraftResponse(found))
}

func (h *AircraftHandler) create(c *gin.Context) {
	var req aircraftRequest
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
	c.JSON(http.StatusCreated, toAircraftResponse(created))
}

func (h *AircraftHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req aircraftRequest
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
	c.JSON(http.StatusOK, toAircraftResponse(updated))
}

func (h *AircraftHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAircraftResponse(removed))
}
