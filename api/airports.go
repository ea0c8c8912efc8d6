package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/flight"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AirportHandler struct {
	service flight.AirportUseCase
}

func NewAirportHandler(service flight.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

type airportRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
	City string `json:"city"`
}

func (r airportRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "name", r.Name)
	errs = required(errs, "code", r.Code)
	return errs
}

func (r airportRequest) toInput() flight.AirportInput {
	return flight.AirportInput{Name: r.Name, Code: r.Code, City: r.City}
}

type airportResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	City         string     `json:"city"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   time.Time  `json:"updateTime"`
	DeletionTime *time.Time `json:"deletionTime,omitempty"`
}

func toAirportResponse(a *domain.Airport) airportResponse {
	return airportResponse{
		ID:           a.ID,
		Name:         a.Name,
		Code:         a.Code,
		City:         a.City,
		CreationTime: a.CreationTime,
		UpdateTime:   a.UpdateTime,
		DeletionTime: a.DeletionTime,
	}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *AirportHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]airportResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAirportResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[airportResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(found))
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
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
	c.JSON(http.StatusCreated, toAirportResponse(created))
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airportRequest
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
	c.JSON(http.StatusOK, toAirportResponse(updated))
}

func (h *AirportHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(removed))
}
