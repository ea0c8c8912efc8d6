package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/flight"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AirlineHandler struct {
	service flight.AirlineUseCase
}

func NewAirlineHandler(service flight.AirlineUseCase) *AirlineHandler {
	return &AirlineHandler{service: service}
}

type airlineRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (r airlineRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "name", r.Name)
	return errs
}

func (r airlineRequest) toInput() flight.AirlineInput {
	return flight.AirlineInput{Name: r.Name, Country: r.Country}
}

type airlineResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Country      string     `json:"country"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   time.Time  `json:"updateTime"`
	DeletionTime *time.Time `json:"deletionTime,omitempty"`
}

func toAirlineResponse(a *domain.Airline) airlineResponse {
	return airlineResponse{
		ID:           a.ID,
		Name:         a.Name,
		Country:      a.Country,
		CreationTime: a.CreationTime,
		UpdateTime:   a.UpdateTime,
		DeletionTime: a.DeletionTime,
	}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *AirlineHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]airlineResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAirlineResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[airlineResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *AirlineHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponse(found))
}

func (h *AirlineHandler) create(c *gin.Context) {
	var req airlineRequest
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
	c.JSON(http.StatusCreated, toAirlineResponse(created))
}

func (h *AirlineHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airlineRequest
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
	c.JSON(http.StatusOK, toAirlineResponse(updated))
}

func (h *AirlineHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponse(removed))
}
