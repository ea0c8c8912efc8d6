package api

import (
	"net/http"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/service/customer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	service customer.CustomerUseCase
}

func NewCustomerHandler(service customer.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Age      int16  `json:"age"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

func (r customerRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "name", r.Name)
	errs = required(errs, "surname", r.Surname)
	errs = required(errs, "email", r.Email)
	errs = required(errs, "password", r.Password)
	return errs
}

func (r customerRequest) toInput() customer.CustomerInput {
	return customer.CustomerInput{
		Name:     r.Name,
		Surname:  r.Surname,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Age:      r.Age,
		City:     r.City,
		Country:  r.Country,
	}
}

type customerResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Age          int16      `json:"age"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   time.Time  `json:"updateTime"`
	DeletionTime *time.Time `json:"deletionTime,omitempty"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Surname:      c.Surname,
		Email:        c.Email,
		Phone:        c.Phone,
		Age:          c.Age,
		City:         c.City,
		Country:      c.Country,
		CreationTime: c.CreationTime,
		UpdateTime:   c.UpdateTime,
		DeletionTime: c.DeletionTime,
	}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *CustomerHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]customerResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toCustomerResponse(&result.Items[i]))
	}
	c.JSON(http.StatusOK, pageResponse[customerResponse]{Items: items, TotalItems: result.TotalItems, TotalPages: result.TotalPages, Page: result.Number, Size: result.Size})
}

func (h *CustomerHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(found))
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req customerRequest
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
	c.JSON(http.StatusCreated, toCustomerResponse(created))
}

func (h *CustomerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req customerRequest
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
	c.JSON(http.StatusOK, toCustomerResponse(updated))
}

func (h *CustomerHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(removed))
}
