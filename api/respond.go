package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FieldError is one boundary validation failure. Requests with blank
// required fields are rejected here and never reach the services.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func required(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		errs = append(errs, FieldError{Field: field, Reason: "must not be blank"})
	}
	return errs
}

func requiredTime(errs []FieldError, field string, value time.Time) []FieldError {
	if value.IsZero() {
		errs = append(errs, FieldError{Field: field, Reason: "must not be blank"})
	}
	return errs
}

type pageResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	return page, size
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
