package api

import (
	"net/http"

	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/avialane/flightbooking/internal/service/notification"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service notification.NotificationUseCase
}

func NewNotificationHandler(service notification.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type emailNotificationRequest struct {
	EmailAddress string     `json:"emailAddress"`
	FullName     string     `json:"fullName"`
	Subject      string     `json:"subject"`
	BookingID    string     `json:"bookingId"`
	ID           string     `json:"id"`
	MessageDate  kafka.Date `json:"messageDate"`
}

func (r emailNotificationRequest) validate() []FieldError {
	var errs []FieldError
	errs = required(errs, "emailAddress", r.EmailAddress)
	errs = required(errs, "subject", r.Subject)
	return errs
}

func (r emailNotificationRequest) toInput() notification.EmailInput {
	return notification.EmailInput{
		EmailAddress: r.EmailAddress,
		FullName:     r.FullName,
		Subject:      r.Subject,
		BookingID:    r.BookingID,
		ID:           r.ID,
		MessageDate:  r.MessageDate,
	}
}

func (h *NotificationHandler) Register(router *gin.RouterGroup) {
	router.GET("/publish", h.publishMessage)
	router.POST("/publish/object", h.publishEmail)
}

func (h *NotificationHandler) publishMessage(c *gin.Context) {
	text := c.Query("message")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Field: "message", Reason: "must not be blank"}}})
		return
	}

	msg, err := h.service.PublishMessage(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *NotificationHandler) publishEmail(c *gin.Context) {
	var req emailNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	msg, err := h.service.PublishEmail(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
