package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/avialane/flightbooking/internal/service/notification"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNotificationUseCase is a mock implementation of notification.NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) PublishEmail(ctx context.Context, input notification.EmailInput) (*kafka.EmailMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kafka.EmailMessage), args.Error(1)
}

func (m *MockNotificationUseCase) PublishMessage(ctx context.Context, text string) (*kafka.PlainMessage, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kafka.PlainMessage), args.Error(1)
}

func TestNotificationHandler_publishMessage(t *testing.T) {
	mockService := &MockNotificationUseCase{}
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/notifications/publish?message=hello", nil)

	mockService.On("PublishMessage", c.Request.Context(), "hello").Return(&kafka.PlainMessage{
		Message: "hello", ID: "msg-1", MessageDate: kafka.Today(),
	}, nil)

	handler.publishMessage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")

	mockService.AssertExpectations(t)
}

func TestNotificationHandler_publishMessageBlank(t *testing.T) {
	mockService := &MockNotificationUseCase{}
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/notifications/publish", nil)

	handler.publishMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "PublishMessage")
}

func TestNotificationHandler_publishEmail(t *testing.T) {
	mockService := &MockNotificationUseCase{}
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"emailAddress":"jane@example.com","fullName":"Jane Doe","subject":"Booking Confirmed","bookingId":"123"}`
	c.Request = httptest.NewRequest("POST", "/notifications/publish/object", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := notification.EmailInput{EmailAddress: "jane@example.com", FullName: "Jane Doe", Subject: "Booking Confirmed", BookingID: "123"}
	mockService.On("PublishEmail", c.Request.Context(), input).Return(&kafka.EmailMessage{
		EmailAddress: "jane@example.com", FullName: "Jane Doe", Subject: "Booking Confirmed", BookingID: "123", ID: "msg-2", MessageDate: kafka.Today(),
	}, nil)

	handler.publishEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestNotificationHandler_publishEmailMissingRecipient(t *testing.T) {
	mockService := &MockNotificationUseCase{}
	handler := NewNotificationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/notifications/publish/object", strings.NewReader(`{"subject":"Booking Confirmed"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.publishEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "emailAddress")
	mockService.AssertNotCalled(t, "PublishEmail")
}
