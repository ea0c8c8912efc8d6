package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProducer is a mock implementation of Producer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

func TestService_PublishEmail(t *testing.T) {
	producer := &MockProducer{}
	svc := NewService(producer, "notification.email", "notification.message")
	ctx := context.Background()

	producer.On("Publish", ctx, "notification.email", mock.AnythingOfType("string"), mock.AnythingOfType("kafka.EmailMessage")).Return(nil)

	msg, err := svc.PublishEmail(ctx, EmailInput{
		EmailAddress: "jane@example.com",
		FullName:     "Jane Doe",
		Subject:      "Booking Confirmed",
		BookingID:    "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", msg.EmailAddress)

	// Missing id and date are filled in.
	_, parseErr := uuid.Parse(msg.ID)
	assert.NoError(t, parseErr)
	assert.False(t, msg.MessageDate.IsZero())

	producer.AssertExpectations(t)
}

func TestService_PublishEmailKeepsCallerValues(t *testing.T) {
	producer := &MockProducer{}
	svc := NewService(producer, "notification.email", "notification.message")
	ctx := context.Background()

	date := kafka.Date{Time: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	producer.On("Publish", ctx, "notification.email", "fixed-id", mock.Anything).Return(nil)

	msg, err := svc.PublishEmail(ctx, EmailInput{
		EmailAddress: "jane@example.com",
		Subject:      "Booking Confirmed",
		ID:           "fixed-id",
		MessageDate:  date,
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", msg.ID)
	assert.Equal(t, date, msg.MessageDate)

	producer.AssertExpectations(t)
}

func TestService_PublishEmailBrokerFailure(t *testing.T) {
	producer := &MockProducer{}
	svc := NewService(producer, "notification.email", "notification.message")
	ctx := context.Background()

	producer.On("Publish", ctx, "notification.email", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := svc.PublishEmail(ctx, EmailInput{EmailAddress: "jane@example.com", Subject: "Booking Confirmed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish email notification")
}

func TestService_PublishMessage(t *testing.T) {
	producer := &MockProducer{}
	svc := NewService(producer, "notification.email", "notification.message")
	ctx := context.Background()

	producer.On("Publish", ctx, "notification.message", mock.AnythingOfType("string"), mock.AnythingOfType("kafka.PlainMessage")).Return(nil)

	msg, err := svc.PublishMessage(ctx, "maintenance window tonight")
	require.NoError(t, err)
	assert.Equal(t, "maintenance window tonight", msg.Message)
	assert.NotEmpty(t, msg.ID)

	producer.AssertExpectations(t)
}
