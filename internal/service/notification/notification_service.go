package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/google/uuid"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type NotificationUseCase interface {
	PublishEmail(ctx context.Context, input EmailInput) (*kafka.EmailMessage, error)
	PublishMessage(ctx context.Context, text string) (*kafka.PlainMessage, error)
}

// EmailInput carries the notification fields. ID and MessageDate are
// optional; absent values are filled with a generated id and today's date.
type EmailInput struct {
	EmailAddress string
	FullName     string
	Subject      string
	BookingID    string
	ID           string
	MessageDate  kafka.Date
}

type Service struct {
	producer     Producer
	emailTopic   string
	messageTopic string
}

func NewService(producer Producer, emailTopic, messageTopic string) *Service {
	return &Service{producer: producer, emailTopic: emailTopic, messageTopic: messageTopic}
}

// PublishEmail sends a booking notification. Fire-and-forget with respect to
// consumption; a broker-level failure is fatal to the caller.
func (s *Service) PublishEmail(ctx context.Context, input EmailInput) (*kafka.EmailMessage, error) {
	msg := kafka.EmailMessage{
		EmailAddress: input.EmailAddress,
		FullName:     input.FullName,
		Subject:      input.Subject,
		BookingID:    input.BookingID,
		ID:           input.ID,
		MessageDate:  input.MessageDate,
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.MessageDate.IsZero() {
		msg.MessageDate = kafka.Today()
	}

	if err := s.producer.Publish(ctx, s.emailTopic, msg.ID, msg); err != nil {
		return nil, fmt.Errorf("publish email notification: %w", err)
	}
	log.Printf("published email notification %s for booking %s", msg.ID, msg.BookingID)
	return &msg, nil
}

// PublishMessage sends the free-text variant on its own topic.
func (s *Service) PublishMessage(ctx context.Context, text string) (*kafka.PlainMessage, error) {
	msg := kafka.PlainMessage{
		Message:     text,
		ID:          uuid.NewString(),
		MessageDate: kafka.Today(),
	}

	if err := s.producer.Publish(ctx, s.messageTopic, msg.ID, msg); err != nil {
		return nil, fmt.Errorf("publish message notification: %w", err)
	}
	log.Printf("published message notification %s", msg.ID)
	return &msg, nil
}

var _ NotificationUseCase = (*Service)(nil)
