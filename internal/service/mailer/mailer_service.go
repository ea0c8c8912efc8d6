// Package mailer turns consumed notification messages into outbound mail.
//
// Failures on this side never travel back to the broker: a message that
// cannot be decoded or delivered is logged and counts as handled. The topic
// gives at-least-once delivery, so a broker redelivery may produce a
// duplicate email, and a failed SMTP handoff loses the mail.
package mailer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/avialane/flightbooking/internal/email"
	"github.com/avialane/flightbooking/internal/kafka"
)

type Renderer interface {
	RenderBooking(msg kafka.EmailMessage) (email.Content, error)
	RenderPlain(msg kafka.PlainMessage) (email.Content, error)
}

type Service struct {
	renderer Renderer
	sender   email.Sender

	// Destination for the free-text variant, which carries no recipient.
	fallbackRecipient string
	fallbackSubject   string
}

func NewService(renderer Renderer, sender email.Sender, fallbackRecipient, fallbackSubject string) *Service {
	return &Service{
		renderer:          renderer,
		sender:            sender,
		fallbackRecipient: fallbackRecipient,
		fallbackSubject:   fallbackSubject,
	}
}

// HandleEmailMessage processes one message from the email topic.
func (s *Service) HandleEmailMessage(ctx context.Context, value []byte) error {
	var msg kafka.EmailMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		log.Printf("drop email message: decode failed: %v", err)
		return nil
	}
	if msg.EmailAddress == "" {
		log.Printf("drop email message %s: missing emailAddress", msg.ID)
		return nil
	}

	content, err := s.renderer.RenderBooking(msg)
	if err != nil {
		log.Printf("drop email message %s: render failed: %v", msg.ID, err)
		return nil
	}

	if err := s.sender.Send(ctx, msg.EmailAddress, msg.Subject, content); err != nil {
		log.Printf("could not send email for message %s: %v", msg.ID, err)
		return nil
	}
	log.Printf("email sent with recipient: %s, subject: %s", msg.EmailAddress, msg.Subject)
	return nil
}

// HandlePlainMessage processes one message from the free-text topic and
// delivers it to the configured fallback recipient.
func (s *Service) HandlePlainMessage(ctx context.Context, value []byte) error {
	var msg kafka.PlainMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		log.Printf("drop plain message: decode failed: %v", err)
		return nil
	}
	if msg.Message == "" {
		log.Printf("drop plain message %s: empty message", msg.ID)
		return nil
	}

	content, err := s.renderer.RenderPlain(msg)
	if err != nil {
		log.Printf("drop plain message %s: render failed: %v", msg.ID, err)
		return nil
	}

	if err := s.sender.Send(ctx, s.fallbackRecipient, s.fallbackSubject, content); err != nil {
		log.Printf("could not send email for message %s: %v", msg.ID, err)
		return nil
	}
	log.Printf("email sent with recipient: %s, subject: %s", s.fallbackRecipient, s.fallbackSubject)
	return nil
}
