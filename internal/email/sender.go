package email

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"github.com/avialane/flightbooking/config"
)

// DeliveryError reports a failed handoff to the mail transport. The consumer
// catches it at its boundary and logs; it never propagates further.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("could not deliver mail to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Sender delivers a rendered message to one recipient.
type Sender interface {
	Send(ctx context.Context, recipient, subject string, content Content) error
}

// SMTPSender dispatches multipart text+html mail with the configured fixed
// From and Reply-To addresses.
type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(_ context.Context, recipient, subject string, content Content) error {
	msg := buildMessage(s.cfg.From, s.cfg.ReplyTo, recipient, subject, content)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	if err := smtp.SendMail(s.cfg.Addr(), auth, s.cfg.From, []string{recipient}, msg); err != nil {
		return &DeliveryError{Recipient: recipient, Err: err}
	}
	return nil
}

func buildMessage(from, replyTo, to, subject string, content Content) []byte {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, _ := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	_, _ = part.Write([]byte(content.Text))
	part, _ = mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
	_, _ = part.Write([]byte(content.HTML))
	_ = mw.Close()

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())
	msg.Write(body.Bytes())
	return msg.Bytes()
}

var _ Sender = (*SMTPSender)(nil)
