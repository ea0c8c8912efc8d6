package email

import (
	"strings"
	"testing"

	"github.com/avialane/flightbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBooking(t *testing.T) {
	r := NewRenderer()

	content, err := r.RenderBooking(kafka.EmailMessage{
		EmailAddress: "a@b.com",
		FullName:     "Jane Doe",
		Subject:      "Booking Confirmed",
		BookingID:    "123",
	})
	require.NoError(t, err)

	assert.Contains(t, content.Text, "Jane Doe")
	assert.Contains(t, content.Text, "123")
	assert.Contains(t, content.HTML, "Jane Doe")
	assert.Contains(t, content.HTML, "123")
}

func TestRenderBookingEmptyFields(t *testing.T) {
	r := NewRenderer()

	content, err := r.RenderBooking(kafka.EmailMessage{})
	require.NoError(t, err)

	// Missing optional fields render as the template default, empty string.
	assert.True(t, strings.HasPrefix(content.Text, "Dear ,"))
	assert.NotEmpty(t, content.HTML)
}

func TestRenderPlain(t *testing.T) {
	r := NewRenderer()

	content, err := r.RenderPlain(kafka.PlainMessage{Message: "maintenance window tonight"})
	require.NoError(t, err)

	assert.Contains(t, content.Text, "maintenance window tonight")
	assert.Contains(t, content.HTML, "maintenance window tonight")
}

func TestBuildMessageCarriesBothBodies(t *testing.T) {
	msg := string(buildMessage("noreply@x.io", "support@x.io", "a@b.com", "Hello", Content{Text: "plain body", HTML: "<p>html body</p>"}))

	assert.Contains(t, msg, "From: noreply@x.io")
	assert.Contains(t, msg, "Reply-To: support@x.io")
	assert.Contains(t, msg, "To: a@b.com")
	assert.Contains(t, msg, "Subject: Hello")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "plain body")
	assert.Contains(t, msg, "<p>html body</p>")
}
