package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailMessageWireFormat(t *testing.T) {
	msg := EmailMessage{
		EmailAddress: "a@b.com",
		FullName:     "Jane Doe",
		Subject:      "Booking Confirmed",
		BookingID:    "123",
		ID:           "abc",
		MessageDate:  Date{time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"emailAddress": "a@b.com",
		"fullName": "Jane Doe",
		"subject": "Booking Confirmed",
		"bookingId": "123",
		"id": "abc",
		"messageDate": "2023-05-14"
	}`, string(data))
}

func TestDateUnmarshal(t *testing.T) {
	var msg PlainMessage
	err := json.Unmarshal([]byte(`{"message":"hi","id":"x","messageDate":"2023-05-14"}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, "hi", msg.Message)
	assert.Equal(t, 2023, msg.MessageDate.Year())

	err = json.Unmarshal([]byte(`{"message":"hi","id":"x","messageDate":null}`), &msg)
	assert.NoError(t, err)
}
