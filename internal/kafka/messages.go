package kafka

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date that travels as "yyyy-mm-dd" on the wire.
type Date struct {
	time.Time
}

func Today() Date {
	return Date{time.Now()}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return err
	}
	if unquoted == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, unquoted)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// EmailMessage is the notification payload for booking-related mail. Field
// names are the wire contract and must not change.
type EmailMessage struct {
	EmailAddress string `json:"emailAddress"`
	FullName     string `json:"fullName"`
	Subject      string `json:"subject"`
	BookingID    string `json:"bookingId"`
	ID           string `json:"id"`
	MessageDate  Date   `json:"messageDate"`
}

// PlainMessage is the alternate single-string payload used by the generic
// notification channel that is independent of bookings.
type PlainMessage struct {
	Message     string `json:"message"`
	ID          string `json:"id"`
	MessageDate Date   `json:"messageDate"`
}
