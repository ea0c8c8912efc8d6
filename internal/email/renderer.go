package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/avialane/flightbooking/internal/kafka"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Content is a rendered text and HTML body pair.
type Content struct {
	Text string
	HTML string
}

// Renderer fills the fixed template pairs from notification payloads. It is
// a pure function of its input; missing fields render as empty strings.
type Renderer struct {
	bookingText *texttemplate.Template
	bookingHTML *htmltemplate.Template
	plainText   *texttemplate.Template
	plainHTML   *htmltemplate.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		bookingText: texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/mail-content.txt.tmpl")),
		bookingHTML: htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/mail-content.html.tmpl")),
		plainText:   texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/plain-message.txt.tmpl")),
		plainHTML:   htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/plain-message.html.tmpl")),
	}
}

// RenderBooking binds fullName and bookingId into the booking mail pair.
func (r *Renderer) RenderBooking(msg kafka.EmailMessage) (Content, error) {
	var text, html bytes.Buffer
	if err := r.bookingText.Execute(&text, msg); err != nil {
		return Content{}, fmt.Errorf("render booking text body: %w", err)
	}
	if err := r.bookingHTML.Execute(&html, msg); err != nil {
		return Content{}, fmt.Errorf("render booking html body: %w", err)
	}
	return Content{Text: text.String(), HTML: html.String()}, nil
}

// RenderPlain binds the free-text message into the generic mail pair.
func (r *Renderer) RenderPlain(msg kafka.PlainMessage) (Content, error) {
	var text, html bytes.Buffer
	if err := r.plainText.Execute(&text, msg); err != nil {
		return Content{}, fmt.Errorf("render plain text body: %w", err)
	}
	if err := r.plainHTML.Execute(&html, msg); err != nil {
		return Content{}, fmt.Errorf("render plain html body: %w", err)
	}
	return Content{Text: text.String(), HTML: html.String()}, nil
}
