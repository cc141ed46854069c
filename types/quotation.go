package types

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Source and default values applied when the client omits optional context.
const (
	DefaultEventType = "general"
	DefaultPageURL   = "Unknown"
	QuotationSource  = "quotation_form"
)

// emailRegex matches a simple local@domain.tld shape. Deliverability is the
// automation workflow's problem, not ours.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// QuotationRequest is the untrusted payload received from the contact form.
type QuotationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Venue     string `json:"venue"`
	Message   string `json:"message"`
	EventType string `json:"event_type,omitempty"`
	PageURL   string `json:"page_url,omitempty"`
	Source    string `json:"source,omitempty"`
}

// Validate applies the authoritative validation rules in fixed order and
// returns the message of the first violated rule. The order (name, email,
// venue, message) is part of the endpoint contract. Minimum lengths count
// characters, not bytes, so multibyte input is measured the way the form
// shows it.
func (r *QuotationRequest) Validate() (string, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < 2 {
		return "Name must be at least 2 characters", false
	}
	if r.Email == "" || !emailRegex.MatchString(r.Email) {
		return "Invalid email address", false
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Venue)) < 3 {
		return "Venue information is required", false
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Message)) < 10 {
		return "Message must be at least 10 characters", false
	}
	return "", true
}

// QuotationPayload is the normalized payload forwarded to the reservations
// webhook. SubmittedAt is always stamped server-side.
type QuotationPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Venue       string `json:"venue"`
	Message     string `json:"message"`
	EventType   string `json:"event_type"`
	PageURL     string `json:"page_url"`
	Source      string `json:"source"`
	SubmittedAt string `json:"submitted_at"`
}

// Normalize trims the required fields, fills in defaults for optional ones,
// and stamps the submission time in UTC ISO 8601.
func (r *QuotationRequest) Normalize(now time.Time) QuotationPayload {
	p := QuotationPayload{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Venue:       strings.TrimSpace(r.Venue),
		Message:     strings.TrimSpace(r.Message),
		EventType:   r.EventType,
		PageURL:     r.PageURL,
		Source:      r.Source,
		SubmittedAt: now.UTC().Format(time.RFC3339),
	}
	if p.EventType == "" {
		p.EventType = DefaultEventType
	}
	if p.PageURL == "" {
		p.PageURL = DefaultPageURL
	}
	if p.Source == "" {
		p.Source = QuotationSource
	}
	return p
}

// QuotationResponse is the unified response shape returned to the browser.
// Data carries the upstream webhook's JSON body through opaquely.
type QuotationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
