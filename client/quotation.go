// Package client provides the consumer-side helper for the quotation proxy
// endpoint: advisory form validation and a submit call that never fails with
// a Go error. Every failure mode resolves to a QuotationResponse with
// Success set to false, so callers need no separate error-handling path.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ColorMeBooth/colorme-backend/types"
)

const quotationPath = "/api/quotation"

// genericSubmitError is shown when a failure carries no usable message.
const genericSubmitError = "Failed to submit quotation request"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormData is the quotation form input.
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Venue   string `json:"venue"`
	Message string `json:"message"`
}

// SubmitOptions carries optional page context attached to a submission.
type SubmitOptions struct {
	EventType string
	PageURL   string
}

// ValidateForm applies the advisory field-level checks and returns a mapping
// from field name to error message, empty when the form is valid. This is a
// pure function; the authoritative validation lives in the proxy endpoint
// and applies stricter minimum-length rules.
func ValidateForm(form FormData) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(form.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(form.Venue) == "" {
		errs["venue"] = "Event date and venue information is required"
	}
	if strings.TrimSpace(form.Message) == "" {
		errs["message"] = "Please tell us about your event"
	}

	return errs
}

// Client submits quotation requests to the proxy endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the proxy endpoint at the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit posts the form to the proxy endpoint and always returns a result
// value. On a 2xx response the parsed body is returned as-is; on a non-2xx
// response the parsed error field (or a generic HTTP-status message) is
// returned as a failure; transport and parse faults resolve to a failure
// with a generic message.
func (c *Client) Submit(ctx context.Context, form FormData, opts *SubmitOptions) types.QuotationResponse {
	payload := types.QuotationRequest{
		Name:      form.Name,
		Email:     form.Email,
		Venue:     form.Venue,
		Message:   form.Message,
		EventType: types.DefaultEventType,
		Source:    types.QuotationSource,
	}
	if opts != nil {
		if opts.EventType != "" {
			payload.EventType = opts.EventType
		}
		payload.PageURL = opts.PageURL
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return failure(genericSubmitError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+quotationPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return failure(genericSubmitError)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(err.Error())
	}
	defer resp.Body.Close()

	var result types.QuotationResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && result.Error != "" {
			return failure(result.Error)
		}
		return failure(fmt.Sprintf("HTTP error! status: %d", resp.StatusCode))
	}

	if decodeErr != nil {
		return failure(genericSubmitError)
	}

	return result
}

func failure(msg string) types.QuotationResponse {
	if msg == "" {
		msg = genericSubmitError
	}
	return types.QuotationResponse{Success: false, Error: msg}
}
