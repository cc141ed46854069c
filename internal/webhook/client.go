// Package webhook implements the outbound client for the n8n reservations
// webhook. It is the only component that transmits the server-held API key.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ColorMeBooth/colorme-backend/metrics"
	"github.com/ColorMeBooth/colorme-backend/types"
)

// Client sends normalized quotation payloads to the automation webhook.
type Client struct {
	webhookURL string
	apiKey     string
	httpClient *http.Client
}

// ClientOption is a function that configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout on the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new webhook client.
func NewClient(webhookURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		webhookURL: webhookURL,
		apiKey:     apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Result holds the upstream webhook's reply. Data is the parsed JSON body on
// success; Body is the raw response body, kept for server-side diagnostics
// when the upstream rejects the request.
type Result struct {
	StatusCode int
	Body       []byte
	Data       interface{}
}

// OK reports whether the upstream accepted the request.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts the payload to the webhook with the API key attached via both a
// bearer authorization header and an X-API-Key header; different n8n setups
// check one or the other. A nil error with a non-2xx Result means the
// upstream answered and its status should be propagated; a non-nil error
// means the call itself failed (transport fault, unparseable success body).
func (c *Client) Send(ctx context.Context, payload types.QuotationPayload) (*Result, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-API-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.WebhookRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	if !result.OK() {
		return result, nil
	}

	// The upstream body may be structurally anything; it is passed through
	// to the caller opaquely.
	if err := json.Unmarshal(body, &result.Data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}
