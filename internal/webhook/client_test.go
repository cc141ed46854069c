package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ColorMeBooth/colorme-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() types.QuotationPayload {
	req := types.QuotationRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Venue:   "Shangri-La, June 2026",
		Message: "Looking for a coloring booth for our wedding reception.",
	}
	return req.Normalize(time.Now())
}

func TestSendAttachesBothAuthHeaders(t *testing.T) {
	var gotAuth, gotAPIKey, gotContentType string
	var gotBody types.QuotationPayload

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret-key")
	result, err := client.Send(context.Background(), testPayload())

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "secret-key", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Jane Doe", gotBody.Name)
	assert.Equal(t, "quotation_form", gotBody.Source)
	assert.NotEmpty(t, gotBody.SubmittedAt)
}

func TestSendParsesUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"workflow":"reservations"}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret-key")
	result, err := client.Send(context.Background(), testPayload())

	require.NoError(t, err)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "reservations", data["workflow"])
}

func TestSendReportsNonSuccessStatusWithoutError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("service unavailable"))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret-key")
	result, err := client.Send(context.Background(), testPayload())

	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.Equal(t, "service unavailable", string(result.Body))
}

func TestSendTransportError(t *testing.T) {
	// Server closed before the call: connection refused surfaces as an error.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := NewClient(upstream.URL, "secret-key")
	result, err := client.Send(context.Background(), testPayload())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSendMalformedSuccessBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, "secret-key")
	_, err := client.Send(context.Background(), testPayload())

	assert.Error(t, err)
}

func TestSendHonorsContext(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := NewClient(upstream.URL, "secret-key")
	_, err := client.Send(ctx, testPayload())

	assert.Error(t, err)
}
