package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ColorMeBooth/colorme-backend/content"
	"github.com/ColorMeBooth/colorme-backend/middleware"
	"github.com/ColorMeBooth/colorme-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
events:
  - id: weddings
    name: Weddings
    tagline: Elegant Entertainment for Your Special Day
    pricing:
      - badge: Essentials
        title: Reception Essentials
        description: Perfect for intimate wedding receptions.
        features:
          - 3 hours of reception coverage
  - id: kiddie-party
    name: Kiddie Parties
    tagline: Manila's First Roamer Coloring Booth
`

func buildEventsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog, err := content.ParseCatalog([]byte(testCatalogYAML))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewEventsHandler(catalog)
	r.GET("/api/events", h.ListEventPages)
	r.GET("/api/events/:id", h.GetEventPage)
	return r
}

func TestListEventPages(t *testing.T) {
	r := buildEventsRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Data    []types.EventPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "weddings", resp.Data[0].ID)
}

func TestGetEventPage(t *testing.T) {
	r := buildEventsRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/weddings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool            `json:"success"`
		Data    types.EventPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Weddings", resp.Data.Name)
	require.Len(t, resp.Data.Pricing, 1)
	assert.Equal(t, "Reception Essentials", resp.Data.Pricing[0].Title)
}

func TestGetEventPageNotFound(t *testing.T) {
	r := buildEventsRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/gala", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp types.QuotationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Event page not found", resp.Error)
}
