package handlers

import (
	"net/http"

	"github.com/ColorMeBooth/colorme-backend/content"
	apperrors "github.com/ColorMeBooth/colorme-backend/errors"
	"github.com/gin-gonic/gin"
)

// EventsHandler serves the read-only event page catalog.
type EventsHandler struct {
	catalog *content.Catalog
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(catalog *content.Catalog) *EventsHandler {
	return &EventsHandler{catalog: catalog}
}

// ListEventPages handles GET /api/events.
func (h *EventsHandler) ListEventPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.catalog.List(),
	})
}

// GetEventPage handles GET /api/events/:id.
func (h *EventsHandler) GetEventPage(c *gin.Context) {
	id := c.Param("id")

	page, ok := h.catalog.Get(id)
	if !ok {
		_ = c.Error(apperrors.NotFound("Event page", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    page,
	})
}
