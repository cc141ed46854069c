package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ColorMeBooth/colorme-backend/config"
	"github.com/ColorMeBooth/colorme-backend/content"
	apperrors "github.com/ColorMeBooth/colorme-backend/errors"
	"github.com/ColorMeBooth/colorme-backend/internal/webhook"
	"github.com/ColorMeBooth/colorme-backend/logger"
	"github.com/ColorMeBooth/colorme-backend/metrics"
	"github.com/ColorMeBooth/colorme-backend/types"
	"github.com/gin-gonic/gin"
)

// WebhookRelay is the outbound webhook client interface used by the handler.
type WebhookRelay interface {
	Send(ctx context.Context, payload types.QuotationPayload) (*webhook.Result, error)
}

// QuotationHandler handles the quotation submission proxy endpoint. It is
// the trust boundary: it re-validates untrusted input authoritatively and is
// the only component permitted to trigger a credentialed upstream call.
type QuotationHandler struct {
	webhookCfg config.WebhookConfig
	relay      WebhookRelay
	catalog    *content.Catalog
}

// NewQuotationHandler creates a new QuotationHandler. catalog may be nil;
// it is only consulted for logging unknown event types.
func NewQuotationHandler(webhookCfg config.WebhookConfig, relay WebhookRelay, catalog *content.Catalog) *QuotationHandler {
	return &QuotationHandler{
		webhookCfg: webhookCfg,
		relay:      relay,
		catalog:    catalog,
	}
}

// SubmitQuotation handles POST /api/quotation. Exactly one terminal state
// per request: rejected (400), misconfigured (500), upstream_error
// (propagated status), relayed (200), or internal_error (500).
func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	log := logger.GetLogger()

	var req types.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed JSON is an unrecoverable request fault, surfaced as the
		// generic internal error rather than a validation message.
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeInternalError).Inc()
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}

	if msg, ok := req.Validate(); !ok {
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		_ = c.Error(apperrors.ValidationFailed(msg, ""))
		return
	}

	// The secrets are validated at startup, but re-checked here so a handler
	// constructed without them still fails closed.
	if h.webhookCfg.URL == "" {
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeMisconfigured).Inc()
		_ = c.Error(apperrors.ConfigurationFailed("Service configuration error", "N8N_RESERVATIONS_WEBHOOK_URL"))
		return
	}
	if h.webhookCfg.APIKey == "" {
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeMisconfigured).Inc()
		_ = c.Error(apperrors.ConfigurationFailed("Service authentication error", "N8N_RESERVATIONS_API_KEY"))
		return
	}

	payload := req.Normalize(time.Now())

	if h.catalog != nil && payload.EventType != types.DefaultEventType && !h.catalog.Has(payload.EventType) {
		log.Debugw("Quotation for unknown event type", "event_type", payload.EventType)
	}

	log.Infow("Forwarding quotation to reservations webhook",
		"name", payload.Name,
		"email", logger.MaskEmail(payload.Email),
		"event_type", payload.EventType,
		"source", payload.Source,
	)

	result, err := h.relay.Send(c.Request.Context(), payload)
	if err != nil {
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeInternalError).Inc()
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}

	if !result.OK() {
		// Diagnostic body stays server-side; the caller gets the status and
		// a generic wrapping message.
		log.Errorw("Reservations webhook rejected quotation",
			"status", result.StatusCode,
			"body", string(result.Body),
		)
		metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		_ = c.Error(apperrors.UpstreamFailed(result.StatusCode))
		return
	}

	metrics.QuotationSubmissions.WithLabelValues(metrics.OutcomeRelayed).Inc()
	c.JSON(http.StatusOK, types.QuotationResponse{
		Success: true,
		Message: "Quotation request submitted successfully",
		Data:    result.Data,
	})
}

// HandlePreflight handles OPTIONS /api/quotation for deployments where the
// form is served from a different origin.
func (h *QuotationHandler) HandlePreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
	c.JSON(http.StatusOK, gin.H{})
}
