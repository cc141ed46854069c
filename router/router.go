package router

import (
	"github.com/ColorMeBooth/colorme-backend/config"
	"github.com/ColorMeBooth/colorme-backend/handlers"
	"github.com/ColorMeBooth/colorme-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config           *config.Config
	QuotationHandler *handlers.QuotationHandler
	EventsHandler    *handlers.EventsHandler
	HealthHandler    *handlers.HealthHandler
	Logger           *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/quotation", deps.QuotationHandler.SubmitQuotation)
		api.OPTIONS("/quotation", deps.QuotationHandler.HandlePreflight)

		api.GET("/events", deps.EventsHandler.ListEventPages)
		api.GET("/events/:id", deps.EventsHandler.GetEventPage)
	}

	return r
}
