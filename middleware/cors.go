package middleware

import (
	"net/http"
	"time"

	"github.com/ColorMeBooth/colorme-backend/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// quotationPath has its own OPTIONS route whose response headers and status
// are fixed; the cors middleware must not intercept its preflights.
const quotationPath = "/api/quotation"

// CORSMiddleware creates a middleware for handling CORS. The quotation form
// may be served from a different origin in some deployments, so the default
// configuration is permissive: any origin, POST/OPTIONS, and the headers the
// endpoint actually uses.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
		},
		MaxAge: 12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || containsOrigin(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	corsHandler := cors.New(corsConfig)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.FullPath() == quotationPath {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

func containsOrigin(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}
