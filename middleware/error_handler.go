package middleware

import (
	"github.com/ColorMeBooth/colorme-backend/errors"
	"github.com/ColorMeBooth/colorme-backend/logger"
	"github.com/ColorMeBooth/colorme-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the unified
// {success:false, error:...} response shape. No error ever escapes the
// boundary unhandled: anything that is not an AppError (including panics,
// which are recovered here) becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := logger.GetLogger()
				log.Errorw("Recovered from panic",
					"panic", r,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				c.AbortWithStatusJSON(500, types.QuotationResponse{
					Success: false,
					Error:   "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			status := appError.GetHTTPStatus()
			log.Warnw("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"status", status,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
			)
			c.JSON(status, types.QuotationResponse{
				Success: false,
				Error:   appError.Message,
			})
			return
		}

		log.Errorw("Unexpected server error", "error", err, "path", c.Request.URL.Path)
		c.JSON(500, types.QuotationResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}
}
