package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travel-tour/portal/internal/tools/responding"
)

// TapLogger tags the request logger with the operation being served.
func TapLogger(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		context := responding.Logger(c).
			With().
			Str("operation", operation).
			Str("operationId", uuid.New().String())

		if bookingID := c.Param("bookingId"); bookingID != "" {
			context = context.Str("bookingId", bookingID)
		}

		requestLogger := context.Logger()
		c.Set(responding.LoggerKey, &requestLogger)
	}
}
