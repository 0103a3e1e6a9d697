package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/tools/responding"
)

func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestLogger := logger.
			With().
			Str("correlationId", c.GetString(correlationIdKey)).
			Logger()

		c.Set(responding.LoggerKey, &requestLogger)
	}
}
