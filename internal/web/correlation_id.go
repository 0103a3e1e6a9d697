package web

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/travel-tour/portal/internal/schema"
)

const (
	CorrelationIdHeader = "x-correlation-id"
	correlationIdKey    = "correlationId"
)

// CorrelationId takes the correlation id from the request header or creates one. It is
// echoed in the response and carried by the request context for outgoing calls.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader(CorrelationIdHeader)
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set(correlationIdKey, correlationId)
	c.Header(CorrelationIdHeader, correlationId)
	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), schema.CorrelationIdKey, correlationId),
	)
}
