package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/travel-tour/portal/internal/tools/responding"
)

func TraceLog(c *gin.Context) {
	// Finish all others and then write trace log
	c.Next()

	logger := responding.Logger(c)
	startTime := c.GetTime(requestStartTimeKey)

	event := logger.Info()
	if c.Writer.Status() >= http.StatusInternalServerError {
		event = logger.Warn()
	}

	event.
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Str("route", c.FullPath()).
		Int("code", c.Writer.Status()).
		Float64("duration", time.Since(startTime).Seconds()).
		Msg("")
}
