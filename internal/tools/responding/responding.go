package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const LoggerKey = "logger"

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger returns the request logger registered by the web middleware, or a
// disabled logger when the route runs without it.
func Logger(c *gin.Context) *zerolog.Logger {
	if value, ok := c.Get(LoggerKey); ok {
		if log, ok := value.(*zerolog.Logger); ok {
			return log
		}
	}

	nop := zerolog.Nop()
	return &nop
}

// HandleError logs the error with the request logger and aborts with a JSON body.
func HandleError(c *gin.Context, code int, message string, err error) {
	event := Logger(c).Warn()
	if code >= 500 {
		event = Logger(c).Error()
	}

	event.
		Err(err).
		Int("code", code).
		Str("url", c.Request.URL.Path).
		Msg(message)

	c.AbortWithStatusJSON(code, ErrorBody{
		Code:    code,
		Message: message,
	})
}
