package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/tools/responding"
)

func PanicRecovery(c *gin.Context) {
	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: responding.Logger(c),
	}, func(c *gin.Context, recovered any) {
		var err error
		switch value := recovered.(type) {
		case error:
			err = value
		case string:
			err = fmt.Errorf("%s", value)
		default:
			err = fmt.Errorf("%v", value)
		}

		responding.HandleError(c, http.StatusInternalServerError, "Unknown error, panic recovered", err)
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.logger.
		Error().
		Str("label", "panic").
		Msg(string(p))

	return len(p), nil
}
