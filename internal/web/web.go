package web

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/api"
	"github.com/travel-tour/portal/internal/config"
	"github.com/travel-tour/portal/internal/portal"
)

// openApiDocument returns the document at location, or the embedded one.
func openApiDocument(location string, log *zerolog.Logger) []byte {
	if location == "" {
		return api.Document
	}

	content, err := os.ReadFile(location)
	if err != nil {
		log.Warn().Err(err).Str("location", location).Msg("Unable to read the openapi document, using the embedded one")
		return api.Document
	}

	return content
}

func SetupRouter(cfg *config.Config, log *zerolog.Logger, deps portal.Dependencies) *gin.Engine {
	var (
		startTime      = time.Now()
		openApiContent = openApiDocument(cfg.OpenApiLocation, log)
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(portal.Templates())

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	validator, err := OpenapiValidator(openApiContent)
	if err != nil {
		log.Error().Err(err).Msg("Invalid openapi document, requests are not validated")
	} else {
		router.Use(validator)
	}

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openApiContent)
	})

	pprof.Register(router)

	portal.RegisterRoutes(router, deps)

	return router
}
