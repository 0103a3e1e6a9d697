package responding_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/travel-tour/portal/internal/tools/responding"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should abort with json body and log the error", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set(responding.LoggerKey, &log)
		})
		router.GET("/fail", func(c *gin.Context) {
			responding.HandleError(c, http.StatusBadGateway, "Upstream failed", errors.New("dial tcp"))
		}, func(c *gin.Context) {
			assert.Fail(t, "should not reach the next handler")
		})

		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/fail", nil)
		router.ServeHTTP(response, request)

		var body responding.ErrorBody
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))

		assert.Equal(t, http.StatusBadGateway, response.Code)
		assert.Equal(t, responding.ErrorBody{Code: http.StatusBadGateway, Message: "Upstream failed"}, body)
		assert.Contains(t, out.String(), "dial tcp")
		assert.Contains(t, out.String(), `"level":"error"`)
	})

	t.Run("should work without a registered logger", func(t *testing.T) {
		router := gin.New()
		router.GET("/fail", func(c *gin.Context) {
			responding.HandleError(c, http.StatusBadRequest, "Bad request", nil)
		})

		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/fail", nil)
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}
