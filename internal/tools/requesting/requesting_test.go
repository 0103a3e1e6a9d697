package requesting_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/requesting"
)

func TestRequestErrors(t *testing.T) {
	var handlerFunc http.HandlerFunc
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerFunc(w, r)
	}))
	defer testServer.Close()

	t.Run("should classify responses", func(t *testing.T) {
		tests := []struct {
			name            string
			statusCode      int
			body            string
			expectedError   *schema.ResponseError
			expectedSuccess bool
		}{
			{
				name:            "ok",
				statusCode:      http.StatusOK,
				body:            `{}`,
				expectedSuccess: true,
			},
			{
				name:          "message body",
				statusCode:    http.StatusNotFound,
				body:          `{"message":"Booking not found"}`,
				expectedError: schema.NewUpstreamError("Booking not found", http.StatusNotFound),
			},
			{
				name:          "error body",
				statusCode:    http.StatusUnauthorized,
				body:          `{"error":"Invalid token"}`,
				expectedError: schema.NewUpstreamError("Invalid token", http.StatusUnauthorized),
			},
			{
				name:          "plain body",
				statusCode:    http.StatusInternalServerError,
				body:          `Internal Server Error`,
				expectedError: schema.NewUpstreamError("booking api returned status code 500", http.StatusInternalServerError),
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				handlerFunc = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(test.statusCode)
					w.Write([]byte(test.body))
				}

				response, err := requesting.RequestErrors(http.Get(testServer.URL))

				if test.expectedSuccess {
					assert.Nil(t, err)
					assert.NotNil(t, response)
					response.Body.Close()
					return
				}

				assert.Nil(t, response)
				assert.Equal(t, test.expectedError, err)
			})
		}
	})

	t.Run("should classify timeouts", func(t *testing.T) {
		handlerFunc = func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}

		client := &http.Client{Timeout: 5 * time.Millisecond}

		response, err := requesting.RequestErrors(client.Get(testServer.URL))

		assert.Nil(t, response)
		assert.Equal(t, schema.TimeoutError, err.Code)
	})

	t.Run("should classify connection errors", func(t *testing.T) {
		closedServer := httptest.NewServer(http.NotFoundHandler())
		url := closedServer.URL
		closedServer.Close()

		response, err := requesting.RequestErrors(http.Get(url))

		assert.Nil(t, response)
		assert.Equal(t, schema.ConnectionError, err.Code)
	})
}

func TestTransports(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should log and add headers", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "travel-portal", r.Header.Get("User-Agent"))
			assert.Equal(t, "corr-1", r.Header.Get("x-correlation-id"))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer testServer.Close()

		client := &http.Client{
			Transport: &requesting.InterceptorTransport{
				Transport: http.DefaultTransport,
				Middlewares: []requesting.TransportMiddleware{
					requesting.NewHeaderTransportMiddleware(map[string]string{"User-Agent": "travel-portal"}),
					requesting.NewLoggingTransportMiddleware(&log),
				},
			},
		}

		ctx := context.WithValue(context.Background(), schema.RequestingTypeKey, schema.AdminBookings)
		ctx = context.WithValue(ctx, schema.CorrelationIdKey, "corr-1")

		request, _ := http.NewRequestWithContext(ctx, http.MethodGet, testServer.URL, http.NoBody)
		response, err := client.Do(request)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, response.StatusCode)
		assert.Contains(t, out.String(), `"label":"outgoing-request"`)
		assert.Contains(t, out.String(), `"request":"adminBookings"`)
		assert.Contains(t, out.String(), `"code":202`)
	})
}
