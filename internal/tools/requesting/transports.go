package requesting

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/schema"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	resp, err := transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type LoggingTransportMiddleware struct {
	Transport http.RoundTripper
	log       *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &LoggingTransportMiddleware{
			log:       log,
			Transport: rt,
		}
	}
}

func (t *LoggingTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.String())

	if requestName, ok := req.Context().Value(schema.RequestingTypeKey).(schema.RequestName); ok {
		message.Str("request", string(requestName))
	}

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

type HeaderTransportMiddleware struct {
	Transport http.RoundTripper
	headers   map[string]string
}

// NewHeaderTransportMiddleware sets the given headers on every outgoing request
// unless the request already carries them.
func NewHeaderTransportMiddleware(headers map[string]string) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &HeaderTransportMiddleware{
			Transport: rt,
			headers:   headers,
		}
	}
}

func (h *HeaderTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	for key, value := range h.headers {
		if clone.Header.Get(key) == "" {
			clone.Header.Set(key, value)
		}
	}

	if correlationId, ok := req.Context().Value(schema.CorrelationIdKey).(string); ok && correlationId != "" {
		clone.Header.Set("x-correlation-id", correlationId)
	}

	return h.Transport.RoundTrip(clone)
}
