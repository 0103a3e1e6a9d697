package bookings

import (
	"context"
	jsonEncoding "encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/bookings/json"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/client"
	"github.com/travel-tour/portal/internal/tools/requesting"
)

const adminBookingsPath = "/api/admin/bookings"

type Client struct {
	options       *client.Options
	httpTransport http.RoundTripper
}

// NewClient creates the admin bookings client.
func NewClient(optionFuncs ...client.OptionFunc) (*Client, error) {
	options, err := client.NewOptions(optionFuncs...)
	if err != nil {
		return nil, err
	}

	return &Client{
		options:       options,
		httpTransport: http.DefaultTransport,
	}, nil
}

// FetchBookings requests the whole booking collection in one call, on behalf of the
// caller whose credentials are forwarded.
func (c *Client) FetchBookings(
	ctx context.Context,
	credentials schema.Credentials,
	logger *zerolog.Logger,
) ([]jsonEncoding.RawMessage, error) {
	httpClient := &http.Client{
		Timeout: c.options.Timeout(),
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewHeaderTransportMiddleware(map[string]string{
					"User-Agent": c.options.UserAgent(),
					"Accept":     "application/json",
				}),
				requesting.NewLoggingTransportMiddleware(logger),
			},
		},
	}

	ctx = context.WithValue(ctx, schema.RequestingTypeKey, schema.AdminBookings)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL()+adminBookingsPath, http.NoBody)
	if err != nil {
		return nil, err
	}

	if !credentials.IsZero() {
		httpRequest.Header.Set("Authorization", credentials.AuthorizationHeader())
	}

	response, e := requesting.RequestErrors(httpClient.Do(httpRequest))
	if e != nil {
		return nil, e
	}
	defer response.Body.Close()

	// bind the response body to the json
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, schema.NewConnectionError(err.Error())
	}

	var bookingsResponse json.BookingsRS
	err = jsonEncoding.Unmarshal(bodyBytes, &bookingsResponse)
	if err != nil {
		return nil, schema.NewPayloadError(err.Error())
	}

	if bookingsResponse.Bookings == nil {
		return nil, schema.NewPayloadError("response has no bookings list")
	}

	return *bookingsResponse.Bookings, nil
}
