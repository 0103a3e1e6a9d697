package payment

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"io"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/payment/json"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/client"
	"github.com/travel-tour/portal/internal/tools/converting"
	"github.com/travel-tour/portal/internal/tools/requesting"
)

type Request struct {
	Passenger  int
	TotalPrice float64
}

type Response struct {
	// Empty when the API did not return a link
	PaymentLinkURL string
}

type Client struct {
	options       *client.Options
	httpTransport http.RoundTripper
}

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

// InitiatePayment asks the booking API for a payment page of the booking.
func (c *Client) InitiatePayment(
	ctx context.Context,
	bookingID string,
	request Request,
	credentials schema.Credentials,
	logger *zerolog.Logger,
) (Response, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "bookingId", runtime.ParamLocationPath, bookingID)
	if err != nil {
		return Response{}, err
	}

	httpClient := &http.Client{
		Timeout: c.options.Timeout(),
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewHeaderTransportMiddleware(map[string]string{
					"User-Agent": c.options.UserAgent(),
				}),
				requesting.NewLoggingTransportMiddleware(logger),
			},
		},
	}

	body, err := jsonEncoding.Marshal(json.PaymentRQ{
		Passenger:  request.Passenger,
		TotalPrice: request.TotalPrice,
	})
	if err != nil {
		return Response{}, err
	}

	ctx = context.WithValue(ctx, schema.RequestingTypeKey, schema.PaymentInitiation)
	url := c.options.BaseURL() + "/api/payment/" + pathParam

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}

	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", credentials.AuthorizationHeader())

	rs, e := requesting.RequestErrors(httpClient.Do(httpRequest))
	if e != nil {
		return Response{}, e
	}
	defer rs.Body.Close()

	// bind the response body to the json
	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return Response{}, schema.NewConnectionError(err.Error())
	}

	var paymentResponse json.PaymentRS
	err = jsonEncoding.Unmarshal(bodyBytes, &paymentResponse)
	if err != nil {
		return Response{}, schema.NewPayloadError(err.Error())
	}

	return Response{
		PaymentLinkURL: converting.Unwrap(paymentResponse.PaymentLinkURL),
	}, nil
}
