package requesting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/travel-tour/portal/internal/schema"
)

// upstream error bodies are small, anything above is not a message
const maxErrorBodySize = 64 * 1024

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

func RequestErrors(response *http.Response, err error) (*http.Response, *schema.ResponseError) {
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			return nil, schema.NewTimeoutError(err.Error())
		}

		return nil, schema.NewConnectionError(err.Error())
	}

	if !isValidResponse(response.StatusCode) {
		defer response.Body.Close()

		return nil, schema.NewUpstreamError(upstreamMessage(response), response.StatusCode)
	}

	return response, nil
}

func upstreamMessage(response *http.Response) string {
	fallback := fmt.Sprintf("booking api returned status code %d", response.StatusCode)

	bodyBytes, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
	if err != nil {
		return fallback
	}

	var body errorBody
	if json.Unmarshal(bodyBytes, &body) != nil {
		return fallback
	}

	if body.Message != "" {
		return body.Message
	}

	if body.Error != "" {
		return body.Error
	}

	return fallback
}
