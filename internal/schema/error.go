package schema

import "fmt"

type ErrorCode string

const (
	TimeoutError    ErrorCode = "TIMEOUT_ERROR"
	ConnectionError ErrorCode = "CONNECTION_ERROR"
	UpstreamError   ErrorCode = "UPSTREAM_ERROR"
	PayloadError    ErrorCode = "PAYLOAD_ERROR"
)

// ResponseError describes a failed call to the booking API.
type ResponseError struct {
	Code       ErrorCode
	Message    string
	StatusCode int
}

func (e *ResponseError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ResponseError) IsTimeout() bool {
	return e.Code == TimeoutError
}

func NewUpstreamError(msg string, statusCode int) *ResponseError {
	return &ResponseError{
		Code:       UpstreamError,
		Message:    msg,
		StatusCode: statusCode,
	}
}

func NewTimeoutError(msg string) *ResponseError {
	return &ResponseError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) *ResponseError {
	return &ResponseError{
		Code:    ConnectionError,
		Message: msg,
	}
}

func NewPayloadError(msg string) *ResponseError {
	return &ResponseError{
		Code:    PayloadError,
		Message: msg,
	}
}
