package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed matches every non-2xx response.
	ErrRequestFailed = errors.New("request failed")

	// ErrBadRequest matches HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized matches HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden matches HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound matches HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict matches HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrUnprocessable matches HTTP 422.
	ErrUnprocessable = errors.New("unprocessable entity")
	// ErrInternalServerError matches HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway matches HTTP 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrServerUnavailable wraps transport failures (connection refused,
	// timeouts) where no response was received.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidCredentialResponse is returned by Login when a successful
	// response carries neither "token" nor "access_token".
	ErrInvalidCredentialResponse = errors.New("invalid credential response")
)

// RequestError is a non-2xx response.
type RequestError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the server-provided message, or "" when the body carried
	// none.
	Message string

	status error
}

// NewRequestError returns the error for a response with the given status
// and server message.
func NewRequestError(statusCode int, message string) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Message:    message,
		status:     statusSentinels[statusCode],
	}
}

func (e *RequestError) Error() string {
	text := http.StatusText(e.StatusCode)
	if e.Message == "" {
		return fmt.Sprintf("request failed: %d %s", e.StatusCode, text)
	}
	return fmt.Sprintf("request failed: %d %s: %s", e.StatusCode, text, e.Message)
}

// Unwrap exposes [ErrRequestFailed] and the status sentinel, if any.
func (e *RequestError) Unwrap() []error {
	if e.status == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.status}
}

// ServerMessage returns the message to show for err: the backend's own
// message when err is a [*RequestError] carrying one, otherwise fallback.
func ServerMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
