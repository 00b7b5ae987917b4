package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// maxPlainMessage bounds a plain-text body used as an error message.
const maxPlainMessage = 200

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for 2xx responses and a [*RequestError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewRequestError(resp.StatusCode(), extractMessage(resp.Body()))
}

// extractMessage reads "message" or "error" from a JSON body, or uses a
// short plain-text body verbatim.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "{") {
		var errResp models.ErrorResponse
		if err := json.Unmarshal([]byte(trimmed), &errResp); err == nil {
			return strings.TrimSpace(errResp.Text())
		}
		return ""
	}

	// HTML error pages and other markup are not shown to the user
	if strings.HasPrefix(trimmed, "<") || strings.HasPrefix(trimmed, "[") {
		return ""
	}

	if utf8.RuneCountInString(trimmed) > maxPlainMessage {
		return string([]rune(trimmed)[:maxPlainMessage])
	}
	return trimmed
}

// transportError wraps a failure that produced no response. Cancellation is
// passed through unchanged so callers can tell it apart from an outage.
func transportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrServerUnavailable, err)
}
