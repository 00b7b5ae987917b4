package models

// ErrorResponse is the error body the backend sends with non-2xx statuses.
// Some endpoints use "message", others "error".
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever message field is set.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
