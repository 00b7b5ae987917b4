package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000/api", 15*time.Second)
//	resp, err := client.R().Get("/categories")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with baseURL and timeout applied and JSON
// as the default content type. Each call returns an independent client with
// its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
