// Package utils holds small helpers shared by the client packages: the
// HTTP client used by the AI adapter and the member id generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("familyvault")
//	resp, err := client.R().SetBody(req).Post("/api/ai/chat")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that speaks JSON and identifies itself
// with userAgent on every request.
func NewHTTPClient(userAgent string) *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: c}
}
