package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL(cfg.OrchestrationURL)
//	resp, err := client.R().SetContext(ctx).Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Callers set the base URL and per-request timeouts.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
