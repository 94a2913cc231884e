// Package kratos wraps the Ory Kratos public API used for identity
// operations: native login/registration flows, token validation and
// logout.
package kratos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"scholarly/config"
)

// Client represents a Kratos client wrapper
type Client struct {
	publicAPI *kratosclient.APIClient
	publicURL string
}

// NewClient creates a new Kratos client
func NewClient(cfg *config.Config) (*Client, error) {
	if !isValidURL(cfg.Auth.KratosPublicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", cfg.Auth.KratosPublicURL)
	}

	publicConfig := kratosclient.NewConfiguration()
	publicConfig.Servers = []kratosclient.ServerConfiguration{
		{
			URL: cfg.Auth.KratosPublicURL,
		},
	}
	publicConfig.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	if publicConfig.DefaultHeader == nil {
		publicConfig.DefaultHeader = make(map[string]string)
	}
	publicConfig.DefaultHeader["Accept"] = "application/json"

	return &Client{
		publicAPI: kratosclient.NewAPIClient(publicConfig),
		publicURL: cfg.Auth.KratosPublicURL,
	}, nil
}

// PublicAPI returns the public API client
func (c *Client) PublicAPI() *kratosclient.APIClient {
	return c.publicAPI
}

// HealthCheck checks if Kratos is healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, response, err := c.publicAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos public API: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Kratos public API returned status %d", response.StatusCode)
	}

	return nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
