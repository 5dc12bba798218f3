// Package render is a client for the headless-browser screenshot service.
// The contract is narrow: given a URL it returns a full-page PNG.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the render service over HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a render client pointed at the service base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Full-page rendering is slow; give the service room
			Timeout: 60 * time.Second,
		},
	}
}

// Capture renders the target URL and returns the PNG bytes.
func (c *Client) Capture(ctx context.Context, target string) ([]byte, error) {
	if target == "" {
		return nil, fmt.Errorf("target url is required")
	}

	reqURL := c.baseURL + "?url=" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render service returned status %d", resp.StatusCode)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered image: %w", err)
	}

	return image, nil
}
