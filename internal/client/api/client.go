// Package api is the HTTP client for the posting service, used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/postboard/postboard/pkg/api"
)

// Client is an HTTP client for the server API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, username, password string) (*api.SignupResponse, error) {
	var resp api.SignupResponse
	req := api.SignupRequest{Username: username, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/signup", req, &resp); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns the issued token
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.LoginRequest{Username: username, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreatePost creates a new post owned by the authenticated user
func (c *Client) CreatePost(ctx context.Context, title, content string) (*api.Post, error) {
	var resp api.Post
	req := api.PostRequest{Title: title, Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/posts", req, &resp); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	return &resp, nil
}

// ListPosts returns all posts
func (c *Client) ListPosts(ctx context.Context) ([]api.Post, error) {
	var resp []api.Post
	if err := c.doRequest(ctx, http.MethodGet, "/posts", nil, &resp); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return resp, nil
}

// UpdatePost overwrites title and content of an owned post
func (c *Client) UpdatePost(ctx context.Context, postID, title, content string) (*api.Post, error) {
	var resp api.Post
	req := api.PostRequest{Title: title, Content: content}
	if err := c.doRequest(ctx, http.MethodPut, "/posts/"+postID, req, &resp); err != nil {
		return nil, fmt.Errorf("update post request failed: %w", err)
	}
	return &resp, nil
}

// DeletePost removes an owned post
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/posts/"+postID, nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

// Like increments a post's like counter
func (c *Client) Like(ctx context.Context, postID string) (*api.Post, error) {
	var resp api.Post
	if err := c.doRequest(ctx, http.MethodPost, "/posts/"+postID+"/like", nil, &resp); err != nil {
		return nil, fmt.Errorf("like request failed: %w", err)
	}
	return &resp, nil
}

// Dislike increments a post's dislike counter
func (c *Client) Dislike(ctx context.Context, postID string) (*api.Post, error) {
	var resp api.Post
	if err := c.doRequest(ctx, http.MethodPost, "/posts/"+postID+"/dislike", nil, &resp); err != nil {
		return nil, fmt.Errorf("dislike request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs an HTTP request against the server API
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
