// Package mail is a client for the transactional email provider.
// It sends contact-form notifications to a fixed recipient.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the email provider's HTTP API
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	to         string
}

// Message is a contact-form submission to forward.
type Message struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// New creates a mail client. endpoint and apiKey come from configuration;
// to is the fixed notification recipient.
func New(endpoint, apiKey, to string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		to:       to,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send forwards a formatted notification to the provider.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body := sendRequest{
		To:      c.to,
		Subject: fmt.Sprintf("New contact from %s", msg.Name),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
			msg.Name, msg.Email, msg.Phone, msg.Message),
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
