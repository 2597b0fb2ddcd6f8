package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMissingAPIKey indicates the client was configured without an API key.
var ErrMissingAPIKey = errors.New("sendgrid: API key is required")

// ErrMissingFromEmail indicates no sender address was configured.
var ErrMissingFromEmail = errors.New("sendgrid: from email is required")

// Client is the SendGrid v3 API client. It is safe for concurrent use.
type Client struct {
	apiKey     string
	fromEmail  string
	fromName   string
	baseURL    string
	httpClient *http.Client
}

// New creates a SendGrid client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Send dispatches one HTML email via POST /v3/mail/send.
func (c *Client) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	payload := mailSendBody{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: req.To}}},
		},
		From:    emailAddress{Email: c.fromEmail, Name: c.fromName},
		Subject: req.Subject,
		Content: []mailContent{{Type: "text/html", Value: req.HTMLBody}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return SendResult{}, fmt.Errorf("sendgrid: failed to marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/v3/mail/send", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return SendResult{}, fmt.Errorf("sendgrid: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return SendResult{}, fmt.Errorf("sendgrid: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	// SendGrid answers 202 Accepted on success.
	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return SendResult{}, fmt.Errorf("sendgrid: API error %d: %s", resp.StatusCode, string(raw))
	}

	return SendResult{
		Success:   true,
		MessageID: resp.Header.Get("X-Message-Id"),
	}, nil
}

// Stats fetches aggregate delivery metrics for the trailing number of days
// via GET /v3/stats, summed across the day buckets SendGrid returns.
func (c *Client) Stats(ctx context.Context, days int) (Stats, error) {
	if days <= 0 {
		days = 7
	}
	startDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	url := fmt.Sprintf("%s/v3/stats?start_date=%s&aggregated_by=day", c.baseURL, startDate)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("sendgrid: failed to create stats request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Stats{}, fmt.Errorf("sendgrid: failed to call stats API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("sendgrid: stats API error %d: %s", resp.StatusCode, string(raw))
	}

	var buckets []statsBucket
	if err := json.NewDecoder(resp.Body).Decode(&buckets); err != nil {
		return Stats{}, fmt.Errorf("sendgrid: failed to decode stats response: %w", err)
	}

	var out Stats
	for _, b := range buckets {
		for _, s := range b.Stats {
			out.Sent += s.Metrics.Requests
			out.Opened += s.Metrics.UniqueOpens
			out.Clicked += s.Metrics.Clicks
		}
	}
	return out, nil
}
