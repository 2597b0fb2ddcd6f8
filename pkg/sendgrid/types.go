package sendgrid

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the SendGrid v3 API endpoint.
	DefaultBaseURL = "https://api.sendgrid.com"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 15 * time.Second
)

// Config configures the SendGrid client.
type Config struct {
	APIKey     string
	FromEmail  string
	FromName   string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.FromEmail == "" {
		return ErrMissingFromEmail
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// SendRequest is the input for sending one email.
type SendRequest struct {
	To       string
	Subject  string
	HTMLBody string
}

// SendResult reports a dispatch outcome.
type SendResult struct {
	Success   bool
	MessageID string
}

// Stats are aggregate delivery metrics over a trailing window.
type Stats struct {
	Sent    int
	Opened  int
	Clicked int
}

// ---- SendGrid wire types ----

type mailSendBody struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type statsBucket struct {
	Date  string `json:"date"`
	Stats []struct {
		Metrics struct {
			Requests    int `json:"requests"`
			UniqueOpens int `json:"unique_opens"`
			Clicks      int `json:"clicks"`
		} `json:"metrics"`
	} `json:"stats"`
}
