package collaborator

import (
	"context"
	"fmt"

	"executive-assistant-ai/internal/model"
	"executive-assistant-ai/pkg/sendgrid"
)

// SendGridEmail adapts the SendGrid client to the EmailSender interface.
type SendGridEmail struct {
	client *sendgrid.Client
}

// NewSendGridEmail wraps a configured SendGrid client.
func NewSendGridEmail(client *sendgrid.Client) *SendGridEmail {
	return &SendGridEmail{client: client}
}

// Send delivers one HTML email.
func (s *SendGridEmail) Send(ctx context.Context, to, subject, htmlBody string) (model.SendResult, error) {
	result, err := s.client.Send(ctx, sendgrid.SendRequest{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return model.SendResult{}, fmt.Errorf("failed to send email: %w", err)
	}
	return model.SendResult{
		Success:   result.Success,
		MessageID: result.MessageID,
	}, nil
}

// Analytics reports aggregate delivery metrics over the trailing period.
func (s *SendGridEmail) Analytics(ctx context.Context, periodDays int) (model.EmailAnalytics, error) {
	stats, err := s.client.Stats(ctx, periodDays)
	if err != nil {
		return model.EmailAnalytics{}, fmt.Errorf("failed to fetch email analytics: %w", err)
	}
	return model.EmailAnalytics{
		PeriodDays: periodDays,
		Sent:       stats.Sent,
		Opened:     stats.Opened,
		Clicked:    stats.Clicked,
	}, nil
}
