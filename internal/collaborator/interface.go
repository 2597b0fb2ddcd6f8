package collaborator

import (
	"context"
	"time"

	"executive-assistant-ai/internal/model"
)

// LanguageModel generates free-form text from a prompt.
type LanguageModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// CalendarReader lists calendar events in a time window.
type CalendarReader interface {
	ListUpcoming(ctx context.Context, from, to time.Time, max int64) ([]model.Event, error)
}

// TaskReader lists open tasks from the task store.
type TaskReader interface {
	ListOpen(ctx context.Context, limit int) ([]model.Task, error)
}

// EmailSender delivers HTML email and reports delivery analytics.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (model.SendResult, error)
	Analytics(ctx context.Context, periodDays int) (model.EmailAnalytics, error)
}
