package model

import "time"

// EmailSummary is a read-only snapshot of an important inbound email.
// Currently always empty in briefings (the email collaborator exposes no
// inbox read yet); the field exists so the shape is stable.
type EmailSummary struct {
	From       string
	Subject    string
	ReceivedAt time.Time
}

// DailyBriefing is assembled fresh on every invocation and never cached.
type DailyBriefing struct {
	Date             time.Time
	UpcomingMeetings []Event
	PriorityTasks    []Task
	ImportantEmails  []EmailSummary
	Suggestions      []string
}

// SendResult reports the outcome of one email dispatch.
type SendResult struct {
	Success   bool
	MessageID string
}

// EmailAnalytics is the aggregate delivery statistics for a trailing period.
type EmailAnalytics struct {
	PeriodDays int
	Sent       int
	Opened     int
	Clicked    int
}

// OpenRate returns opened/sent, or 0 when nothing was sent.
func (a EmailAnalytics) OpenRate() float64 {
	if a.Sent == 0 {
		return 0
	}
	return float64(a.Opened) / float64(a.Sent)
}
