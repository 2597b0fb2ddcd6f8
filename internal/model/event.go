package model

import "time"

// Event is a read-only snapshot of a calendar event owned by the calendar
// collaborator. The core never mutates events.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HTMLLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}
