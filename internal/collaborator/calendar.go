package collaborator

import (
	"context"
	"fmt"
	"time"

	"executive-assistant-ai/internal/model"
	"executive-assistant-ai/pkg/gcalendar"
)

// GoogleCalendar adapts the Google Calendar client to the CalendarReader interface.
type GoogleCalendar struct {
	client     *gcalendar.Client
	calendarID string
}

// NewGoogleCalendar wraps an authenticated Google Calendar client.
// calendarID may be empty, in which case the primary calendar is used.
func NewGoogleCalendar(client *gcalendar.Client, calendarID string) *GoogleCalendar {
	return &GoogleCalendar{
		client:     client,
		calendarID: calendarID,
	}
}

// ListUpcoming returns events in [from, to), ordered by start time.
func (g *GoogleCalendar) ListUpcoming(ctx context.Context, from, to time.Time, max int64) ([]model.Event, error) {
	events, err := g.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: g.calendarID,
		TimeMin:    from,
		TimeMax:    to,
		MaxResults: max,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, model.Event{
			ID:          ev.ID,
			Summary:     ev.Summary,
			Description: ev.Description,
			Location:    ev.Location,
			HTMLLink:    ev.HtmlLink,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
		})
	}
	return out, nil
}
