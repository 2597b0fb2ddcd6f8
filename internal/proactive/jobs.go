package proactive

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/model"
)

// runDailyBriefing aggregates today's calendar window plus the top priority
// tasks into one briefing email. The emails section is an empty placeholder
// until the email collaborator grows an inbox read.
func (o *orchestrator) runDailyBriefing(ctx context.Context) error {
	now := time.Now().In(o.dates.Location())
	from := o.dates.StartOfDay(now)
	to := o.dates.EndOfDay(from)

	meetings, err := o.calendar.ListUpcoming(ctx, from, to, calendarFetchMax)
	if err != nil {
		return fmt.Errorf("failed to read today's calendar: %w", err)
	}

	tasks, err := o.tasks.ListOpen(ctx, taskListFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to read open tasks: %w", err)
	}
	tasks = topTasks(tasks, o.cfg.TopTasks)

	b := o.aggregator.Assemble(now, meetings, tasks, nil)

	subject := fmt.Sprintf("Daily Briefing - %s", now.Format("Monday, Jan 2"))
	return o.dispatch(ctx, subject, briefing.RenderHTML(b))
}

// runUrgentTaskSweep alerts on urgent or overdue tasks. When neither list has
// entries nothing is sent; silence is the default.
func (o *orchestrator) runUrgentTaskSweep(ctx context.Context) error {
	now := time.Now().In(o.dates.Location())

	tasks, err := o.tasks.ListOpen(ctx, taskListFetchLimit)
	if err != nil {
		return fmt.Errorf("failed to read open tasks: %w", err)
	}

	var urgent, overdue []model.Task
	for _, t := range tasks {
		if t.Priority == model.PriorityUrgent {
			urgent = append(urgent, t)
		}
		if t.Overdue(now) {
			overdue = append(overdue, t)
		}
	}
	if len(urgent) == 0 && len(overdue) == 0 {
		return nil
	}

	return o.dispatch(ctx, "Urgent Task Alert", renderTaskAlert(urgent, overdue))
}

// runWeeklyOptimization checks next week's calendar for tightly packed events
// and sends buffer-time suggestions only when at least one conflict exists.
func (o *orchestrator) runWeeklyOptimization(ctx context.Context) error {
	now := time.Now().In(o.dates.Location())
	from, to := o.dates.NextWeekRange(now)

	events, err := o.calendar.ListUpcoming(ctx, from, to, calendarFetchMax)
	if err != nil {
		return fmt.Errorf("failed to read next week's calendar: %w", err)
	}

	conflicts, suggestions := DetectConflicts(events)
	if len(conflicts) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Calendar Optimization - Week of %s", from.Format("Jan 2"))
	return o.dispatch(ctx, subject, renderSuggestionList(
		fmt.Sprintf("Found %d scheduling conflict(s) next week:", len(conflicts)), suggestions))
}

// runFollowUpCheck nudges when the trailing week's email open rate drops
// below the floor, provided enough mail was sent for the rate to mean much.
func (o *orchestrator) runFollowUpCheck(ctx context.Context) error {
	analytics, err := o.email.Analytics(ctx, analyticsPeriodDays)
	if err != nil {
		return fmt.Errorf("failed to read email analytics: %w", err)
	}

	if analytics.Sent <= followUpMinSent || analytics.OpenRate() >= followUpOpenRateMin {
		return nil
	}

	body := renderSuggestionList("Your recent emails are getting little engagement:", []string{
		fmt.Sprintf("Only %d of %d emails sent in the last %d days were opened (%.0f%%).",
			analytics.Opened, analytics.Sent, analytics.PeriodDays, analytics.OpenRate()*100),
		"Consider following up by phone or shortening your subject lines.",
	})
	return o.dispatch(ctx, "Low Email Response Rate", body)
}

// runMeetingPrep reminds about meetings starting 45-60 minutes from now. The
// window matches the 15-minute polling cadence, so each meeting is caught
// exactly once when firings are on time.
func (o *orchestrator) runMeetingPrep(ctx context.Context) error {
	now := time.Now().In(o.dates.Location())

	events, err := o.calendar.ListUpcoming(ctx, now, now.Add(meetingPrepLeadMax), calendarFetchMax)
	if err != nil {
		return fmt.Errorf("failed to read upcoming events: %w", err)
	}

	for _, ev := range events {
		lead := ev.StartTime.Sub(now)
		if lead < meetingPrepLeadMin || lead >= meetingPrepLeadMax {
			continue
		}

		subject := fmt.Sprintf("Prep: %s at %s", ev.Summary, ev.StartTime.Format("15:04"))
		body := renderSuggestionList(
			fmt.Sprintf("%q starts in %d minutes.", ev.Summary, int(lead.Minutes())),
			prepPointers(ev))
		if err := o.dispatch(ctx, subject, body); err != nil {
			return err
		}
	}
	return nil
}

func prepPointers(ev model.Event) []string {
	pointers := []string{"Review the attendee list and your talking points."}
	if ev.Description == "" {
		pointers = append(pointers, "This meeting has no agenda. Consider sending one now.")
	}
	if ev.Location != "" {
		pointers = append(pointers, fmt.Sprintf("Location: %s.", ev.Location))
	}
	return pointers
}

// topTasks sorts by priority (most urgent first), breaking ties by earliest
// due date, and keeps at most limit entries.
func topTasks(tasks []model.Task, limit int) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		if sorted[i].DueDate.IsZero() || sorted[j].DueDate.IsZero() {
			return sorted[j].DueDate.IsZero() && !sorted[i].DueDate.IsZero()
		}
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func renderTaskAlert(urgent, overdue []model.Task) string {
	var sb strings.Builder
	sb.WriteString("<html><body><h2>Urgent Task Alert</h2>")

	if len(urgent) > 0 {
		fmt.Fprintf(&sb, "<h3>Urgent (%d)</h3><ul>", len(urgent))
		for _, t := range urgent {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(t.Title))
		}
		sb.WriteString("</ul>")
	}
	if len(overdue) > 0 {
		fmt.Fprintf(&sb, "<h3>Overdue (%d)</h3><ul>", len(overdue))
		for _, t := range overdue {
			fmt.Fprintf(&sb, "<li>%s (due %s)</li>", html.EscapeString(t.Title), t.DueDate.Format("Jan 2"))
		}
		sb.WriteString("</ul>")
	}

	sb.WriteString("</body></html>")
	return sb.String()
}

func renderSuggestionList(heading string, items []string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	fmt.Fprintf(&sb, "<p>%s</p><ul>", html.EscapeString(heading))
	for _, item := range items {
		fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(item))
	}
	sb.WriteString("</ul></body></html>")
	return sb.String()
}
