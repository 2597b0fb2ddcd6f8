package briefing

import (
	"fmt"
	"html"
	"strings"

	"executive-assistant-ai/internal/model"
)

// RenderText renders the briefing as plain text for chat-style delivery.
func RenderText(b model.DailyBriefing) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Daily Briefing - %s\n\n", b.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintf(&sb, "Meetings (%d):\n", len(b.UpcomingMeetings))
	if len(b.UpcomingMeetings) == 0 {
		sb.WriteString("  No meetings scheduled.\n")
	}
	for _, m := range b.UpcomingMeetings {
		fmt.Fprintf(&sb, "  - %s %s", m.StartTime.Format("15:04"), m.Summary)
		if m.Location != "" {
			fmt.Fprintf(&sb, " (%s)", m.Location)
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nPriority Tasks (%d):\n", len(b.PriorityTasks))
	if len(b.PriorityTasks) == 0 {
		sb.WriteString("  No open tasks.\n")
	}
	for _, t := range b.PriorityTasks {
		fmt.Fprintf(&sb, "  - [%s] %s", t.Priority.Label(), t.Title)
		if !t.DueDate.IsZero() {
			fmt.Fprintf(&sb, " (due %s)", t.DueDate.Format("Jan 2"))
		}
		sb.WriteByte('\n')
	}

	if len(b.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range b.Suggestions {
			fmt.Fprintf(&sb, "  - %s\n", s)
		}
	}

	return sb.String()
}

// RenderHTML renders the briefing as a simple email-ready HTML document.
func RenderHTML(b model.DailyBriefing) string {
	var sb strings.Builder

	sb.WriteString("<html><body>")
	fmt.Fprintf(&sb, "<h2>Daily Briefing - %s</h2>", b.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintf(&sb, "<h3>Meetings (%d)</h3><ul>", len(b.UpcomingMeetings))
	if len(b.UpcomingMeetings) == 0 {
		sb.WriteString("<li>No meetings scheduled.</li>")
	}
	for _, m := range b.UpcomingMeetings {
		fmt.Fprintf(&sb, "<li><strong>%s</strong> %s", m.StartTime.Format("15:04"), html.EscapeString(m.Summary))
		if m.Location != "" {
			fmt.Fprintf(&sb, " (%s)", html.EscapeString(m.Location))
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")

	fmt.Fprintf(&sb, "<h3>Priority Tasks (%d)</h3><ul>", len(b.PriorityTasks))
	if len(b.PriorityTasks) == 0 {
		sb.WriteString("<li>No open tasks.</li>")
	}
	for _, t := range b.PriorityTasks {
		fmt.Fprintf(&sb, "<li>[%s] %s", t.Priority.Label(), html.EscapeString(t.Title))
		if !t.DueDate.IsZero() {
			fmt.Fprintf(&sb, " (due %s)", t.DueDate.Format("Jan 2"))
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")

	if len(b.Suggestions) > 0 {
		sb.WriteString("<h3>Suggestions</h3><ul>")
		for _, s := range b.Suggestions {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(s))
		}
		sb.WriteString("</ul>")
	}

	sb.WriteString("</body></html>")
	return sb.String()
}
