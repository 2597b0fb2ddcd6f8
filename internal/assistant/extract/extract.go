// Package extract pulls structured action parameters out of raw request text.
//
// Each action family owns an ordered ladder of patterns; the first pattern
// that matches wins, so more specific patterns are always listed before
// generic ones. Extraction never fails: fields that do not match are simply
// left empty.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"executive-assistant-ai/internal/model"
)

// Extractor runs the per-family rule ladders.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ---- Meeting family ----

// Title ladder: "meeting/meet with X" is more specific than "schedule/book X",
// so it is tried first.
var meetingTitleLadder = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:meeting|meet)\s+with\s+(.+)`),
	regexp.MustCompile(`(?i)(?:schedule|book)\s+(?:a\s+|an\s+|the\s+)?(.+)`),
}

// Boundary words end a free-text title capture.
var titleBoundary = regexp.MustCompile(`(?i)\s+(?:on|at|for|tomorrow|next|this)\b.*$`)

// Time ladder: an explicit "at HH:MM am/pm" beats a bare clock reading.
var meetingTimeLadder = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm))`),
	regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm)?)`),
}

// Date ladder: relative keywords, then next/this phrases, then numeric dates.
var dateLadder = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(today|tomorrow|tonight)\b`),
	regexp.MustCompile(`(?i)\b((?:next|this)\s+[a-z]+)\b`),
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`),
}

var durationPattern = regexp.MustCompile(`(?i)(?:for|duration(?:\s+of)?)\s+(\d+)\s*(hour|hr|minute|min)s?\b`)

// Meeting extracts schedule-meeting parameters from the input text.
func (e *Extractor) Meeting(input string) model.MeetingParams {
	p := model.MeetingParams{}

	if title, ok := firstCapture(meetingTitleLadder, input); ok {
		p.Title = strings.TrimSpace(titleBoundary.ReplaceAllString(title, ""))
	}
	if t, ok := firstCapture(meetingTimeLadder, input); ok {
		p.Time = strings.TrimSpace(t)
	}
	if d, ok := firstCapture(dateLadder, input); ok {
		p.Date = d
	}
	if m := durationPattern.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			if strings.HasPrefix(strings.ToLower(m[2]), "h") {
				n *= 60
			}
			p.Duration = n
		}
	}

	return p
}

// ---- Email family ----

var emailAddressPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Subject ladder: quoted subjects win over a bare tail capture.
var subjectLadder = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:subject|about|regarding)\b\s*:?\s*"([^"]+)"`),
	regexp.MustCompile(`(?i)\b(?:subject|about|regarding)\b\s*:?\s+(.+)$`),
}

// Email extracts send-email parameters. The first address found is the
// primary recipient; any further addresses become CC.
func (e *Extractor) Email(input string) model.EmailParams {
	p := model.EmailParams{}

	addrs := emailAddressPattern.FindAllString(input, -1)
	if len(addrs) > 0 {
		p.To = addrs[0]
	}
	if len(addrs) > 1 {
		p.CC = addrs[1:]
	}
	if subject, ok := firstCapture(subjectLadder, input); ok {
		p.Subject = strings.TrimSpace(subject)
	}

	return p
}

// ---- Task family ----

var taskTitleLadder = []*regexp.Regexp{
	regexp.MustCompile(`(?i)remind\s+me\s+to\s+(.+)`),
	regexp.MustCompile(`(?i)(?:task|todo)\s+(?:to\s+)?(.+)`),
}

var taskTitleBoundary = regexp.MustCompile(`(?i)\s+(?:by|before|on|at)\b.*$`)

// Due-date ladder includes bare weekday names so "by Friday" extracts the day.
var dueDatePattern = regexp.MustCompile(`(?i)\b(?:by|before|due)\s+(tomorrow|today|next\s+[a-z]+|this\s+[a-z]+|monday|tuesday|wednesday|thursday|friday|saturday|sunday|\d{1,2}/\d{1,2}(?:/\d{2,4})?)`)

// Priority keyword ladder, most urgent first. The default is always assigned.
var priorityLadder = []struct {
	keywords []string
	level    string
}{
	{[]string{"urgent", "asap", "immediately"}, "urgent"},
	{[]string{"high priority", "important"}, "high"},
	{[]string{"low priority"}, "low"},
}

// Task extracts create-task parameters. Priority is never absent: it falls
// back to "medium" when no keyword matches.
func (e *Extractor) Task(input string) model.TaskParams {
	p := model.TaskParams{Priority: "medium"}

	if title, ok := firstCapture(taskTitleLadder, input); ok {
		p.Title = strings.TrimSpace(taskTitleBoundary.ReplaceAllString(title, ""))
	}

	lower := strings.ToLower(input)
	for _, rung := range priorityLadder {
		if containsAny(lower, rung.keywords) {
			p.Priority = rung.level
			break
		}
	}

	if m := dueDatePattern.FindStringSubmatch(input); m != nil {
		p.DueDate = m[1]
	}

	return p
}

// ---- Search family ----

// Time-range keywords in check order; first match wins.
var searchRanges = []string{"today", "tomorrow", "this week", "next week", "this month"}

// Search extracts calendar-search parameters.
func (e *Extractor) Search(input string) model.SearchParams {
	lower := strings.ToLower(input)
	for _, r := range searchRanges {
		if strings.Contains(lower, r) {
			return model.SearchParams{TimeRange: r}
		}
	}
	return model.SearchParams{}
}

// firstCapture runs a ladder in order and returns the first capture group of
// the first pattern that matches.
func firstCapture(ladder []*regexp.Regexp, input string) (string, bool) {
	for _, re := range ladder {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
