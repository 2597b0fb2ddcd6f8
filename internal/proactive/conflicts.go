package proactive

import (
	"fmt"
	"sort"
	"time"

	"executive-assistant-ai/internal/model"
)

// Conflict is an adjacent pair of events scheduled too close together.
type Conflict struct {
	First  model.Event
	Second model.Event
	Gap    time.Duration
}

// DetectConflicts scans adjacent event pairs in chronological order and flags
// pairs whose gap is strictly between zero and fifteen minutes, returning one
// buffer-time suggestion per flagged pair. Back-to-back (zero gap) and
// overlapping events are not flagged.
func DetectConflicts(events []model.Event) ([]Conflict, []string) {
	if len(events) < 2 {
		return nil, nil
	}

	ordered := make([]model.Event, len(events))
	copy(ordered, events)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].StartTime.Before(ordered[j].StartTime)
	})

	var conflicts []Conflict
	var suggestions []string
	for i := 1; i < len(ordered); i++ {
		prev, next := ordered[i-1], ordered[i]
		gap := next.StartTime.Sub(prev.EndTime)
		if gap <= 0 || gap >= conflictGapMax {
			continue
		}
		conflicts = append(conflicts, Conflict{First: prev, Second: next, Gap: gap})
		suggestions = append(suggestions, fmt.Sprintf(
			"Only %d minutes between %q and %q. Add buffer time or move %q later.",
			int(gap.Minutes()), prev.Summary, next.Summary, next.Summary))
	}
	return conflicts, suggestions
}
