package briefing

import (
	"fmt"
	"time"

	"executive-assistant-ai/internal/model"
)

const morningCutoffHour = 10

// Aggregator assembles daily briefings from collaborator snapshots. It is
// pure derivation: no collaborator calls, no caching between invocations.
type Aggregator struct {
	location *time.Location
}

// New creates an aggregator pinned to the given IANA timezone. An empty
// timezone falls back to the local zone.
func New(timezone string) (*Aggregator, error) {
	if timezone == "" {
		return &Aggregator{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load briefing timezone %q: %w", timezone, err)
	}
	return &Aggregator{location: loc}, nil
}

// Assemble builds a fresh briefing for the given moment. Suggestions are
// independent threshold rules evaluated in a fixed order; more than one can
// fire for the same briefing.
func (a *Aggregator) Assemble(now time.Time, meetings []model.Event, tasks []model.Task, emails []model.EmailSummary) model.DailyBriefing {
	localNow := now.In(a.location)

	return model.DailyBriefing{
		Date:             localNow,
		UpcomingMeetings: meetings,
		PriorityTasks:    tasks,
		ImportantEmails:  emails,
		Suggestions:      a.deriveSuggestions(localNow, meetings, tasks),
	}
}

func (a *Aggregator) deriveSuggestions(localNow time.Time, meetings []model.Event, tasks []model.Task) []string {
	var suggestions []string

	if len(meetings) > 5 {
		suggestions = append(suggestions,
			fmt.Sprintf("You have %d meetings today. Consider blocking deep-work time between them.", len(meetings)))
	}

	missingAgenda := 0
	for _, m := range meetings {
		if m.Description == "" {
			missingAgenda++
		}
	}
	if missingAgenda > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("%d meeting(s) have no agenda. Add one so attendees can prepare.", missingAgenda))
	}

	if len(tasks) > 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("You have %d priority tasks. Consider delegating the less critical ones.", len(tasks)))
	}

	overdue := 0
	for _, t := range tasks {
		if t.Overdue(localNow) {
			overdue++
		}
	}
	if overdue > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("%d task(s) are overdue. Address them before taking on new work.", overdue))
	}

	if localNow.Hour() < morningCutoffHour && len(tasks) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("It's still early. Front-load your most important task: %s.", tasks[0].Title))
	}

	return suggestions
}
