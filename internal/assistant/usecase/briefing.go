package usecase

import (
	"context"
	"sort"
	"time"

	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/model"
)

const briefingTaskFetchLimit = 50

// GenerateBriefing assembles today's briefing on demand. Collaborators that
// are missing or failing contribute empty sections rather than aborting the
// whole briefing.
func (uc *usecase) GenerateBriefing(ctx context.Context, sc model.Scope) (string, error) {
	now := time.Now().In(uc.dates.Location())
	from := uc.dates.StartOfDay(now)
	to := uc.dates.EndOfDay(from)

	var meetings []model.Event
	if uc.calendar != nil {
		events, err := uc.calendar.ListUpcoming(ctx, from, to, briefingTaskFetchLimit)
		if err != nil {
			uc.l.Warnf(ctx, "assistant: briefing calendar read failed: %v", err)
		} else {
			meetings = events
		}
	}

	var tasks []model.Task
	if uc.tasks != nil {
		open, err := uc.tasks.ListOpen(ctx, briefingTaskFetchLimit)
		if err != nil {
			uc.l.Warnf(ctx, "assistant: briefing task read failed: %v", err)
		} else {
			tasks = open
			sort.SliceStable(tasks, func(i, j int) bool {
				return tasks[i].Priority < tasks[j].Priority
			})
		}
	}

	b := uc.aggregator.Assemble(now, meetings, tasks, nil)
	uc.l.Infof(ctx, "assistant: briefing generated for user=%s meetings=%d tasks=%d", sc.UserID, len(meetings), len(tasks))

	return briefing.RenderText(b), nil
}
