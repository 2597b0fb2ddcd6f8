package proactive

import (
	"errors"

	"github.com/robfig/cron/v3"

	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/collaborator"
	"executive-assistant-ai/pkg/datemath"
	pkgLog "executive-assistant-ai/pkg/log"
)

var ErrMissingRecipient = errors.New("proactive: notification recipient is required")

func New(
	l pkgLog.Logger,
	aggregator *briefing.Aggregator,
	dates *datemath.Parser,
	calendar collaborator.CalendarReader,
	tasks collaborator.TaskReader,
	email collaborator.EmailSender,
	cfg Config,
) (UseCase, error) {
	if cfg.Recipient == "" {
		return nil, ErrMissingRecipient
	}
	if cfg.TopTasks <= 0 {
		cfg.TopTasks = defaultTopTasks
	}

	o := &orchestrator{
		l:          l,
		aggregator: aggregator,
		dates:      dates,
		calendar:   calendar,
		tasks:      tasks,
		email:      email,
		cfg:        cfg,
		cron:       cron.New(cron.WithLocation(dates.Location())),
		byName:     make(map[string]Job),
	}

	o.register(Job{Name: JobDailyBriefing, Spec: scheduleDailyBriefing, Run: o.runDailyBriefing})
	o.register(Job{Name: JobUrgentTaskSweep, Spec: scheduleUrgentTaskSweep, Run: o.runUrgentTaskSweep})
	o.register(Job{Name: JobWeeklyOptimization, Spec: scheduleWeeklyOptimization, Run: o.runWeeklyOptimization})
	o.register(Job{Name: JobFollowUpCheck, Spec: scheduleFollowUpCheck, Run: o.runFollowUpCheck})
	o.register(Job{Name: JobMeetingPrep, Spec: scheduleMeetingPrep, Run: o.runMeetingPrep})

	return o, nil
}
