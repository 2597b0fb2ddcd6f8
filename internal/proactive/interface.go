package proactive

import "context"

type UseCase interface {
	// Start registers the cron schedules and begins firing jobs.
	Start()

	// Stop halts the scheduler and waits for in-flight jobs to finish.
	Stop()

	// RunAction fires a named job immediately, outside its cron schedule.
	// It reports whether the name matched a registered job; job failures
	// are contained and logged, never returned.
	RunAction(ctx context.Context, name string) bool

	// JobNames lists registered job names in registration order.
	JobNames() []string
}
