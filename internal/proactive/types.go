package proactive

import "context"

// Config tunes the orchestrator's dispatch targets and list sizes.
type Config struct {
	// Recipient receives every notification email the jobs produce.
	Recipient string

	// TopTasks caps the number of tasks included in the daily briefing.
	// Zero means the default.
	TopTasks int
}

// Job is one independently scheduled unit of work. Jobs never share mutable
// state; a failing run only affects its own cycle.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}
