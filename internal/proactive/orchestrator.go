package proactive

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/collaborator"
	"executive-assistant-ai/pkg/datemath"
	pkgLog "executive-assistant-ai/pkg/log"
)

type orchestrator struct {
	l          pkgLog.Logger
	aggregator *briefing.Aggregator
	dates      *datemath.Parser
	calendar   collaborator.CalendarReader
	tasks      collaborator.TaskReader
	email      collaborator.EmailSender
	cfg        Config

	cron   *cron.Cron
	jobs   []Job
	byName map[string]Job
}

func (o *orchestrator) register(job Job) {
	o.jobs = append(o.jobs, job)
	o.byName[job.Name] = job
}

// Start wires every job into the cron runner and starts it. Each firing runs
// on its own goroutine with its own failure containment, so one job can never
// delay or cancel another.
func (o *orchestrator) Start() {
	for _, job := range o.jobs {
		job := job
		if _, err := o.cron.AddFunc(job.Spec, func() {
			o.runJob(context.Background(), job)
		}); err != nil {
			o.l.Errorf(context.Background(), "proactive: failed to schedule job %s: %v", job.Name, err)
			continue
		}
		o.l.Infof(context.Background(), "proactive: scheduled job %s (%s)", job.Name, job.Spec)
	}
	o.cron.Start()
}

// Stop halts the scheduler and blocks until in-flight jobs return.
func (o *orchestrator) Stop() {
	<-o.cron.Stop().Done()
}

func (o *orchestrator) RunAction(ctx context.Context, name string) bool {
	job, ok := o.byName[name]
	if !ok {
		return false
	}
	o.runJob(ctx, job)
	return true
}

func (o *orchestrator) JobNames() []string {
	names := make([]string, 0, len(o.jobs))
	for _, job := range o.jobs {
		names = append(names, job.Name)
	}
	return names
}

// runJob is the containment boundary for one firing: errors are logged and
// dropped, panics are recovered, and nothing propagates to the scheduler or
// to other jobs.
func (o *orchestrator) runJob(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "proactive: job %s panicked: %v", job.Name, r)
		}
	}()

	if err := job.Run(ctx); err != nil {
		o.l.Errorf(ctx, "proactive: job %s failed: %v", job.Name, err)
		return
	}
	o.l.Debugf(ctx, "proactive: job %s completed", job.Name)
}

func (o *orchestrator) dispatch(ctx context.Context, subject, htmlBody string) error {
	result, err := o.email.Send(ctx, o.cfg.Recipient, subject, htmlBody)
	if err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("notification dispatch was not accepted")
	}
	return nil
}
