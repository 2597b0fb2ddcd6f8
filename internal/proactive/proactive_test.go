package proactive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"executive-assistant-ai/internal/briefing"
	"executive-assistant-ai/internal/collaborator"
	"executive-assistant-ai/internal/model"
	"executive-assistant-ai/pkg/datemath"
	pkgLog "executive-assistant-ai/pkg/log"
)

type mockCalendar struct {
	events []model.Event
	err    error
}

func (m *mockCalendar) ListUpcoming(_ context.Context, _, _ time.Time, _ int64) ([]model.Event, error) {
	return m.events, m.err
}

type mockTasks struct {
	tasks []model.Task
	err   error
}

func (m *mockTasks) ListOpen(_ context.Context, _ int) ([]model.Task, error) {
	return m.tasks, m.err
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockEmail struct {
	sent      []sentMail
	analytics model.EmailAnalytics
	err       error
}

func (m *mockEmail) Send(_ context.Context, to, subject, htmlBody string) (model.SendResult, error) {
	if m.err != nil {
		return model.SendResult{}, m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return model.SendResult{Success: true, MessageID: "test"}, nil
}

func (m *mockEmail) Analytics(_ context.Context, periodDays int) (model.EmailAnalytics, error) {
	if m.err != nil {
		return model.EmailAnalytics{}, m.err
	}
	a := m.analytics
	a.PeriodDays = periodDays
	return a, nil
}

func newTestOrchestrator(t *testing.T, calendar collaborator.CalendarReader, tasks collaborator.TaskReader, email collaborator.EmailSender) *orchestrator {
	t.Helper()

	aggregator, err := briefing.New("UTC")
	if err != nil {
		t.Fatalf("briefing.New() error = %v", err)
	}
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser() error = %v", err)
	}

	uc, err := New(pkgLog.NewNop(), aggregator, dates, calendar, tasks, email, Config{
		Recipient: "boss@example.com",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc.(*orchestrator)
}

func eventAt(summary string, start time.Time, dur time.Duration) model.Event {
	return model.Event{Summary: summary, StartTime: start, EndTime: start.Add(dur)}
}

func TestDetectConflicts(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []model.Event
		want   int
	}{
		{
			name: "ten minute gap flagged",
			events: []model.Event{
				eventAt("standup", base, 30*time.Minute),
				eventAt("review", base.Add(40*time.Minute), 30*time.Minute),
			},
			want: 1,
		},
		{
			name: "twenty minute gap is fine",
			events: []model.Event{
				eventAt("standup", base, 30*time.Minute),
				eventAt("review", base.Add(50*time.Minute), 30*time.Minute),
			},
			want: 0,
		},
		{
			name: "back to back not flagged",
			events: []model.Event{
				eventAt("standup", base, 30*time.Minute),
				eventAt("review", base.Add(30*time.Minute), 30*time.Minute),
			},
			want: 0,
		},
		{
			name: "overlap not flagged",
			events: []model.Event{
				eventAt("standup", base, time.Hour),
				eventAt("review", base.Add(30*time.Minute), time.Hour),
			},
			want: 0,
		},
		{
			name:   "single event",
			events: []model.Event{eventAt("standup", base, 30*time.Minute)},
			want:   0,
		},
		{
			name: "unsorted input is ordered first",
			events: []model.Event{
				eventAt("review", base.Add(40*time.Minute), 30*time.Minute),
				eventAt("standup", base, 30*time.Minute),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, suggestions := DetectConflicts(tt.events)
			if len(conflicts) != tt.want {
				t.Fatalf("DetectConflicts() = %d conflicts, want %d", len(conflicts), tt.want)
			}
			if len(suggestions) != tt.want {
				t.Fatalf("DetectConflicts() = %d suggestions, want %d", len(suggestions), tt.want)
			}
		})
	}
}

func TestDetectConflictsSuggestionMentionsGap(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	_, suggestions := DetectConflicts([]model.Event{
		eventAt("standup", base, 30*time.Minute),
		eventAt("review", base.Add(40*time.Minute), 30*time.Minute),
	})
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v", suggestions)
	}
	if !strings.Contains(suggestions[0], "10 minutes") {
		t.Errorf("suggestion = %q, want gap size mentioned", suggestions[0])
	}
}

func TestUrgentTaskSweepSilentWhenNothingUrgent(t *testing.T) {
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{
		tasks: []model.Task{
			{Title: "routine", Priority: model.PriorityMedium, Status: model.TaskStatusOpen},
		},
	}, email)

	if err := o.runUrgentTaskSweep(context.Background()); err != nil {
		t.Fatalf("runUrgentTaskSweep() error = %v", err)
	}
	if len(email.sent) != 0 {
		t.Fatalf("dispatched %d emails, want 0 (silence is the default)", len(email.sent))
	}
}

func TestUrgentTaskSweepDispatchesOnUrgent(t *testing.T) {
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{
		tasks: []model.Task{
			{Title: "call the board", Priority: model.PriorityUrgent, Status: model.TaskStatusOpen},
		},
	}, email)

	if err := o.runUrgentTaskSweep(context.Background()); err != nil {
		t.Fatalf("runUrgentTaskSweep() error = %v", err)
	}
	if len(email.sent) != 1 {
		t.Fatalf("dispatched %d emails, want 1", len(email.sent))
	}
	if email.sent[0].subject != "Urgent Task Alert" {
		t.Errorf("subject = %q", email.sent[0].subject)
	}
	if !strings.Contains(email.sent[0].body, "call the board") {
		t.Errorf("body missing task title: %s", email.sent[0].body)
	}
}

func TestUrgentTaskSweepDispatchesOnOverdue(t *testing.T) {
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{
		tasks: []model.Task{
			{
				Title:    "expense report",
				Priority: model.PriorityMedium,
				Status:   model.TaskStatusOpen,
				DueDate:  time.Now().AddDate(0, 0, -3),
			},
		},
	}, email)

	if err := o.runUrgentTaskSweep(context.Background()); err != nil {
		t.Fatalf("runUrgentTaskSweep() error = %v", err)
	}
	if len(email.sent) != 1 {
		t.Fatalf("dispatched %d emails, want 1", len(email.sent))
	}
}

func TestFollowUpCheckThresholds(t *testing.T) {
	tests := []struct {
		name      string
		analytics model.EmailAnalytics
		wantSent  int
	}{
		{
			name:      "low open rate with volume",
			analytics: model.EmailAnalytics{Sent: 10, Opened: 2},
			wantSent:  1,
		},
		{
			name:      "low volume stays silent",
			analytics: model.EmailAnalytics{Sent: 4, Opened: 0},
			wantSent:  0,
		},
		{
			name:      "exactly five sent stays silent",
			analytics: model.EmailAnalytics{Sent: 5, Opened: 0},
			wantSent:  0,
		},
		{
			name:      "healthy open rate stays silent",
			analytics: model.EmailAnalytics{Sent: 10, Opened: 5},
			wantSent:  0,
		},
		{
			name:      "open rate exactly at floor stays silent",
			analytics: model.EmailAnalytics{Sent: 10, Opened: 3},
			wantSent:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &mockEmail{analytics: tt.analytics}
			o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{}, email)

			if err := o.runFollowUpCheck(context.Background()); err != nil {
				t.Fatalf("runFollowUpCheck() error = %v", err)
			}
			if len(email.sent) != tt.wantSent {
				t.Fatalf("dispatched %d emails, want %d", len(email.sent), tt.wantSent)
			}
		})
	}
}

func TestMeetingPrepWindow(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		lead     time.Duration
		wantSent int
	}{
		{name: "fifty minutes out is reminded", lead: 50 * time.Minute, wantSent: 1},
		{name: "thirty minutes out is too late", lead: 30 * time.Minute, wantSent: 0},
		{name: "seventy minutes out is too early", lead: 70 * time.Minute, wantSent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &mockEmail{}
			o := newTestOrchestrator(t, &mockCalendar{
				events: []model.Event{eventAt("budget review", now.Add(tt.lead), 30*time.Minute)},
			}, &mockTasks{}, email)

			if err := o.runMeetingPrep(context.Background()); err != nil {
				t.Fatalf("runMeetingPrep() error = %v", err)
			}
			if len(email.sent) != tt.wantSent {
				t.Fatalf("dispatched %d emails, want %d", len(email.sent), tt.wantSent)
			}
		})
	}
}

func TestWeeklyOptimizationSilentWithoutConflicts(t *testing.T) {
	base := time.Now().AddDate(0, 0, 3)
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{
		events: []model.Event{
			eventAt("planning", base, time.Hour),
			eventAt("1:1", base.Add(3*time.Hour), 30*time.Minute),
		},
	}, &mockTasks{}, email)

	if err := o.runWeeklyOptimization(context.Background()); err != nil {
		t.Fatalf("runWeeklyOptimization() error = %v", err)
	}
	if len(email.sent) != 0 {
		t.Fatalf("dispatched %d emails, want 0", len(email.sent))
	}
}

func TestWeeklyOptimizationDispatchesOnConflict(t *testing.T) {
	base := time.Now().AddDate(0, 0, 3)
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{
		events: []model.Event{
			eventAt("planning", base, time.Hour),
			eventAt("1:1", base.Add(time.Hour+10*time.Minute), 30*time.Minute),
		},
	}, &mockTasks{}, email)

	if err := o.runWeeklyOptimization(context.Background()); err != nil {
		t.Fatalf("runWeeklyOptimization() error = %v", err)
	}
	if len(email.sent) != 1 {
		t.Fatalf("dispatched %d emails, want 1", len(email.sent))
	}
	if !strings.Contains(email.sent[0].subject, "Calendar Optimization") {
		t.Errorf("subject = %q", email.sent[0].subject)
	}
}

func TestDailyBriefingDispatches(t *testing.T) {
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{
		events: []model.Event{eventAt("exec sync", time.Now().Add(2*time.Hour), time.Hour)},
	}, &mockTasks{
		tasks: []model.Task{
			{Title: "board deck", Priority: model.PriorityUrgent, Status: model.TaskStatusOpen},
		},
	}, email)

	if err := o.runDailyBriefing(context.Background()); err != nil {
		t.Fatalf("runDailyBriefing() error = %v", err)
	}
	if len(email.sent) != 1 {
		t.Fatalf("dispatched %d emails, want 1", len(email.sent))
	}
	if email.sent[0].to != "boss@example.com" {
		t.Errorf("to = %q", email.sent[0].to)
	}
	if !strings.Contains(email.sent[0].subject, "Daily Briefing") {
		t.Errorf("subject = %q", email.sent[0].subject)
	}
	if !strings.Contains(email.sent[0].body, "board deck") {
		t.Errorf("body missing task title")
	}
}

func TestDailyBriefingCapsTaskList(t *testing.T) {
	tasks := []model.Task{
		{Title: "one", Priority: model.PriorityLow},
		{Title: "two", Priority: model.PriorityUrgent},
		{Title: "three", Priority: model.PriorityHigh},
		{Title: "four", Priority: model.PriorityMedium},
		{Title: "five", Priority: model.PriorityMedium},
		{Title: "six", Priority: model.PriorityHigh},
		{Title: "seven", Priority: model.PriorityUrgent},
	}

	got := topTasks(tasks, 5)
	if len(got) != 5 {
		t.Fatalf("topTasks() returned %d, want 5", len(got))
	}
	if got[0].Title != "two" || got[1].Title != "seven" {
		t.Errorf("urgent tasks not first: %v, %v", got[0].Title, got[1].Title)
	}
	for _, task := range got {
		if task.Title == "one" {
			t.Error("low priority task survived the cap")
		}
	}
}

func TestRunActionRouting(t *testing.T) {
	email := &mockEmail{}
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{}, email)

	if ok := o.RunAction(context.Background(), "no_such_job"); ok {
		t.Error("RunAction() matched an unknown job name")
	}
	if ok := o.RunAction(context.Background(), JobUrgentTaskSweep); !ok {
		t.Error("RunAction() did not match a registered job")
	}
}

func TestRunActionContainsJobFailure(t *testing.T) {
	email := &mockEmail{}
	failing := &mockCalendar{err: errors.New("calendar is down")}
	o := newTestOrchestrator(t, failing, &mockTasks{
		tasks: []model.Task{
			{Title: "call the board", Priority: model.PriorityUrgent, Status: model.TaskStatusOpen},
		},
	}, email)

	// A collaborator failure in one job is contained there.
	if ok := o.RunAction(context.Background(), JobWeeklyOptimization); !ok {
		t.Fatal("RunAction() did not match weekly optimization")
	}

	// Other jobs keep working afterwards.
	if ok := o.RunAction(context.Background(), JobUrgentTaskSweep); !ok {
		t.Fatal("RunAction() did not match urgent sweep")
	}
	if len(email.sent) != 1 {
		t.Fatalf("urgent sweep dispatched %d emails after sibling failure, want 1", len(email.sent))
	}
}

func TestRunJobRecoversPanic(t *testing.T) {
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{}, &mockEmail{})

	o.runJob(context.Background(), Job{
		Name: "exploding",
		Run: func(context.Context) error {
			panic("boom")
		},
	})
	// Reaching here means the panic was contained.
}

func TestJobNames(t *testing.T) {
	o := newTestOrchestrator(t, &mockCalendar{}, &mockTasks{}, &mockEmail{})

	want := []string{
		JobDailyBriefing,
		JobUrgentTaskSweep,
		JobWeeklyOptimization,
		JobFollowUpCheck,
		JobMeetingPrep,
	}
	got := o.JobNames()
	if len(got) != len(want) {
		t.Fatalf("JobNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("JobNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewRequiresRecipient(t *testing.T) {
	aggregator, _ := briefing.New("UTC")
	dates, _ := datemath.NewParser("UTC")

	_, err := New(pkgLog.NewNop(), aggregator, dates, &mockCalendar{}, &mockTasks{}, &mockEmail{}, Config{})
	if !errors.Is(err, ErrMissingRecipient) {
		t.Fatalf("New() error = %v, want ErrMissingRecipient", err)
	}
}
