package extract

import (
	"testing"

	"executive-assistant-ai/internal/model"
)

func TestMeeting(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		input string
		want  model.MeetingParams
	}{
		{
			name:  "full meeting request",
			input: "Schedule a meeting with John tomorrow at 2 PM",
			want:  model.MeetingParams{Title: "John", Time: "2 PM", Date: "tomorrow"},
		},
		{
			name:  "duration in hours normalized to minutes",
			input: "Book a review with the design team on Friday for 2 hours",
			want:  model.MeetingParams{Title: "the design team", Duration: 120},
		},
		{
			name:  "duration in minutes",
			input: "schedule a standup for 15 minutes",
			want:  model.MeetingParams{Title: "standup", Duration: 15},
		},
		{
			name:  "explicit at-time beats bare clock",
			input: "meet with Sarah at 3:30 pm about 10:00 plans",
			want:  model.MeetingParams{Title: "Sarah", Time: "3:30 pm"},
		},
		{
			name:  "next-week phrase as date",
			input: "schedule a sync next monday",
			want:  model.MeetingParams{Title: "sync", Date: "next monday"},
		},
		{
			name:  "numeric date",
			input: "book the kickoff on 12/05/2024 at 9am",
			want:  model.MeetingParams{Title: "kickoff", Time: "9am", Date: "12/05/2024"},
		},
		{
			name:  "nothing extractable",
			input: "hello there",
			want:  model.MeetingParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Meeting(tt.input)
			if got != tt.want {
				t.Errorf("Meeting(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	e := New()

	tests := []struct {
		name        string
		input       string
		wantTo      string
		wantCC      []string
		wantSubject string
	}{
		{
			name:        "single recipient with subject",
			input:       "Send an email to client@example.com about the project update",
			wantTo:      "client@example.com",
			wantSubject: "the project update",
		},
		{
			name:   "additional addresses become cc",
			input:  "email a@example.com and b@example.com and c@example.com",
			wantTo: "a@example.com",
			wantCC: []string{"b@example.com", "c@example.com"},
		},
		{
			name:        "quoted subject wins over bare tail",
			input:       `email boss@example.com subject "Q3 numbers" and anything else`,
			wantTo:      "boss@example.com",
			wantSubject: "Q3 numbers",
		},
		{
			name:  "no address",
			input: "send a message to my manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Email(tt.input)
			if got.To != tt.wantTo {
				t.Errorf("To = %q, want %q", got.To, tt.wantTo)
			}
			if got.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.wantSubject)
			}
			if len(got.CC) != len(tt.wantCC) {
				t.Fatalf("CC = %v, want %v", got.CC, tt.wantCC)
			}
			for i := range tt.wantCC {
				if got.CC[i] != tt.wantCC[i] {
					t.Errorf("CC[%d] = %q, want %q", i, got.CC[i], tt.wantCC[i])
				}
			}
		})
	}
}

func TestTask(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		input string
		want  model.TaskParams
	}{
		{
			name:  "high priority with weekday due date",
			input: "Create a high priority task to review the budget by Friday",
			want:  model.TaskParams{Title: "review the budget", Priority: "high", DueDate: "Friday"},
		},
		{
			name:  "urgent keyword",
			input: "remind me to call legal asap",
			want:  model.TaskParams{Title: "call legal asap", Priority: "urgent"},
		},
		{
			name:  "low priority",
			input: "add a low priority todo to clean the archive",
			want:  model.TaskParams{Title: "clean the archive", Priority: "low"},
		},
		{
			name:  "default medium",
			input: "create a task to order supplies by tomorrow",
			want:  model.TaskParams{Title: "order supplies", Priority: "medium", DueDate: "tomorrow"},
		},
		{
			name:  "numeric due date",
			input: "task to file taxes before 04/15",
			want:  model.TaskParams{Title: "file taxes", Priority: "medium", DueDate: "04/15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Task(tt.input)
			if got != tt.want {
				t.Errorf("Task(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	e := New()

	tests := []struct {
		input string
		want  string
	}{
		{"am I free today", "today"},
		{"what does next week look like", "next week"},
		{"show my calendar for this month", "this month"},
		{"check my availability", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := e.Search(tt.input)
			if got.TimeRange != tt.want {
				t.Errorf("Search(%q).TimeRange = %q, want %q", tt.input, got.TimeRange, tt.want)
			}
		})
	}
}
