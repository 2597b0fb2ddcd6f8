package model

import "fmt"

// ActionType identifies the downstream operation an Action requests.
type ActionType string

const (
	ActionScheduleMeeting  ActionType = "schedule_meeting"
	ActionSendEmail        ActionType = "send_email"
	ActionCreateTask       ActionType = "create_task"
	ActionSetReminder      ActionType = "set_reminder"
	ActionUpdateCalendar   ActionType = "update_calendar"
	ActionSearchCalendar   ActionType = "search_calendar"
	ActionGenerateBriefing ActionType = "generate_briefing"
)

// Action is a typed, parameterized instruction derived from a request.
// Parameters is a closed set of per-type structs, checked at construction.
type Action struct {
	Type       ActionType   `json:"type"`
	Parameters ActionParams `json:"parameters"`
	Priority   int          `json:"priority"`
}

// ActionParams is implemented by the per-action-type parameter structs.
// Fields left empty by extraction are omitted from the wire form.
type ActionParams interface {
	actionType() ActionType
}

// MeetingParams parameterizes schedule_meeting and update_calendar actions.
type MeetingParams struct {
	Title    string `json:"title,omitempty"`
	Time     string `json:"time,omitempty"`
	Date     string `json:"date,omitempty"`
	Duration int    `json:"duration,omitempty"` // minutes
}

func (MeetingParams) actionType() ActionType { return ActionScheduleMeeting }

// EmailParams parameterizes send_email actions.
type EmailParams struct {
	To      string   `json:"to,omitempty"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject,omitempty"`
}

func (EmailParams) actionType() ActionType { return ActionSendEmail }

// TaskParams parameterizes create_task actions. Priority is always set;
// the extractor defaults it to "medium" when no keyword matches.
type TaskParams struct {
	Title    string `json:"title,omitempty"`
	Priority string `json:"priority,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
}

func (TaskParams) actionType() ActionType { return ActionCreateTask }

// ReminderParams parameterizes set_reminder actions.
type ReminderParams struct {
	Message string `json:"message,omitempty"`
	Time    string `json:"time,omitempty"`
}

func (ReminderParams) actionType() ActionType { return ActionSetReminder }

// SearchParams parameterizes search_calendar actions.
type SearchParams struct {
	TimeRange string `json:"timeRange,omitempty"`
}

func (SearchParams) actionType() ActionType { return ActionSearchCalendar }

// BriefingParams parameterizes generate_briefing actions. It has no fields;
// the briefing window is always the current day.
type BriefingParams struct{}

func (BriefingParams) actionType() ActionType { return ActionGenerateBriefing }

// NewAction builds a validated Action. Priority must be in [1,10] and the
// parameter struct must belong to the action type's family.
func NewAction(t ActionType, params ActionParams, priority int) (Action, error) {
	if priority < 1 || priority > 10 {
		return Action{}, fmt.Errorf("action priority %d out of range [1,10]", priority)
	}
	if params == nil {
		return Action{}, fmt.Errorf("action %s: parameters are required", t)
	}
	if !compatible(t, params) {
		return Action{}, fmt.Errorf("action %s: incompatible parameter type %T", t, params)
	}
	return Action{Type: t, Parameters: params, Priority: priority}, nil
}

// compatible reports whether the parameter struct can serve the action type.
// MeetingParams serve both schedule and calendar-update actions.
func compatible(t ActionType, params ActionParams) bool {
	switch t {
	case ActionScheduleMeeting, ActionUpdateCalendar:
		_, ok := params.(MeetingParams)
		return ok
	case ActionSendEmail:
		_, ok := params.(EmailParams)
		return ok
	case ActionCreateTask:
		_, ok := params.(TaskParams)
		return ok
	case ActionSetReminder:
		_, ok := params.(ReminderParams)
		return ok
	case ActionSearchCalendar:
		_, ok := params.(SearchParams)
		return ok
	case ActionGenerateBriefing:
		_, ok := params.(BriefingParams)
		return ok
	}
	return false
}
