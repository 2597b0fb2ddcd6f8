package model

import "time"

// AssistantRequest is one inbound natural-language request. It is created per
// call, never mutated, and never persisted beyond the call.
type AssistantRequest struct {
	Input     string
	Context   map[string]interface{}
	UserID    string
	Timestamp time.Time
}

// AssistantResponse is the typed result of interpreting a request.
// Invariants: 0 <= Confidence <= 1 and Actions is never nil.
type AssistantResponse struct {
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Response   string                 `json:"response"`
	Actions    []Action               `json:"actions"`
	Context    map[string]interface{} `json:"context"`
}

// Intent labels assigned by the pipeline.
const (
	IntentScheduleMeeting   = "schedule_meeting"
	IntentSendEmail         = "send_email"
	IntentCreateTask        = "create_task"
	IntentCheckAvailability = "check_availability"
	IntentGeneral           = "general"
)
