package model

import "time"

// TaskPriority ranks tasks from most to least urgent. Lower value = higher
// priority, matching the task store's #p1..#p4 tag convention.
type TaskPriority int

const (
	PriorityUrgent TaskPriority = 1
	PriorityHigh   TaskPriority = 2
	PriorityMedium TaskPriority = 3
	PriorityLow    TaskPriority = 4
)

// Label returns the human-readable priority name.
func (p TaskPriority) Label() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityLow:
		return "low"
	default:
		return "medium"
	}
}

// TaskStatus is the lifecycle state reported by the task collaborator.
type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "open"
	TaskStatusDone TaskStatus = "done"
)

// Task is a read-only snapshot owned by the task collaborator. The proactive
// orchestrator only reads these; it never mutates task state directly.
type Task struct {
	ID       string
	Title    string
	Priority TaskPriority
	Status   TaskStatus
	DueDate  time.Time // zero value means no due date
	URL      string
}

// Overdue reports whether the task's due date has passed relative to now.
func (t Task) Overdue(now time.Time) bool {
	return t.Status != TaskStatusDone && !t.DueDate.IsZero() && t.DueDate.Before(now)
}
