package collaborator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"executive-assistant-ai/internal/model"
	"executive-assistant-ai/pkg/taskstore"
)

// Memo content conventions: first line is the task title, "#p1".."#p4" tags
// mark priority, and a "due:YYYY-MM-DD" token marks the due date.
var (
	priorityTagPattern = regexp.MustCompile(`#p([1-4])\b`)
	dueTokenPattern    = regexp.MustCompile(`\bdue:(\d{4}-\d{2}-\d{2})\b`)
	doneTagPattern     = regexp.MustCompile(`#done\b`)
)

// MemoTasks adapts the Memos-backed task store to the TaskReader interface.
type MemoTasks struct {
	client *taskstore.Client
}

// NewMemoTasks wraps a task store client.
func NewMemoTasks(client *taskstore.Client) *MemoTasks {
	return &MemoTasks{client: client}
}

// ListOpen returns up to limit open tasks parsed from memos.
func (m *MemoTasks) ListOpen(ctx context.Context, limit int) ([]model.Task, error) {
	memos, err := m.client.ListMemos(ctx, "task", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list task memos: %w", err)
	}

	tasks := make([]model.Task, 0, len(memos))
	for _, memo := range memos {
		task := parseMemo(memo)
		if task.Status != model.TaskStatusOpen {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// parseMemo maps a raw memo into a task snapshot.
func parseMemo(memo taskstore.Memo) model.Task {
	task := model.Task{
		ID:       memo.ID,
		Priority: model.PriorityMedium,
		Status:   model.TaskStatusOpen,
		URL:      memo.Name,
	}

	content := strings.TrimSpace(memo.Content)
	if doneTagPattern.MatchString(content) {
		task.Status = model.TaskStatusDone
	}
	if m := priorityTagPattern.FindStringSubmatch(content); m != nil {
		switch m[1] {
		case "1":
			task.Priority = model.PriorityUrgent
		case "2":
			task.Priority = model.PriorityHigh
		case "3":
			task.Priority = model.PriorityMedium
		case "4":
			task.Priority = model.PriorityLow
		}
	}
	if m := dueTokenPattern.FindStringSubmatch(content); m != nil {
		if due, err := time.Parse("2006-01-02", m[1]); err == nil {
			task.DueDate = due
		}
	}

	title := content
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}
	title = priorityTagPattern.ReplaceAllString(title, "")
	title = dueTokenPattern.ReplaceAllString(title, "")
	title = doneTagPattern.ReplaceAllString(title, "")
	task.Title = strings.Join(strings.Fields(title), " ")

	return task
}
