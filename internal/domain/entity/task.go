package entity

import "time"

// Task statuses.
const (
	TaskStatusTodo       = "Todo"
	TaskStatusInProgress = "In Progress"
	TaskStatusInReview   = "In Review"
	TaskStatusDone       = "Done"
)

// Task priorities.
const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// Task belongs to a project, optionally to a pillar, and carries a set of
// assignees. AssigneeIDs is the sole source of truth; the legacy singular
// assignee column is folded into it at scan time by the repository.
type Task struct {
	ID          string
	Title       string
	Description string
	ProjectID   string
	PillarID    string // empty = generic task without pillar
	AssigneeIDs []string
	CreatedBy   string
	Status      string
	Priority    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAssignee reports whether userID is in the assignee set.
func (t *Task) HasAssignee(userID string) bool {
	for _, id := range t.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidTaskStatus reports whether s is a defined task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is a defined priority.
func ValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
