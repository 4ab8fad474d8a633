package dto

import "time"

// CreateTaskRequest task input. Assignees must be eligible for the caller
// (direct reports for a Manager, anyone Active for a Super User).
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	ProjectID   string     `json:"project_id" validate:"required,uuid"`
	PillarID    string     `json:"pillar_id" validate:"omitempty,uuid"`
	AssigneeIDs []string   `json:"assignee_ids" validate:"omitempty,dive,uuid"`
	Status      string     `json:"status" validate:"omitempty"`
	Priority    string     `json:"priority" validate:"omitempty"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest editable task fields. The creator is never overwritten.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	PillarID    string     `json:"pillar_id" validate:"omitempty,uuid"`
	AssigneeIDs []string   `json:"assignee_ids" validate:"omitempty,dive,uuid"`
	Status      string     `json:"status" validate:"required"`
	Priority    string     `json:"priority" validate:"required"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse one task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ProjectID   string     `json:"project_id"`
	PillarID    string     `json:"pillar_id,omitempty"`
	AssigneeIDs []string   `json:"assignee_ids"`
	CreatedBy   string     `json:"created_by"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CanEdit     bool       `json:"can_edit"`
	CanDelete   bool       `json:"can_delete"`
}

// AssigneeOption one entry of the task-assignee picker.
type AssigneeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// ProjectOption one entry of the assignable-project picker.
type ProjectOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DashboardSummary headline counters for the landing page.
type DashboardSummary struct {
	ActiveProjects       int `json:"active_projects"`
	MyOpenTasks          int `json:"my_open_tasks"`
	PendingRegistrations int `json:"pending_registrations"`
	ClaimsAwaitingAction int `json:"claims_awaiting_action"`
}
