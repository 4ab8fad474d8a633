package entity

import "time"

// Project statuses.
const (
	ProjectStatusActive    = "Active"
	ProjectStatusCompleted = "Completed"
	ProjectStatusOnHold    = "On Hold"
)

// Project is a container for pillars and tasks, owned by its lead.
type Project struct {
	ID             string
	Title          string
	Description    string
	Status         string
	StartDate      *time.Time
	EndDate        *time.Time
	DriveFolderURL string
	LeadID         string
	CreatedAt      time.Time
}
