package dto

import "time"

// PillarInput one pillar in a create/sync payload. ID empty means a new
// pillar; a set ID updates the existing row.
type PillarInput struct {
	ID     string `json:"id" validate:"omitempty,uuid"`
	Title  string `json:"title" validate:"required,max=200"`
	Weight int    `json:"weight" validate:"required,min=1,max=100"`
}

// CreateProjectRequest project input. When Pillars is empty the default
// pillar template is applied.
type CreateProjectRequest struct {
	Title          string        `json:"title" validate:"required,max=200"`
	Description    string        `json:"description" validate:"omitempty"`
	StartDate      *time.Time    `json:"start_date"`
	EndDate        *time.Time    `json:"end_date"`
	DriveFolderURL string        `json:"drive_folder_url" validate:"omitempty,url"`
	Pillars        []PillarInput `json:"pillars" validate:"omitempty,dive"`
}

// UpdateProjectRequest editable project fields.
type UpdateProjectRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description"`
	Status         string     `json:"status" validate:"required"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	DriveFolderURL string     `json:"drive_folder_url"`
}

// SyncPillarsRequest full replacement set for a project's pillars. Existing
// pillars missing from the set are archived, not deleted.
type SyncPillarsRequest struct {
	Pillars []PillarInput `json:"pillars" validate:"required,min=1,dive"`
}

// PillarSyncResult per-row outcome of a pillar sync.
type PillarSyncResult struct {
	Synced   int        `json:"synced"`
	Archived int        `json:"archived"`
	Failed   []RowError `json:"failed,omitempty"`
}

// PillarResponse one pillar.
type PillarResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Weight int    `json:"weight"`
}

// ProjectResponse one project with its non-archived pillars.
type ProjectResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Status         string           `json:"status"`
	StartDate      *time.Time       `json:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	DriveFolderURL string           `json:"drive_folder_url,omitempty"`
	LeadID         string           `json:"lead_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Pillars        []PillarResponse `json:"pillars,omitempty"`
}
