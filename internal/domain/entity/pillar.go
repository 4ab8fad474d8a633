package entity

import "time"

// ProjectPillar is a weighted category within a project. The weights of a
// project's non-archived pillars must sum to exactly 100 at commit time; this
// is enforced by the use case, not by the store.
//
// Pillars removed during an edit are archived instead of deleted so that tasks
// referencing them stay valid.
type ProjectPillar struct {
	ID        string
	ProjectID string
	Title     string
	Weight    int // percentage
	Archived  bool
	CreatedAt time.Time
}
