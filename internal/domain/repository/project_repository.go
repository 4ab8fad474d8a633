package repository

import (
	"context"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// ProjectRepository is the persistence port for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, p *entity.Project) error
	List(ctx context.Context) ([]*entity.Project, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Project, error)
}

// PillarRepository is the persistence port for project pillars. Sync of a
// pillar set is per-row on purpose: the store gives per-row atomicity only,
// and the use case reports row-level failures instead of aborting the batch.
type PillarRepository interface {
	Create(ctx context.Context, p *entity.ProjectPillar) error
	Update(ctx context.Context, p *entity.ProjectPillar) error
	// ListByProject returns non-archived pillars for the project.
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectPillar, error)
	// Archive soft-deletes a pillar; tasks referencing it stay valid.
	Archive(ctx context.Context, id string) error
}
