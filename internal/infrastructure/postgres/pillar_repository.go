package postgres

import (
	"context"
	"fmt"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

var _ repository.PillarRepository = (*PillarRepo)(nil)

// PillarRepo implements the PillarRepository port over PostgreSQL.
type PillarRepo struct {
	db querier
}

// NewPillarRepository builds the pillar persistence adapter.
func NewPillarRepository(db querier) *PillarRepo {
	return &PillarRepo{db: db}
}

// Create persists a new pillar.
func (r *PillarRepo) Create(ctx context.Context, p *entity.ProjectPillar) error {
	query := `
		INSERT INTO project_pillars (id, project_id, title, weight, archived, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)`
	_, err := r.db.Exec(ctx, query, p.ID, p.ProjectID, p.Title, p.Weight, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pillar: %w", err)
	}
	return nil
}

// Update rewrites title and weight.
func (r *PillarRepo) Update(ctx context.Context, p *entity.ProjectPillar) error {
	_, err := r.db.Exec(ctx, `UPDATE project_pillars SET title = $2, weight = $3 WHERE id = $1`, p.ID, p.Title, p.Weight)
	if err != nil {
		return fmt.Errorf("update pillar: %w", err)
	}
	return nil
}

// ListByProject returns the project's non-archived pillars, by title.
func (r *PillarRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectPillar, error) {
	query := `
		SELECT id, project_id, title, weight, archived, created_at
		FROM project_pillars WHERE project_id = $1 AND NOT archived ORDER BY title`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list pillars: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectPillar
	for rows.Next() {
		var p entity.ProjectPillar
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Title, &p.Weight, &p.Archived, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pillar: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Archive soft-deletes a pillar. Tasks keep their pillar reference.
func (r *PillarRepo) Archive(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE project_pillars SET archived = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("archive pillar: %w", err)
	}
	return nil
}
