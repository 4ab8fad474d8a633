package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, title, COALESCE(description, ''), status, start_date, end_date,
	COALESCE(drive_folder_url, ''), COALESCE(lead_id::text, ''), created_at`

// ProjectRepo implements the ProjectRepository port over PostgreSQL.
type ProjectRepo struct {
	db querier
}

// NewProjectRepository builds the project persistence adapter.
func NewProjectRepository(db querier) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create persists a new project.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, title, description, status, start_date, end_date, drive_folder_url, lead_id, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, '')::uuid, $9)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Status, p.StartDate, p.EndDate, p.DriveFolderURL, p.LeadID, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID returns a project by id, or nil when absent.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var p entity.Project
	err := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Status, &p.StartDate, &p.EndDate,
		&p.DriveFolderURL, &p.LeadID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Update rewrites the editable project fields.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET title = $2, description = NULLIF($3, ''), status = $4,
			start_date = $5, end_date = $6, drive_folder_url = NULLIF($7, '')
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Status, p.StartDate, p.EndDate, p.DriveFolderURL,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]*entity.Project, error) {
	return r.list(ctx, `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`)
}

// ListByStatus returns projects in the given status, by title.
func (r *ProjectRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE status = $1 ORDER BY title`, status)
}

func (r *ProjectRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Status, &p.StartDate, &p.EndDate,
			&p.DriveFolderURL, &p.LeadID, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
