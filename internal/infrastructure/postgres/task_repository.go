package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, title, COALESCE(description, ''), project_id,
	COALESCE(pillar_id::text, ''), COALESCE(assignee_id::text, ''), assignee_ids,
	COALESCE(created_by::text, ''), status, priority, due_date, created_at, updated_at`

// TaskRepo implements the TaskRepository port over PostgreSQL.
//
// The table still carries the legacy singular assignee_id column next to the
// assignee_ids array. The array is the source of truth: writes always target
// the array, and a non-null legacy value on rows never rewritten since the
// migration is folded into AssigneeIDs while scanning.
type TaskRepo struct {
	db querier
}

// NewTaskRepository builds the task persistence adapter.
func NewTaskRepository(db querier) *TaskRepo {
	return &TaskRepo{db: db}
}

// Create persists a new task.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO project_tasks (id, title, description, project_id, pillar_id, assignee_id, assignee_ids, created_by, status, priority, due_date, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, '')::uuid, NULL, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.ProjectID, t.PillarID, assigneeArray(t.AssigneeIDs),
		t.CreatedBy, t.Status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID returns a task by id, or nil when absent.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM project_tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Update rewrites the editable task fields. The legacy assignee column is
// cleared so the array stays the single source of truth.
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE project_tasks SET title = $2, description = NULLIF($3, ''), pillar_id = NULLIF($4, '')::uuid,
			assignee_id = NULL, assignee_ids = $5, status = $6, priority = $7, due_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.PillarID, assigneeArray(t.AssigneeIDs),
		t.Status, t.Priority, t.DueDate, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM project_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// List returns all tasks, newest first.
func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	return r.list(ctx, `SELECT ` + taskColumns + ` FROM project_tasks ORDER BY created_at DESC`)
}

// ListAssignedTo returns tasks whose assignee set (or legacy column)
// contains userID, newest first.
func (r *TaskRepo) ListAssignedTo(ctx context.Context, userID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks
		WHERE assignee_ids @> ARRAY[$1]::uuid[] OR assignee_id = $1
		ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// ListCreatedBy returns tasks created by userID, newest first.
func (r *TaskRepo) ListCreatedBy(ctx context.Context, userID string) ([]*entity.Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM project_tasks WHERE created_by = $1 ORDER BY created_at DESC`, userID)
}

// CountOpenAssignedTo counts non-Done tasks assigned to userID.
func (r *TaskRepo) CountOpenAssignedTo(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM project_tasks
		WHERE (assignee_ids @> ARRAY[$1]::uuid[] OR assignee_id = $1) AND status <> 'Done'`
	var n int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open tasks: %w", err)
	}
	return n, nil
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var legacyAssignee string
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.PillarID, &legacyAssignee,
		&t.AssigneeIDs, &t.CreatedBy, &t.Status, &t.Priority, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// Read-time shim for pre-migration rows: fold the legacy singular
	// assignee into the array.
	if legacyAssignee != "" && !t.HasAssignee(legacyAssignee) {
		t.AssigneeIDs = append(t.AssigneeIDs, legacyAssignee)
	}
	return &t, nil
}

// assigneeArray never passes nil so the NOT NULL array column stays clean.
func assigneeArray(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
