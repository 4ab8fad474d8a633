package repository

import (
	"context"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// TaskRepository is the persistence port for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
	// List returns all tasks, newest first.
	List(ctx context.Context) ([]*entity.Task, error)
	// ListAssignedTo returns tasks whose assignee set contains userID.
	ListAssignedTo(ctx context.Context, userID string) ([]*entity.Task, error)
	ListCreatedBy(ctx context.Context, userID string) ([]*entity.Task, error)
	// CountOpenAssignedTo counts non-Done tasks assigned to userID.
	CountOpenAssignedTo(ctx context.Context, userID string) (int, error)
}
