package repository

import (
	"context"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// UserRepository is the persistence port for users and registration requests.
// The implementation lives in infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListByStatus returns users in the given status, newest first.
	ListByStatus(ctx context.Context, status string) ([]*entity.User, error)
	// ListActiveByRoles returns Active users holding any of the given roles,
	// ordered by full name (registration form's manager dropdown).
	ListActiveByRoles(ctx context.Context, roles ...string) ([]*entity.User, error)
	// ListActiveReportsOf returns Active users whose line manager is managerID.
	ListActiveReportsOf(ctx context.Context, managerID string) ([]*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	// DecideStatusIf atomically moves the user from expectedStatus to
	// newStatus, optionally overriding the role. Returns false when the row
	// was not in expectedStatus (lost race or already decided).
	DecideStatusIf(ctx context.Context, id, expectedStatus, newStatus string, overrideRole string) (bool, error)
	TouchLastLogin(ctx context.Context, id string) error
}
