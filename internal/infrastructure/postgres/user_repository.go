package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, full_name, role,
	COALESCE(department, ''), COALESCE(phone, ''), status,
	COALESCE(line_manager_id::text, ''), created_at, last_login`

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository builds the user persistence adapter. It accepts the pool
// or a transaction.
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persists a new user.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, department, phone, status, line_manager_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, NULLIF($9, '')::uuid, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.Department, user.Phone, user.Status, user.LineManagerID, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID returns a user by id, or nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail returns a user by email, or nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// ListByStatus returns users in the given status, newest first.
func (r *UserRepo) ListByStatus(ctx context.Context, status string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE status = $1 ORDER BY created_at DESC`, status)
}

// ListActiveByRoles returns Active users holding any of the roles, by name.
func (r *UserRepo) ListActiveByRoles(ctx context.Context, roles ...string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE status = 'Active' AND role = ANY($1) ORDER BY full_name`, roles)
}

// ListActiveReportsOf returns Active direct reports of managerID, by name.
func (r *UserRepo) ListActiveReportsOf(ctx context.Context, managerID string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE status = 'Active' AND line_manager_id = $1 ORDER BY full_name`, managerID)
}

// ListActive returns all Active users, by name.
func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, `SELECT ` + userColumns + ` FROM users WHERE status = 'Active' ORDER BY full_name`)
}

// DecideStatusIf is the compare-and-swap behind registration decisions: the
// row moves from expectedStatus to newStatus (optionally with a new role)
// only if nobody decided it first.
func (r *UserRepo) DecideStatusIf(ctx context.Context, id, expectedStatus, newStatus string, overrideRole string) (bool, error) {
	query := `
		UPDATE users SET status = $3, role = COALESCE(NULLIF($4, ''), role)
		WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, expectedStatus, newStatus, overrideRole)
	if err != nil {
		return false, fmt.Errorf("decide user status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TouchLastLogin stamps last_login with now().
func (r *UserRepo) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch last_login: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.Department, &u.Phone, &u.Status, &u.LineManagerID, &u.CreatedAt, &u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
			&u.Department, &u.Phone, &u.Status, &u.LineManagerID, &u.CreatedAt, &u.LastLogin,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
