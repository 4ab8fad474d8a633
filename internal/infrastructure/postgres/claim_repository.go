package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
)

var _ repository.ClaimRepository = (*ClaimRepo)(nil)

const claimColumns = `id, user_id, COALESCE(project_id::text, ''), title, amount, currency, category,
	COALESCE(description, ''), COALESCE(receipt_url, ''), status, COALESCE(rejection_reason, ''),
	created_at, updated_at`

// ClaimRepo implements the ClaimRepository port over PostgreSQL. Both status
// mutations are conditional updates keyed on the expected current status, so
// concurrent approvers cannot both commit a decision.
type ClaimRepo struct {
	db querier
}

// NewClaimRepository builds the claim persistence adapter.
func NewClaimRepository(db querier) *ClaimRepo {
	return &ClaimRepo{db: db}
}

// Create persists a new claim.
func (r *ClaimRepo) Create(ctx context.Context, c *entity.ExpenseClaim) error {
	query := `
		INSERT INTO expense_claims (id, user_id, project_id, title, amount, currency, category, description, receipt_url, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.ProjectID, c.Title, c.Amount, c.Currency, c.Category,
		c.Description, c.ReceiptURL, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// GetByID returns a claim by id, or nil when absent.
func (r *ClaimRepo) GetByID(ctx context.Context, id string) (*entity.ExpenseClaim, error) {
	row := r.db.QueryRow(ctx, `SELECT `+claimColumns+` FROM expense_claims WHERE id = $1`, id)
	c, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

// ListByOwner returns the owner's claims, newest first.
func (r *ClaimRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.ExpenseClaim, error) {
	return r.list(ctx, `SELECT `+claimColumns+` FROM expense_claims WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListPendingNotOwnedBy returns pending-stage claims not owned by userID,
// newest first.
func (r *ClaimRepo) ListPendingNotOwnedBy(ctx context.Context, userID string) ([]*entity.ExpenseClaim, error) {
	query := `SELECT ` + claimColumns + ` FROM expense_claims
		WHERE user_id <> $1 AND status IN ('PENDING_MANAGER', 'PENDING_FINANCE', 'PENDING_SUPERUSER')
		ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// AdvanceStatusIf moves the claim from expectedStatus to newStatus, returning
// false when the row was no longer in expectedStatus.
func (r *ClaimRepo) AdvanceStatusIf(ctx context.Context, id, expectedStatus, newStatus string) (bool, error) {
	query := `UPDATE expense_claims SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, expectedStatus, newStatus)
	if err != nil {
		return false, fmt.Errorf("advance claim: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RejectIf rejects the claim with the reason, returning false when the row
// was no longer in expectedStatus.
func (r *ClaimRepo) RejectIf(ctx context.Context, id, expectedStatus, reason string) (bool, error) {
	query := `
		UPDATE expense_claims SET status = 'REJECTED', rejection_reason = $3, updated_at = now()
		WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, expectedStatus, reason)
	if err != nil {
		return false, fmt.Errorf("reject claim: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ClaimRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ExpenseClaim, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseClaim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClaim(row pgx.Row) (*entity.ExpenseClaim, error) {
	var c entity.ExpenseClaim
	if err := row.Scan(
		&c.ID, &c.UserID, &c.ProjectID, &c.Title, &c.Amount, &c.Currency, &c.Category,
		&c.Description, &c.ReceiptURL, &c.Status, &c.RejectionReason,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
