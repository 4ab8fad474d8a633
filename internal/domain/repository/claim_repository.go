package repository

import (
	"context"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// ClaimRepository is the persistence port for expense claims.
type ClaimRepository interface {
	Create(ctx context.Context, c *entity.ExpenseClaim) error
	GetByID(ctx context.Context, id string) (*entity.ExpenseClaim, error)
	// ListByOwner returns the owner's claims, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*entity.ExpenseClaim, error)
	// ListPendingNotOwnedBy returns claims in any Pending* status not owned by
	// userID, newest first. Per-stage capability filtering happens in the use
	// case; this is only the coarse store-side cut.
	ListPendingNotOwnedBy(ctx context.Context, userID string) ([]*entity.ExpenseClaim, error)
	// AdvanceStatusIf atomically moves the claim from expectedStatus to
	// newStatus. Returns false when the row was not in expectedStatus.
	AdvanceStatusIf(ctx context.Context, id, expectedStatus, newStatus string) (bool, error)
	// RejectIf atomically rejects the claim, recording the reason, provided it
	// is still in expectedStatus.
	RejectIf(ctx context.Context, id, expectedStatus, reason string) (bool, error)
}
