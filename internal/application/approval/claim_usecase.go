package approval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/workflow"
)

// ClaimUseCase the expense-claim approval chain.
type ClaimUseCase struct {
	claimRepo   repository.ClaimRepository
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
}

// NewClaimUseCase builds the claim approval engine.
func NewClaimUseCase(claimRepo repository.ClaimRepository, userRepo repository.UserRepository, projectRepo repository.ProjectRepository) *ClaimUseCase {
	return &ClaimUseCase{claimRepo: claimRepo, userRepo: userRepo, projectRepo: projectRepo}
}

// Create submits a new claim. The entry stage of the chain is computed once
// here from the owner's role: Manager and Super User claims skip straight to
// finance review.
func (uc *ClaimUseCase) Create(ctx context.Context, ownerID string, in dto.CreateClaimRequest) (*dto.ClaimResponse, error) {
	owner, err := uc.loadActive(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, in.Currency)
	}
	if !entity.ValidClaimCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	if in.ProjectID != "" {
		project, err := uc.projectRepo.GetByID(ctx, in.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	claim := &entity.ExpenseClaim{
		ID:          uuid.New().String(),
		UserID:      owner.ID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Category:    in.Category,
		Description: in.Description,
		ReceiptURL:  in.ReceiptURL,
		Status:      workflow.InitialClaimStatus(owner.Role).String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}
	return toClaimResponse(claim, owner.FullName), nil
}

// ListMine returns the caller's own claims.
func (uc *ClaimUseCase) ListMine(ctx context.Context, callerID string) ([]dto.ClaimResponse, error) {
	if _, err := uc.loadActive(ctx, callerID); err != nil {
		return nil, err
	}
	claims, err := uc.claimRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, *toClaimResponse(c, ""))
	}
	return out, nil
}

// ListAwaitingAction returns claims the caller can act on right now: not their
// own, non-terminal, and where the caller holds the capability required at the
// claim's current stage. The filter is per row: holding an approver role is
// not enough when the claim sits at a stage the caller cannot act on.
func (uc *ClaimUseCase) ListAwaitingAction(ctx context.Context, callerID string) ([]dto.ClaimResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	claims, err := uc.claimRepo.ListPendingNotOwnedBy(ctx, callerID)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		if !workflow.CanApproveClaimAt(workflow.ClaimStatus(c.Status), caller) {
			continue
		}
		name, ok := names[c.UserID]
		if !ok {
			if owner, err := uc.userRepo.GetByID(ctx, c.UserID); err == nil && owner != nil {
				name = owner.FullName
			}
			names[c.UserID] = name
		}
		out = append(out, *toClaimResponse(c, name))
	}
	return out, nil
}

// Advance moves a claim one step forward in the chain. The approver must not
// own the claim and must hold the capability required at the claim's current
// stage. The commit is a compare-and-swap on that stage; a concurrent decision
// surfaces as ErrInvalidTransition.
func (uc *ClaimUseCase) Advance(ctx context.Context, callerID, claimID string) (*dto.ClaimResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	claim, err := uc.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.ErrNotFound
	}
	if claim.UserID == caller.ID {
		// No self-approval, regardless of role.
		return nil, domain.ErrUnauthorized
	}

	current := workflow.ClaimStatus(claim.Status)
	next, err := workflow.NextClaimStatus(current)
	if err != nil {
		return nil, err
	}
	if !workflow.CanApproveClaimAt(current, caller) {
		return nil, domain.ErrUnauthorized
	}

	swapped, err := uc.claimRepo.AdvanceStatusIf(ctx, claim.ID, current.String(), next.String())
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, domain.ErrInvalidTransition
	}

	return uc.reload(ctx, claim.ID)
}

// Reject terminates a claim from any pending stage, recording the mandatory
// reason. Same ownership, capability, and compare-and-swap rules as Advance.
func (uc *ClaimUseCase) Reject(ctx context.Context, callerID, claimID, reason string) (*dto.ClaimResponse, error) {
	caller, err := uc.loadActive(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}
	claim, err := uc.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.ErrNotFound
	}
	if claim.UserID == caller.ID {
		return nil, domain.ErrUnauthorized
	}

	current := workflow.ClaimStatus(claim.Status)
	if !current.IsPending() {
		return nil, domain.ErrInvalidTransition
	}
	if !workflow.CanRejectClaimAt(current, caller) {
		return nil, domain.ErrUnauthorized
	}

	swapped, err := uc.claimRepo.RejectIf(ctx, claim.ID, current.String(), reason)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, domain.ErrInvalidTransition
	}

	return uc.reload(ctx, claim.ID)
}

func (uc *ClaimUseCase) reload(ctx context.Context, claimID string) (*dto.ClaimResponse, error) {
	claim, err := uc.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.ErrNotFound
	}
	return toClaimResponse(claim, ""), nil
}

func (uc *ClaimUseCase) loadActive(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func toClaimResponse(c *entity.ExpenseClaim, ownerName string) *dto.ClaimResponse {
	return &dto.ClaimResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		OwnerName:       ownerName,
		ProjectID:       c.ProjectID,
		Title:           c.Title,
		Amount:          c.Amount,
		Currency:        c.Currency,
		Category:        c.Category,
		Description:     c.Description,
		ReceiptURL:      c.ReceiptURL,
		Status:          c.Status,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
