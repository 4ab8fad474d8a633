// Package approval contains the two approval engines: user-registration
// decisions and the expense-claim chain. Both read the current status, compute
// the target through the workflow tables, and commit with a compare-and-swap
// so two approvers racing on the same row cannot both win.
package approval

import (
	"context"
	"fmt"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/auth"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/dto"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/authz"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/repository"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/workflow"
)

// RegistrationUseCase pending-account review.
type RegistrationUseCase struct {
	userRepo repository.UserRepository
}

// NewRegistrationUseCase builds the registration approval engine.
func NewRegistrationUseCase(userRepo repository.UserRepository) *RegistrationUseCase {
	return &RegistrationUseCase{userRepo: userRepo}
}

// ListPending returns the pending registrations the caller may decide: all of
// them for a Super User, only direct reports for any other manager-tier user.
// The same predicate gates Decide, so visibility and authority cannot drift.
func (uc *RegistrationUseCase) ListPending(ctx context.Context, callerID string) ([]dto.UserResponse, error) {
	caller, err := uc.loadCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !authz.IsManagerTier(caller) {
		return nil, domain.ErrUnauthorized
	}
	pending, err := uc.userRepo.ListByStatus(ctx, entity.UserStatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(pending))
	for _, u := range pending {
		if !authz.CanDecideRegistration(caller, u) {
			continue
		}
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Decide approves or rejects a pending registration. Approval sets the
// account Active, keeping the requester's self-selected role unless
// overrideRole is given; rejection sets Rejected and records no reason.
// A request that is no longer Pending fails with ErrInvalidTransition, even
// when the losing caller raced a concurrent approver.
func (uc *RegistrationUseCase) Decide(ctx context.Context, callerID, requestID string, decision workflow.RegistrationDecision, overrideRole string) (*dto.UserResponse, error) {
	caller, err := uc.loadCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	requester, err := uc.userRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanDecideRegistration(caller, requester) {
		return nil, domain.ErrUnauthorized
	}

	newStatus, err := workflow.DecideRegistration(requester.Status, decision)
	if err != nil {
		return nil, err
	}

	role := ""
	if decision == workflow.RegistrationApprove && overrideRole != "" {
		if !entity.ValidRole(overrideRole) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, overrideRole)
		}
		role = overrideRole
	}

	swapped, err := uc.userRepo.DecideStatusIf(ctx, requester.ID, entity.UserStatusPending, newStatus, role)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// Another approver got there first.
		return nil, domain.ErrInvalidTransition
	}

	decided, err := uc.userRepo.GetByID(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(decided), nil
}

func (uc *RegistrationUseCase) loadCaller(ctx context.Context, callerID string) (*entity.User, error) {
	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil || caller.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return caller, nil
}
