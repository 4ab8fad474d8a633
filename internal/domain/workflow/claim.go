// Package workflow defines the approval state machines as explicit transition
// tables over typed statuses. Every status change in the system goes through
// one of the functions here; nothing else computes a target status.
package workflow

import (
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/authz"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// ClaimStatus is the lifecycle state of an expense claim.
type ClaimStatus string

const (
	// ClaimDraft exists in stored data but no flow produces or consumes it;
	// it is never a valid source for Advance or Reject.
	ClaimDraft            ClaimStatus = "DRAFT"
	ClaimPendingManager   ClaimStatus = "PENDING_MANAGER"
	ClaimPendingFinance   ClaimStatus = "PENDING_FINANCE"
	ClaimPendingSuperuser ClaimStatus = "PENDING_SUPERUSER"
	ClaimApproved         ClaimStatus = "APPROVED"
	ClaimRejected         ClaimStatus = "REJECTED"
)

var validClaimStatuses = map[ClaimStatus]bool{
	ClaimDraft:            true,
	ClaimPendingManager:   true,
	ClaimPendingFinance:   true,
	ClaimPendingSuperuser: true,
	ClaimApproved:         true,
	ClaimRejected:         true,
}

var terminalClaimStatuses = map[ClaimStatus]bool{
	ClaimApproved: true,
	ClaimRejected: true,
}

// claimTransitions is the forward chain. Statuses absent from the map have no
// outgoing approval transition.
var claimTransitions = map[ClaimStatus]ClaimStatus{
	ClaimPendingManager:   ClaimPendingFinance,
	ClaimPendingFinance:   ClaimPendingSuperuser,
	ClaimPendingSuperuser: ClaimApproved,
}

// IsValid reports whether s is a defined claim status.
func (s ClaimStatus) IsValid() bool { return validClaimStatuses[s] }

// IsTerminal reports whether no further transition is defined from s.
func (s ClaimStatus) IsTerminal() bool { return terminalClaimStatuses[s] }

// IsPending reports whether s is one of the Pending* stages.
func (s ClaimStatus) IsPending() bool {
	_, ok := claimTransitions[s]
	return ok
}

func (s ClaimStatus) String() string { return string(s) }

// InitialClaimStatus computes the entry point of the chain from the owner's
// role. Manager and Super User claims skip the line-manager gate and start at
// finance review; everyone else starts at manager review.
func InitialClaimStatus(ownerRole string) ClaimStatus {
	if ownerRole == entity.RoleManager || ownerRole == entity.RoleSuperUser {
		return ClaimPendingFinance
	}
	return ClaimPendingManager
}

// NextClaimStatus returns the status an approval moves the claim to, or
// ErrInvalidTransition when current has no outgoing approval transition
// (terminal statuses and the dead Draft state included).
func NextClaimStatus(current ClaimStatus) (ClaimStatus, error) {
	next, ok := claimTransitions[current]
	if !ok {
		return "", domain.ErrInvalidTransition
	}
	return next, nil
}

// CanApproveClaimAt reports whether approver holds the capability required at
// the claim's current stage. Ownership is checked separately by the use case.
func CanApproveClaimAt(status ClaimStatus, approver *entity.User) bool {
	switch status {
	case ClaimPendingManager, ClaimPendingFinance:
		return authz.IsFinanceApprover(approver)
	case ClaimPendingSuperuser:
		return authz.IsSuperUser(approver)
	default:
		return false
	}
}

// CanRejectClaimAt reports whether approver may reject at the claim's current
// stage. Rejection is valid from any pending stage, by anyone allowed to act
// at that stage.
func CanRejectClaimAt(status ClaimStatus, approver *entity.User) bool {
	return status.IsPending() && CanApproveClaimAt(status, approver)
}
