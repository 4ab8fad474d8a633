package workflow

import (
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
)

// RegistrationDecision is the outcome of a pending-registration review.
type RegistrationDecision string

const (
	RegistrationApprove RegistrationDecision = "approve"
	RegistrationReject  RegistrationDecision = "reject"
)

// DecideRegistration maps a decision on a Pending account to its target
// status. Any other current status is terminal for registration purposes:
// re-deciding an already-processed request fails with ErrInvalidTransition
// rather than silently overwriting (double-click hardening).
func DecideRegistration(currentStatus string, decision RegistrationDecision) (string, error) {
	if currentStatus != entity.UserStatusPending {
		return "", domain.ErrInvalidTransition
	}
	switch decision {
	case RegistrationApprove:
		return entity.UserStatusActive, nil
	case RegistrationReject:
		return entity.UserStatusRejected, nil
	default:
		return "", domain.ErrValidation
	}
}
