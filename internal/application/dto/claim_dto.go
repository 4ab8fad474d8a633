package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClaimRequest expense claim input. ProjectID empty means a general
// expense. The initial status is computed from the owner's role, never taken
// from the client.
type CreateClaimRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency" validate:"required,oneof=BDT USD"`
	Category    string          `json:"category" validate:"required"`
	ProjectID   string          `json:"project_id" validate:"omitempty,uuid"`
	Description string          `json:"description" validate:"omitempty"`
	ReceiptURL  string          `json:"receipt_url" validate:"omitempty,url"`
}

// RejectClaimRequest rejection input; the reason is mandatory.
type RejectClaimRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ClaimResponse one expense claim.
type ClaimResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	OwnerName       string          `json:"owner_name,omitempty"`
	ProjectID       string          `json:"project_id,omitempty"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	ReceiptURL      string          `json:"receipt_url,omitempty"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
