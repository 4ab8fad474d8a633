package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supported claim currencies. No conversion is performed anywhere: a claim is
// approved and displayed in its stored currency verbatim.
const (
	CurrencyBDT = "BDT"
	CurrencyUSD = "USD"
)

// Expense categories.
var ClaimCategories = []string{
	"Travel",
	"Food",
	"Accommodation",
	"Entertainment",
	"Office Supplies",
	"Equipment",
	"Other",
}

// ExpenseClaim is a money request moving through the approval chain defined in
// the workflow package. Invariant: RejectionReason is non-empty iff the claim
// status is REJECTED.
type ExpenseClaim struct {
	ID              string
	UserID          string
	ProjectID       string // empty = general expense, not tied to a project
	Title           string
	Amount          decimal.Decimal
	Currency        string
	Category        string
	Description     string
	ReceiptURL      string
	Status          string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidCurrency reports whether c is a supported currency.
func ValidCurrency(c string) bool {
	return c == CurrencyBDT || c == CurrencyUSD
}

// ValidClaimCategory reports whether c is a known category.
func ValidClaimCategory(c string) bool {
	for _, known := range ClaimCategories {
		if c == known {
			return true
		}
	}
	return false
}
