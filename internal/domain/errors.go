package domain

import "errors"

// Business-rule errors (no external dependencies). Use cases return these as
// first-class outcomes; handlers map them to HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrAccountPending     = errors.New("account is pending approval")
	ErrAccountRejected    = errors.New("account has been rejected")
	ErrAccountInactive    = errors.New("account is inactive")
)
