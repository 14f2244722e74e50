package service

import "errors"

// Expected outcomes of the ledger operations. Handlers map these to HTTP
// status codes with errors.Is; none of them is ever a crash.
var (
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("entry already finalized")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrInvalidInput      = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)
