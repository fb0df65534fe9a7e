package domain

import "errors"

// Error kinds shared by services, storage and the HTTP layer. Callers
// classify with errors.Is; messages wrap these with context.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrConflict          = errors.New("conflicting concurrent update")
	ErrUnavailable       = errors.New("store unavailable")
)
