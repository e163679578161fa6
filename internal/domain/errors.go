package domain

import "errors"

// Domain errors (no external dependencies). Repositories and use cases return
// these wrapped; the HTTP layer maps them to status codes.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateName = errors.New("name already in use")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict with current state")
	ErrUnavailable   = errors.New("storage backend unavailable")
)
