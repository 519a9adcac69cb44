package apperr

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateBranch signals that a user already owns a branch of the
	// same source module.
	ErrDuplicateBranch = errors.New("branch already exists for this module")
)
