package access

import "errors"

var (
	// ErrAdminExists is returned when bootstrap runs after an admin was
	// already assigned.
	ErrAdminExists = errors.New("an admin already exists")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("access service: internal error")
)
