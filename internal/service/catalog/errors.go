package catalog

import "errors"

var (
	// ErrServiceTypeNotFound is returned when no catalog entry matches.
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrDuplicateName is returned when an active entry already uses the name.
	ErrDuplicateName = errors.New("service type name already in use")

	// ErrAccessDenied is returned when the caller lacks the admin role.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("catalog service: internal error")
)
