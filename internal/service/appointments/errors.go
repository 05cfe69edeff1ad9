package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when the caller lacks the admin role.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned on an unknown repair status.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("appointments service: internal error")
)
