package calendar

import "errors"

var (
	// ErrBlockedDateNotFound is returned when no blocklist entry matches.
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked is returned when the date is already on the blocklist.
	ErrDateAlreadyBlocked = errors.New("date is already blocked")

	// ErrDateInPast is returned when blocking a date that has already passed.
	ErrDateInPast = errors.New("date is in the past")

	// ErrSundayAlwaysClosed is returned when blocking a Sunday, which the
	// weekly closure already covers.
	ErrSundayAlwaysClosed = errors.New("sundays are always closed")

	// ErrAccessDenied is returned when the caller lacks the admin role.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("calendar service: internal error")
)
