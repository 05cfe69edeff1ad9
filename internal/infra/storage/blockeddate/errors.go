package blockeddate

import "errors"

var (
	// ErrBlockedDateNotFound is returned when no blocklist entry matches.
	ErrBlockedDateNotFound = errors.New("blockeddate.repository: blocked date not found")

	// ErrDuplicateDate is returned when the date is already blocked.
	ErrDuplicateDate = errors.New("blockeddate.repository: date already blocked")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("blockeddate.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("blockeddate.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("blockeddate.repository: failed to scan row")
)
