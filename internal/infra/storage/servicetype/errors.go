package servicetype

import "errors"

var (
	// ErrServiceTypeNotFound is returned when no catalog entry matches.
	ErrServiceTypeNotFound = errors.New("servicetype.repository: service type not found")

	// ErrDuplicateName is returned when an active entry with the same name exists.
	ErrDuplicateName = errors.New("servicetype.repository: duplicate service type name")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("servicetype.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("servicetype.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("servicetype.repository: failed to scan row")
)
