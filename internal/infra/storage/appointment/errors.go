package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the lookup.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken is returned when the (date, time) slot already holds an
	// appointment, including the race where a concurrent insert won.
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrCodeCollision is returned when code generation exhausted its retries.
	ErrCodeCollision = errors.New("appointment.repository: could not assign a unique code")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
