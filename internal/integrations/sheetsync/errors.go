package sheetsync

import "errors"

var (
	// ErrInternal is returned on client-side failures (request build, transport).
	ErrInternal = errors.New("sheetsync client: internal error")

	// ErrInvalidResponse is returned when the webhook answers with an
	// unexpected status code.
	ErrInvalidResponse = errors.New("sheetsync client: invalid response")
)
