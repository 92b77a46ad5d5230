package integrity

import "errors"

var (
	// ErrDuplicateCheckUnavailable means the roster could not be read; the
	// client should show the check as unavailable instead of failing the page.
	ErrDuplicateCheckUnavailable = errors.New("duplicate device check unavailable")
)
