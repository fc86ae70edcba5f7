package rebind

import "errors"

// Errors returned by construction.
var (
	// ErrInvalidSize indicates a non-positive viewport dimension.
	ErrInvalidSize = errors.New("viewport dimensions must be positive")
)
