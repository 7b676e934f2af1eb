package source

import "errors"

var (
	// ErrBadPattern indicates a scan glob pattern that cannot be compiled.
	ErrBadPattern = errors.New("invalid scan pattern")
)
