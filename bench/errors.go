package bench

import "errors"

var (
	// ErrBadConfig indicates an invalid Config value.
	ErrBadConfig = errors.New("bench: invalid config")
	// ErrClosed indicates a write to a closed sink.
	ErrClosed = errors.New("bench: sink closed")
)
