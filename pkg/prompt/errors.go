package prompt

import "errors"

var (
	// ErrAborted signals the operator aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnsupportedKind is returned for questions of an unknown kind.
	ErrUnsupportedKind = errors.New("prompt: unsupported question kind")
)
