package mqcoder

import "errors"

var (
	// ErrInvalidMarker is returned by decode operations when a 0xFF-prefixed
	// byte with a disallowed successor (> 0x8F) appears before the stream
	// end, signalling a marker or corrupt data inside what must be a pure
	// MQ segment.
	ErrInvalidMarker = errors.New("mqcoder: invalid marker in stream")

	// ErrNoContexts is returned by the context-mode operations when the
	// Coder was constructed with zero contexts.
	ErrNoContexts = errors.New("mqcoder: coder has no contexts")

	// ErrContextOutOfRange is returned when a context index falls outside
	// [0, N) for a Coder constructed with N contexts.
	ErrContextOutOfRange = errors.New("mqcoder: context index out of range")
)
