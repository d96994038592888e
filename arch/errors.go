package arch

import "errors"

var (
	// ErrUnknownClass indicates a RegisterClass name not registered with a
	// Description.
	ErrUnknownClass = errors.New("arch: unknown register class")

	// ErrUnknownValue indicates a node with no known register class.
	ErrUnknownValue = errors.New("arch: value has no register class")
)
