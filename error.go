package ordhash

import "fmt"

type constError string

// ErrInconsistent is the panic value (wrapped)
// raised when the container detects a broken internal invariant.
// It indicates a bug in this package, not misuse by the caller.
const ErrInconsistent = constError("internal inconsistency")

// ErrInvalidKey is the panic value (wrapped)
// raised when a key cannot be stored, because it is not equal to itself.
const ErrInvalidKey = constError("invalid key")

// ErrCapacity is the panic value (wrapped)
// raised when a capacity hint cannot be represented.
const ErrCapacity = constError("capacity overflow")

func (errStr constError) Error() string { return string(errStr) }

func inconsistent(format string, args ...any) error {
	return fmt.Errorf(
		"%w: "+format,
		append([]any{ErrInconsistent}, args...)...)
}

func invalidKey(key any) error {
	return fmt.Errorf(
		"%w: %v is not equal to itself",
		ErrInvalidKey, key)
}

func capacityOverflow(length, additional int) error {
	return fmt.Errorf(
		"%w: cannot reserve %d more entries beyond %d",
		ErrCapacity, additional, length)
}
