package dict

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal error")

	ErrNotFound     = errors.New("not found")
	ErrNotSupported = errors.New("not supported")
	ErrOutOfRange   = errors.New("out of range")
	ErrInvalidInput = errors.New("invalid input")
	ErrHashError    = errors.New("hash error")
)

// Error is the panic value used for contract violations, such as a
// numeric read of a string or a strict index past the end of an array.
type Error struct {
	Op   string
	Type Type
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("dict: %s on %s: %v", e.Op, e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MaxDepth bounds the nesting followed by the recursive operations
// Compare, Hash, Clone and Any. Deeper values, including values that
// contain themselves, make them panic with ErrInvalidInput.
const MaxDepth = 10000

func checkDepth(op string, t Type, depth int) {
	if depth > MaxDepth {
		failf(op, t, ErrInvalidInput, "nesting deeper than %d", MaxDepth)
	}
}

func fail(op string, t Type, err error) {
	panic(&Error{Op: op, Type: t, Err: err})
}

func failf(op string, t Type, err error, format string, args ...any) {
	panic(&Error{Op: op, Type: t, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)})
}
