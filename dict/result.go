package dict

// Result is the outcome of a fallible operation. Expected conditions such
// as a lookup miss or a wrong-type read are reported as a Result rather
// than as a panic.
type Result int

const (
	OK Result = iota
	OKReplaced
	NotFound
	NotSupported
	OutOfRange
	InvalidInput
	HashError
)

func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case OKReplaced:
		return "ok (replaced)"
	case NotFound:
		return "not found"
	case NotSupported:
		return "not supported"
	case OutOfRange:
		return "out of range"
	case InvalidInput:
		return "invalid input"
	case HashError:
		return "hash error"
	}
	return "<unknown result>"
}

// Ok reports whether r is OK or OKReplaced.
func (r Result) Ok() bool {
	return r == OK || r == OKReplaced
}

// Err returns nil for successful results and the matching sentinel error
// otherwise.
func (r Result) Err() error {
	switch r {
	case OK, OKReplaced:
		return nil
	case NotFound:
		return ErrNotFound
	case NotSupported:
		return ErrNotSupported
	case OutOfRange:
		return ErrOutOfRange
	case InvalidInput:
		return ErrInvalidInput
	case HashError:
		return ErrHashError
	}
	return errInternal
}
