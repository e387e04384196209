package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/valtree/dict"
)

var (
	ErrBadDiff  = errors.New("malformed diff")
	ErrConflict = errors.New("diff does not apply")
)

// MakeDiff returns the diff replacing from by to. A nil from makes an
// insertion and a nil to a deletion.
func MakeDiff(from, to *dict.Dict) *dict.Dict {
	switch {
	case from == nil:
		return op(InsertOp, to.Clone())
	case to == nil:
		return op(DeleteOp, from.Clone())
	default:
		return op(ReplaceOp, dict.Object(
			dict.E("from", from.Clone()),
			dict.E("to", to.Clone()),
		))
	}
}

func op(name string, v *dict.Dict) *dict.Dict {
	return dict.Object(dict.E(name, v))
}

func keep(n int) *dict.Dict {
	return op(KeepOp, dict.FromInt(int32(n)))
}

// Op splits a diff into its operation and argument.
func Op(diff *dict.Dict) (string, *dict.Dict, error) {
	if !diff.IsObject() {
		return "", nil, fmt.Errorf("%w: %s is not an Object", ErrBadDiff, diff.Type())
	}
	keys := diff.Keys()
	if len(keys) != 1 {
		return "", nil, fmt.Errorf("%w: %d fields", ErrBadDiff, len(keys))
	}
	arg, _ := diff.Lookup(keys[0])
	return keys[0], arg, nil
}

func replaceArgs(arg *dict.Dict) (*dict.Dict, *dict.Dict, error) {
	from, ok := arg.Lookup("from")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing 'from' under %s", ErrBadDiff, ReplaceOp)
	}
	to, ok := arg.Lookup("to")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing 'to' under %s", ErrBadDiff, ReplaceOp)
	}
	return from, to, nil
}
