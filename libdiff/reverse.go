package libdiff

import (
	"fmt"

	"github.com/signadot/valtree/dict"
)

// Reverse returns the diff undoing diff.
func Reverse(diff *dict.Dict) (*dict.Dict, error) {
	if diff == nil {
		return nil, nil
	}
	name, arg, err := Op(diff)
	if err != nil {
		return nil, err
	}
	switch name {
	case DeleteOp:
		return op(InsertOp, arg.Clone()), nil
	case InsertOp:
		return op(DeleteOp, arg.Clone()), nil
	case KeepOp:
		return diff.Clone(), nil
	case ReplaceOp:
		from, to, err := replaceArgs(arg)
		if err != nil {
			return nil, err
		}
		return MakeDiff(to, from), nil
	case ObjectDiffOp:
		var es []dict.Entry
		for k, d := range arg.Entries() {
			r, err := Reverse(d)
			if err != nil {
				return nil, fmt.Errorf("at %q: %w", k, err)
			}
			es = append(es, dict.E(k, r))
		}
		return op(ObjectDiffOp, dict.FromEntries(es)), nil
	case ArrayDiffOp, StringDiffOp:
		var ops []*dict.Dict
		for i, d := range arg.Elems() {
			r, err := Reverse(d)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			ops = append(ops, r)
		}
		return op(name, dict.FromSlice(ops)), nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrBadDiff, name)
}
