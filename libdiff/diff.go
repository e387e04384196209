package libdiff

import (
	"github.com/signadot/valtree/debug"
	"github.com/signadot/valtree/dict"
)

// DiffFunc computes the diff between two values, nil when they are equal.
type DiffFunc func(from, to *dict.Dict) *dict.Dict

// Diff returns the structural diff from from to to, or nil when they are
// equal. Objects diff per key, Arrays by aligning elements and Strings by
// characters; everything else is replaced whole.
func Diff(from, to *dict.Dict) *dict.Dict {
	res := diff(from, to)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %s\n", from, to, res)
	}
	return res
}

func diff(from, to *dict.Dict) *dict.Dict {
	if dict.Equal(from, to) {
		return nil
	}
	if from.Type() != to.Type() {
		return MakeDiff(from, to)
	}
	switch from.Type() {
	case dict.ObjectType:
		return DiffObject(from, to, diff)
	case dict.ArrayType:
		return DiffArrayByIndex(from, to, diff)
	case dict.StringType:
		return DiffString(from, to)
	}
	return MakeDiff(from, to)
}

// DiffObject diffs two Objects key by key using df for keys present in
// both.
func DiffObject(from, to *dict.Dict, df DiffFunc) *dict.Dict {
	var es []dict.Entry
	for _, k := range from.Keys() {
		fv, _ := from.Lookup(k)
		tv, ok := to.Lookup(k)
		if !ok {
			es = append(es, dict.E(k, MakeDiff(fv, nil)))
			continue
		}
		if d := df(fv, tv); d != nil {
			es = append(es, dict.E(k, d))
		}
	}
	for _, k := range to.Keys() {
		if from.Has(k) {
			continue
		}
		tv, _ := to.Lookup(k)
		es = append(es, dict.E(k, MakeDiff(nil, tv)))
	}
	if len(es) == 0 {
		return nil
	}
	return op(ObjectDiffOp, dict.FromEntries(es))
}
