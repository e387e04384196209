package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/valtree/debug"
	"github.com/signadot/valtree/dict"
)

// Patch applies diff to doc and returns the result, leaving doc
// untouched. A nil diff yields a copy of doc. A diff deleting doc yields
// nil.
func Patch(doc, diff *dict.Dict) (*dict.Dict, error) {
	res, err := patch(doc, diff)
	if debug.Diff() {
		debug.Logf("patch %s with %s: %s (%v)\n", doc, diff, res, err)
	}
	return res, err
}

func patch(doc, diff *dict.Dict) (*dict.Dict, error) {
	if diff == nil {
		return doc.Clone(), nil
	}
	name, arg, err := Op(diff)
	if err != nil {
		return nil, err
	}
	switch name {
	case InsertOp:
		if doc != nil && !doc.IsNull() {
			return nil, fmt.Errorf("%w: insert over %s", ErrConflict, doc.Type())
		}
		return arg.Clone(), nil
	case DeleteOp:
		if err := expect(doc, arg); err != nil {
			return nil, err
		}
		return nil, nil
	case ReplaceOp:
		from, to, err := replaceArgs(arg)
		if err != nil {
			return nil, err
		}
		if err := expect(doc, from); err != nil {
			return nil, err
		}
		return to.Clone(), nil
	case ObjectDiffOp:
		return PatchObject(doc, arg)
	case ArrayDiffOp:
		return PatchArrayByIndex(doc, arg)
	case StringDiffOp:
		return PatchString(doc, arg)
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrBadDiff, name)
}

func expect(doc, want *dict.Dict) error {
	if doc == nil || !dict.Equal(doc, want) {
		return fmt.Errorf("%w: unexpected value %s, expected %s", ErrConflict, debug.Dump(doc), debug.Dump(want))
	}
	return nil
}

// PatchObject applies the per-key diffs in fields to the Object doc.
func PatchObject(doc, fields *dict.Dict) (*dict.Dict, error) {
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: %s under %s", ErrConflict, doc.Type(), ObjectDiffOp)
	}
	res := doc.Clone()
	for k, d := range fields.Entries() {
		cur, ok := res.Lookup(k)
		if !ok {
			cur = nil
		}
		v, err := patch(cur, d)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", k, err)
		}
		if v == nil {
			res.RemoveKey(k)
			continue
		}
		res.Set(k, v)
	}
	return res, nil
}

// PatchArrayByIndex applies the edit sequence ops to the Array doc.
func PatchArrayByIndex(doc, ops *dict.Dict) (*dict.Dict, error) {
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: %s under %s", ErrConflict, doc.Type(), ArrayDiffOp)
	}
	docVals := values(doc)
	var res []*dict.Dict
	fi := 0
	for i, o := range ops.Elems() {
		name, arg, err := Op(o)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		switch name {
		case KeepOp:
			n, err := keepCount(arg)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			if fi+n > len(docVals) {
				return nil, fmt.Errorf("%w: op %d keeps %d of %d remaining", ErrConflict, i, n, len(docVals)-fi)
			}
			for _, v := range docVals[fi : fi+n] {
				res = append(res, v.Clone())
			}
			fi += n
		case InsertOp:
			res = append(res, arg.Clone())
		default:
			if fi >= len(docVals) {
				return nil, fmt.Errorf("%w: op %d past end of array", ErrConflict, i)
			}
			v, err := patch(docVals[fi], o)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", fi, err)
			}
			if v != nil {
				res = append(res, v)
			}
			fi++
		}
	}
	res = append(res, cloneAll(docVals[fi:])...)
	return dict.FromSlice(res), nil
}

func cloneAll(vals []*dict.Dict) []*dict.Dict {
	res := make([]*dict.Dict, len(vals))
	for i, v := range vals {
		res[i] = v.Clone()
	}
	return res
}

// PatchString applies the character edits ops to the String doc.
func PatchString(doc, ops *dict.Dict) (*dict.Dict, error) {
	if !doc.IsString() {
		return nil, fmt.Errorf("%w: %s under %s", ErrConflict, doc.Type(), StringDiffOp)
	}
	txt := []rune(doc.MustStr())
	res := strings.Builder{}
	fi := 0
	for i, o := range ops.Elems() {
		name, arg, err := Op(o)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		switch name {
		case KeepOp:
			n, err := keepCount(arg)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			if fi+n > len(txt) {
				return nil, fmt.Errorf("%w: op %d keeps %d of %d remaining", ErrConflict, i, n, len(txt)-fi)
			}
			res.WriteString(string(txt[fi : fi+n]))
			fi += n
		case InsertOp, DeleteOp:
			text, ok := dict.GetAs[string](arg)
			if !ok {
				return nil, fmt.Errorf("%w: op %d has %s text", ErrBadDiff, i, arg.Type())
			}
			if name == InsertOp {
				res.WriteString(text)
				continue
			}
			del := []rune(text)
			if !runesHasPrefix(txt[fi:], del) {
				return nil, fmt.Errorf("%w: unexpected text %q, expected %q", ErrConflict, string(txt[fi:]), string(del))
			}
			fi += len(del)
		default:
			return nil, fmt.Errorf("%w: unexpected %s in %s", ErrBadDiff, name, StringDiffOp)
		}
	}
	res.WriteString(string(txt[fi:]))
	return dict.FromString(res.String()), nil
}

func keepCount(arg *dict.Dict) (int, error) {
	n, ok := dict.GetAs[int32](arg)
	if !ok || n < 0 {
		return 0, fmt.Errorf("%w: bad %s count %s", ErrBadDiff, KeepOp, debug.Dump(arg))
	}
	return int(n), nil
}

func runesHasPrefix(rs, prefix []rune) bool {
	if len(prefix) > len(rs) {
		return false
	}
	for i := range prefix {
		if rs[i] != prefix[i] {
			return false
		}
	}
	return true
}
