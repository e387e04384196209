package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/valtree/dict"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the elements of two Arrays and returns the
// sequence of edits turning from into to.
//
//  1. summarize each element as a rune: scalars by type and value,
//     containers by type alone
//  2. diff the rune sequences
//  3. aligned elements are diffed with df, so containers of the same
//     type recurse
//  4. runs of unchanged elements collapse into a single !keep
func DiffArrayByIndex(from, to *dict.Dict, df DiffFunc) *dict.Dict {
	fromVals, toVals := values(from), values(to)
	m := map[string]rune{}
	fromRunes := mapValues(m, fromVals)
	toRunes := mapValues(m, toVals)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var ops []*dict.Dict
	kept := 0
	flush := func() {
		if kept > 0 {
			ops = append(ops, keep(kept))
			kept = 0
		}
	}
	changed := false
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			flush()
			for range n {
				ops = append(ops, MakeDiff(fromVals[fi], nil))
				fi++
			}
			changed = true
		case diffpatch.DiffEqual:
			for range n {
				if d := df(fromVals[fi], toVals[ti]); d != nil {
					flush()
					ops = append(ops, d)
					changed = true
				} else {
					kept++
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			flush()
			for range n {
				ops = append(ops, MakeDiff(nil, toVals[ti]))
				ti++
			}
			changed = true
		}
	}
	if !changed {
		return nil
	}
	flush()
	return op(ArrayDiffOp, dict.FromSlice(ops))
}

func values(d *dict.Dict) []*dict.Dict {
	var res []*dict.Dict
	for v := range d.Values() {
		res = append(res, v)
	}
	return res
}

func mapValues(m map[string]rune, vals []*dict.Dict) []rune {
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(d *dict.Dict) string {
	t := d.Type()
	switch t {
	case dict.BoolType:
		return t.String() + "-" + strconv.FormatBool(d.MustBool())
	case dict.IntType:
		return t.String() + "-" + strconv.FormatInt(int64(d.MustInt()), 10)
	case dict.NumberType:
		return t.String() + "-" + strconv.FormatFloat(d.MustFloat(), 'g', -1, 64)
	case dict.StringType:
		s := d.MustStr()
		if strings.Contains(s, "\n") {
			return t.String() + "/m"
		}
		return t.String() + "-" + s
	case dict.BytesType:
		return t.String() + "-" + string(d.MustBytes())
	}
	return t.String()
}
