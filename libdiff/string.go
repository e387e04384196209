package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/valtree/dict"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two Strings by character. When more than half of the
// shorter string changes the result is a plain !replace.
func DiffString(from, to *dict.Dict) *dict.Dict {
	fs, ts := from.MustStr(), to.MustStr()
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(fs, "\n") && strings.Contains(ts, "\n")
	diffs := diffCfg.DiffMain(fs, ts, doMultiLine)
	diffSize := 0
	var ops []*dict.Dict
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffInsert:
			ops = append(ops, op(InsertOp, dict.FromString(diff.Text)))
			diffSize += n
		case diffpatch.DiffDelete:
			ops = append(ops, op(DeleteOp, dict.FromString(diff.Text)))
			diffSize += n
		case diffpatch.DiffEqual:
			ops = append(ops, keep(n))
		}
	}
	if diffSize == 0 {
		return nil
	}
	if diffSize > min(utf8.RuneCountInString(fs), utf8.RuneCountInString(ts))/2 {
		return MakeDiff(from, to)
	}
	return op(StringDiffOp, dict.FromSlice(ops))
}
