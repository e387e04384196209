// Package valtree matches value trees against patterns. The value tree
// itself lives in package dict.
package valtree

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/valtree/debug"
	"github.com/signadot/valtree/dict"
	"github.com/signadot/valtree/eval"
)

// Pattern operators. A pattern object with exactly one field whose key
// is one of these is an operator rather than a literal object.
const (
	AndOp     = "!and"
	OrOp      = "!or"
	NotOp     = "!not"
	SubtreeOp = "!subtree"
	TypeOp    = "!type"
	ExprOp    = "!expr"
)

var ErrPattern = errors.New("invalid pattern")

type MatchConfig struct {
	// Numeric makes Int and Number values match when they are
	// numerically equal.
	Numeric bool
	// Vars are visible to !expr patterns as `vars`.
	Vars map[string]any
}

type MatchOpt func(*MatchConfig)

func MatchNumeric(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Numeric = v }
}

func MatchVars(vars map[string]any) MatchOpt {
	return func(c *MatchConfig) { c.Vars = vars }
}

// Match reports whether doc matches pattern.
//
// Null matches anything. An object matches when each of its fields
// matches the same field of doc; doc may have more fields. An array
// matches an array of the same length elementwise. A Callable pattern
// is called with doc and matches when it returns true. Other values
// match by equality.
func Match(doc, pattern *dict.Dict, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg.match(doc, pattern)
}

func (c *MatchConfig) match(doc, pattern *dict.Dict) (bool, error) {
	if debug.Match() {
		debug.Logf("match %s against %s\n", pattern.Type(), doc.Type())
	}
	if name, arg, ok := operator(pattern); ok {
		return c.matchOp(doc, name, arg)
	}
	pt, dt := pattern.Type(), doc.Type()
	switch pt {
	case dict.NullType:
		return true, nil
	case dict.CallableType:
		res, r := pattern.Call(doc.Clone())
		if r != dict.OK {
			return false, r.Err()
		}
		b, _ := res.Bool()
		return b, nil
	}
	if pt != dt {
		if c.Numeric && pt.IsNumeric() && dt.IsNumeric() {
			pf, _ := pattern.Float()
			df, _ := doc.Float()
			return pf == df, nil
		}
		return false, nil
	}
	switch pt {
	case dict.ObjectType:
		return c.matchObj(doc, pattern)
	case dict.ArrayType:
		return c.matchArray(doc, pattern)
	default:
		return dict.Equal(doc, pattern), nil
	}
}

func (c *MatchConfig) matchObj(doc, pattern *dict.Dict) (bool, error) {
	for k, p := range pattern.Entries() {
		v, ok := doc.Lookup(k)
		if !ok {
			return false, nil
		}
		sub, err := c.match(v, p)
		if err != nil {
			return false, fmt.Errorf("%s: %w", k, err)
		}
		if !sub {
			return false, nil
		}
	}
	return true, nil
}

func (c *MatchConfig) matchArray(doc, pattern *dict.Dict) (bool, error) {
	ps := slices.Collect(pattern.Values())
	ds := slices.Collect(doc.Values())
	if len(ps) != len(ds) {
		return false, nil
	}
	for i := range ds {
		sub, err := c.match(ds[i], ps[i])
		if err != nil {
			return false, fmt.Errorf("[%d]: %w", i, err)
		}
		if !sub {
			return false, nil
		}
	}
	return true, nil
}

// operator reports whether pattern is a single field object keyed by an
// operator name.
func operator(pattern *dict.Dict) (string, *dict.Dict, bool) {
	if !pattern.IsObject() {
		return "", nil, false
	}
	keys := pattern.Keys()
	if len(keys) != 1 || !strings.HasPrefix(keys[0], "!") {
		return "", nil, false
	}
	arg, ok := pattern.Lookup(keys[0])
	if !ok {
		return "", nil, false
	}
	return keys[0], arg, true
}

func (c *MatchConfig) matchOp(doc *dict.Dict, name string, arg *dict.Dict) (bool, error) {
	switch name {
	case AndOp:
		if !arg.IsArray() {
			return c.match(doc, arg)
		}
		for _, p := range slices.Collect(arg.Values()) {
			ok, err := c.match(doc, p)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case OrOp:
		if !arg.IsArray() {
			return false, fmt.Errorf("%w: %s wants an array, got %s", ErrPattern, name, arg.Type())
		}
		for _, p := range slices.Collect(arg.Values()) {
			ok, err := c.match(doc, p)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	case NotOp:
		ok, err := c.match(doc, arg)
		if err != nil {
			return false, err
		}
		return !ok, nil
	case SubtreeOp:
		return c.dive(doc, arg)
	case TypeOp:
		s, r := arg.Str()
		if r != dict.OK {
			return false, fmt.Errorf("%w: %s wants a type name, got %s", ErrPattern, name, arg.Type())
		}
		var t dict.Type
		if err := t.UnmarshalText([]byte(s)); err != nil {
			return false, fmt.Errorf("%w: %w", ErrPattern, err)
		}
		return doc.Is(t), nil
	case ExprOp:
		src, r := arg.Str()
		if r != dict.OK {
			return false, fmt.Errorf("%w: %s wants an expression, got %s", ErrPattern, name, arg.Type())
		}
		prg, err := eval.NewProgram(src, eval.WithVars(c.Vars))
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrPattern, err)
		}
		res, err := prg.Run(doc)
		if err != nil {
			return false, err
		}
		b, _ := res.Bool()
		return b, nil
	}
	return false, fmt.Errorf("%w: unknown operator %q", ErrPattern, name)
}

// dive reports whether doc or any value below it matches pattern.
func (c *MatchConfig) dive(doc, pattern *dict.Dict) (bool, error) {
	ok, err := c.match(doc, pattern)
	if err != nil || ok {
		return ok, err
	}
	if doc.Type().IsLeaf() {
		return false, nil
	}
	for _, v := range slices.Collect(doc.Values()) {
		ok, err := c.dive(v, pattern)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// Trim returns a copy of doc restricted to what pattern names. Object
// fields absent from pattern are dropped. Each element of an array
// pattern keeps the first unused element of doc it matches. Other
// values are cloned.
func Trim(pattern, doc *dict.Dict) *dict.Dict {
	if _, _, ok := operator(pattern); ok {
		return doc.Clone()
	}
	switch {
	case pattern.IsObject() && doc.IsObject():
		res := dict.NewType(dict.ObjectType)
		for k, v := range doc.Entries() {
			p, ok := pattern.Lookup(k)
			if !ok {
				continue
			}
			res.AddKey(k, Trim(p, v))
		}
		return res
	case pattern.IsArray() && doc.IsArray():
		res := dict.NewType(dict.ArrayType)
		ds := slices.Collect(doc.Values())
		used := make([]bool, len(ds))
		for _, p := range slices.Collect(pattern.Values()) {
			for i, v := range ds {
				if used[i] {
					continue
				}
				ok, err := Match(v, p)
				if err != nil || !ok {
					continue
				}
				res.Append(Trim(p, v))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
