package dict

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var errUnsupportedGo = errors.New("unsupported Go value")

// FromAny converts a native Go value into a tree.
//
// Integers within int32 range become Int and other integers Number; maps
// must have string keys. A *Dict argument is shared, not copied.
func FromAny(v any) (*Dict, error) {
	switch x := v.(type) {
	case nil:
		return New(), nil
	case *Dict:
		return Share(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return fromInt64(int64(x)), nil
	case int8:
		return FromInt(int32(x)), nil
	case int16:
		return FromInt(int32(x)), nil
	case int32:
		return FromInt(x), nil
	case int64:
		return fromInt64(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return FromInt(int32(x)), nil
	case uint16:
		return FromInt(int32(x)), nil
	case uint32:
		return fromUint64(uint64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []byte:
		return FromBytes(slices.Clone(x)), nil
	case Func:
		return FromFunc(x), nil
	case func(*Dict) *Dict:
		return FromFunc(x), nil
	case []*Dict:
		return FromSlice(x), nil
	case []any:
		a := &arrayNode{v: make([]*Dict, len(x))}
		for i, e := range x {
			d, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a.v[i] = d
		}
		return &Dict{n: a}, nil
	case []string:
		a := &arrayNode{v: make([]*Dict, len(x))}
		for i, e := range x {
			a.v[i] = FromString(e)
		}
		return &Dict{n: a}, nil
	case map[string]*Dict:
		return FromMap(x), nil
	case map[string]any:
		es := make([]Entry, 0, len(x))
		for k, e := range x {
			d, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			es = append(es, Entry{Key: k, Val: d})
		}
		sortEntries(es)
		return FromEntries(es), nil
	}
	return nil, fmt.Errorf("%w %T", errUnsupportedGo, v)
}

// MustFromAny is FromAny for values known to convert.
func MustFromAny(v any) *Dict {
	d, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return d
}

func fromInt64(v int64) *Dict {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return FromInt(int32(v))
	}
	return FromFloat(float64(v))
}

func fromUint64(v uint64) *Dict {
	if v <= math.MaxInt32 {
		return FromInt(int32(v))
	}
	return FromFloat(float64(v))
}

// Any returns a native Go rendering of d: nil, bool, int, float64,
// string, []byte, []any, map[string]any or Func. Bytes are copied.
func (d *Dict) Any() any {
	return toAny(d, 0)
}

func toAny(d *Dict, depth int) any {
	p := capture(d)
	if !p.t.IsLeaf() {
		checkDepth("Any", p.t, depth)
	}
	switch p.t {
	case BoolType:
		return p.b
	case IntType:
		return int(p.i)
	case NumberType:
		return p.f
	case StringType:
		return p.s
	case BytesType:
		return slices.Clone(p.bs)
	case ArrayType:
		res := make([]any, len(p.elems))
		for i, x := range p.elems {
			res[i] = toAny(x, depth+1)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(p.fields))
		for _, e := range p.fields {
			res[e.Key] = toAny(e.Val, depth+1)
		}
		return res
	case CallableType:
		return p.fn
	}
	return nil
}
