package dict

import (
	"bytes"
	"cmp"
	"reflect"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different types order by type: Null < Bool < Int < Number <
// String < Bytes < Array < Object < Callable. Objects compare by their
// sorted entries. Callables compare by function identity.
func Compare(a, b *Dict) int {
	return compare(a, b, 0)
}

func compare(a, b *Dict, depth int) int {
	if a == b || a.SameNode(b) {
		return 0
	}
	pa, pb := capture(a), capture(b)
	if pa.t != pb.t {
		return cmp.Compare(pa.t, pb.t)
	}
	if !pa.t.IsLeaf() {
		checkDepth("Compare", pa.t, depth)
	}
	switch pa.t {
	case NullType:
		return 0
	case BoolType:
		switch {
		case pa.b == pb.b:
			return 0
		case !pa.b:
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(pa.i, pb.i)
	case NumberType:
		return cmp.Compare(pa.f, pb.f)
	case StringType:
		return strings.Compare(pa.s, pb.s)
	case BytesType:
		return bytes.Compare(pa.bs, pb.bs)
	case ArrayType:
		for i := range min(len(pa.elems), len(pb.elems)) {
			if r := compare(pa.elems[i], pb.elems[i], depth+1); r != 0 {
				return r
			}
		}
		return cmp.Compare(len(pa.elems), len(pb.elems))
	case ObjectType:
		fa, fb := pa.sorted(), pb.sorted()
		for i := range min(len(fa), len(fb)) {
			ea, eb := fa[i], fb[i]
			if r := strings.Compare(ea.Key, eb.Key); r != 0 {
				return r
			}
			if r := compare(ea.Val, eb.Val, depth+1); r != 0 {
				return r
			}
		}
		return cmp.Compare(len(fa), len(fb))
	case CallableType:
		return cmp.Compare(funcPointer(pa.fn), funcPointer(pb.fn))
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Dict) bool {
	return Compare(a, b) == 0
}

// Equal makes *Dict usable with github.com/google/go-cmp.
func (d *Dict) Equal(o *Dict) bool {
	return Equal(d, o)
}

func funcPointer(f Func) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
