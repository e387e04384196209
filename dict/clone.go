package dict

import "slices"

// Clone returns a deep copy of d sharing no nodes with it. Callables are
// copied by reference to the same function.
func Clone(d *Dict) *Dict {
	return clone(d, 0)
}

func clone(d *Dict, depth int) *Dict {
	p := capture(d)
	if !p.t.IsLeaf() {
		checkDepth("Clone", p.t, depth)
	}
	switch p.t {
	case BoolType:
		return FromBool(p.b)
	case IntType:
		return FromInt(p.i)
	case NumberType:
		return FromFloat(p.f)
	case StringType:
		return FromString(p.s)
	case BytesType:
		return FromBytes(slices.Clone(p.bs))
	case ArrayType:
		n := &arrayNode{v: make([]*Dict, len(p.elems))}
		for i, x := range p.elems {
			n.v[i] = clone(x, depth+1)
		}
		return &Dict{n: n}
	case ObjectType:
		n := newObjectNode(len(p.fields))
		for _, e := range p.fields {
			if err := n.t.insert(e.Key, clone(e.Val, depth+1)); err != nil {
				failf("Clone", ObjectType, ErrHashError, "%v", err)
			}
		}
		return &Dict{n: n}
	case CallableType:
		return FromFunc(p.fn)
	}
	return New()
}

// Clone is the method form of Clone.
func (d *Dict) Clone() *Dict { return Clone(d) }
