package dict

import "github.com/signadot/valtree/dict/dotpath"

// walk follows p from d, returning the slot it reaches.
func (d *Dict) walk(p *dotpath.Path) (*Dict, Result) {
	cur := d
	for seg := range p.All() {
		var (
			next *Dict
			res  Result
		)
		n, done := cur.rnode()
		switch {
		case seg.Field != nil:
			next, res = n.slotKey(*seg.Field)
		case seg.Index != nil:
			next, res = n.slot(*seg.Index)
		default:
			res = InvalidInput
		}
		done()
		if res != OK {
			return nil, res
		}
		cur = next
	}
	return cur, OK
}

func (d *Dict) walkString(path string) (*Dict, Result) {
	p, err := dotpath.Parse(path)
	if err != nil {
		logger().Debug("bad path", "path", path, "error", err)
		return nil, InvalidInput
	}
	return d.walk(p)
}

// Contains reports OK when path leads to a value, and otherwise the
// Result of the first step that failed.
func (d *Dict) Contains(path string) Result {
	_, res := d.walkString(path)
	return res
}

// ContainsType is Contains that also requires the value to have type t,
// reporting NotSupported when it does not.
func (d *Dict) ContainsType(path string, t Type) Result {
	v, res := d.walkString(path)
	if res != OK {
		return res
	}
	if v.Type() != t {
		return NotSupported
	}
	return OK
}

// DotVal copies the value at path into out.
func DotVal[T Value](d *Dict, path string, out *T) Result {
	v, res := d.walkString(path)
	if res != OK {
		return res
	}
	return readInto(v, out)
}

// DotSteal moves the value at path into out and leaves Null in its place.
func DotSteal[T Value](d *Dict, path string, out *T) Result {
	p, err := dotpath.Parse(path)
	if err != nil {
		return InvalidInput
	}
	parentPath, last := p.Split()
	if last == nil {
		return Steal(d, out)
	}
	parent, res := d.walk(parentPath)
	if res != OK {
		return res
	}
	switch {
	case last.Field != nil:
		return StealKey(parent, *last.Field, out)
	case last.Index != nil:
		return StealAt(parent, *last.Index, out)
	}
	return InvalidInput
}
