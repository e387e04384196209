package dict

import "iter"

type iterKind int

const (
	emptyIter iterKind = iota
	arrayIter
	objectIter
)

// Iter is a forward cursor over the elements of an Array or the values of
// an Object. The kind of traversal is fixed when the cursor is created by
// Begin or End; on any other type both return the same empty cursor.
//
// Removing an entry leaves cursors at other entries valid. Inserting into
// an Object may rebuild its table and invalidates its cursors.
type Iter struct {
	n    node
	kind iterKind
	pos  int
}

// ConstIter is an Iter whose Deref returns a new handle sharing the
// element, so rebinding the result never rebinds the container slot.
// The element itself is shared: mutating it through the result, as with
// AddKey or Clear, is visible through the container.
type ConstIter struct {
	it Iter
}

func (d *Dict) Begin() Iter {
	n, done := d.rnode()
	defer done()
	return iterOf(n, false)
}

func (d *Dict) End() Iter {
	n, done := d.rnode()
	defer done()
	return iterOf(n, true)
}

// bounds returns the begin and end cursors of one node.
func (d *Dict) bounds() (Iter, Iter) {
	n, done := d.rnode()
	defer done()
	return iterOf(n, false), iterOf(n, true)
}

// iterOf returns a cursor at the start or end of n, which the caller
// holds read-locked.
func iterOf(n node, atEnd bool) Iter {
	switch x := n.(type) {
	case *arrayNode:
		it := Iter{n: n, kind: arrayIter}
		if atEnd {
			it.pos = len(x.v)
		}
		return it
	case *objectNode:
		it := Iter{n: n, kind: objectIter, pos: x.t.next(0)}
		if atEnd {
			it.pos = x.t.end()
		}
		return it
	}
	return Iter{}
}

func (d *Dict) CBegin() ConstIter { return ConstIter{it: d.Begin()} }
func (d *Dict) CEnd() ConstIter   { return ConstIter{it: d.End()} }

// Deref returns the handle at the cursor. It panics past the end.
func (it *Iter) Deref() *Dict {
	v, ok := it.get()
	if !ok {
		fail("Deref", it.typ(), ErrOutOfRange)
	}
	return v
}

func (it *Iter) get() (*Dict, bool) {
	switch it.kind {
	case arrayIter:
		l := it.n.locker()
		l.RLock()
		defer l.RUnlock()
		a := it.n.(*arrayNode)
		if it.pos < len(a.v) {
			return a.v[it.pos], true
		}
	case objectIter:
		l := it.n.locker()
		l.RLock()
		defer l.RUnlock()
		t := it.n.(*objectNode).t
		if it.pos < t.end() && t.entries[it.pos].val != nil {
			return t.entries[it.pos].val, true
		}
	}
	return nil, false
}

// Key returns the key at an Object cursor, and "" for other cursors.
func (it *Iter) Key() string {
	if it.kind != objectIter {
		return ""
	}
	l := it.n.locker()
	l.RLock()
	defer l.RUnlock()
	t := it.n.(*objectNode).t
	if it.pos < t.end() {
		return t.entries[it.pos].key
	}
	return ""
}

func (it *Iter) Next() {
	switch it.kind {
	case arrayIter:
		it.pos++
	case objectIter:
		l := it.n.locker()
		l.RLock()
		it.pos = it.n.(*objectNode).t.next(it.pos + 1)
		l.RUnlock()
	}
}

// Equal reports whether it and o are at the same position of the same
// traversal. Cursors of different kinds are never equal.
func (it Iter) Equal(o Iter) bool {
	if it.kind != o.kind {
		return false
	}
	if it.kind == emptyIter {
		return true
	}
	return it.n == o.n && it.pos == o.pos
}

func (it *Iter) typ() Type {
	if it.n == nil {
		return NullType
	}
	return it.n.typ()
}

func (it *ConstIter) Deref() *Dict          { return Share(it.it.Deref()) }
func (it *ConstIter) Key() string           { return it.it.Key() }
func (it *ConstIter) Next()                 { it.it.Next() }
func (it ConstIter) Equal(o ConstIter) bool { return it.it.Equal(o.it) }

// Values yields the elements of an Array or the values of an Object in
// insertion order.
func (d *Dict) Values() iter.Seq[*Dict] {
	return func(yield func(*Dict) bool) {
		it, end := d.bounds()
		for ; it.pos < end.pos; it.Next() {
			v, ok := it.get()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Elems yields index/element pairs of an Array.
func (d *Dict) Elems() iter.Seq2[int, *Dict] {
	return func(yield func(int, *Dict) bool) {
		it, end := d.bounds()
		if it.kind != arrayIter {
			return
		}
		for ; it.pos < end.pos; it.Next() {
			v, ok := it.get()
			if !ok {
				return
			}
			if !yield(it.pos, v) {
				return
			}
		}
	}
}

// Entries yields key/value pairs of an Object in insertion order.
func (d *Dict) Entries() iter.Seq2[string, *Dict] {
	return func(yield func(string, *Dict) bool) {
		it, end := d.bounds()
		if it.kind != objectIter {
			return
		}
		for ; it.pos < end.pos; it.Next() {
			v, ok := it.get()
			if !ok {
				continue
			}
			if !yield(it.Key(), v) {
				return
			}
		}
	}
}
