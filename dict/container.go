package dict

// Add appends v to an Array, sharing v's node. On an Object, v must itself
// be an Object whose keys absent from d are inserted (InvalidInput
// otherwise). Other types report NotSupported.
func (d *Dict) Add(v *Dict) Result {
	var es []Entry
	if v.Type() == ObjectType {
		es = v.snapshot()
	}
	n, done := d.wnode()
	defer done()
	switch n.typ() {
	case ObjectType:
		if v.Type() != ObjectType {
			return InvalidInput
		}
		return n.merge(es)
	case ArrayType:
		if v.load() == n {
			return InvalidInput
		}
	}
	return n.add(v)
}

// AddKey sets key k of an Object to share v's node. It reports OK for a
// new key and OKReplaced when an existing value was replaced.
func (d *Dict) AddKey(k string, v *Dict) Result {
	n, done := d.wnode()
	defer done()
	if n.typ() == ObjectType && v.load() == n {
		return InvalidInput
	}
	return n.addKey(k, v)
}

// Set is AddKey without the result.
func (d *Dict) Set(k string, v *Dict) {
	d.AddKey(k, v)
}

// Append is Add without the result.
func (d *Dict) Append(v *Dict) {
	d.Add(v)
}

func (d *Dict) Remove(i int) Result {
	n, done := d.wnode()
	defer done()
	return n.remove(i)
}

// RemoveKey deletes k from an Object, reporting NotFound when k is absent.
func (d *Dict) RemoveKey(k string) Result {
	n, done := d.wnode()
	defer done()
	return n.removeKey(k)
}

// Val makes out share the value under key k.
func (d *Dict) Val(k string, out *Dict) Result { return ValKey(d, k, out) }

// Steal moves the value under key k into out and leaves Null in its place.
func (d *Dict) Steal(k string, out *Dict) Result { return StealKey(d, k, out) }

// ValIndex makes out share element i.
func (d *Dict) ValIndex(i int, out *Dict) Result { return ValAt(d, i, out) }

// StealIndex moves element i into out and leaves Null in its place.
func (d *Dict) StealIndex(i int, out *Dict) Result { return StealAt(d, i, out) }

// At returns the slot at index i of an Array, growing the array with Null
// elements up to i when needed. A Null d first becomes an empty Array.
// At panics on other types and on negative indices.
func (d *Dict) At(i int) *Dict {
	n := d.load()
	checkIndex("At", n.typ(), i)
	if n.typ() == NullType {
		n = d.promote(ArrayType)
	}
	if n.typ() != ArrayType {
		fail("At", n.typ(), ErrNotSupported)
	}
	l := n.locker()
	l.Lock()
	defer l.Unlock()
	return n.at(i)
}

// AtKey returns the slot under key k of an Object, inserting Null when k is
// absent. A Null d first becomes an empty Object. AtKey panics on other
// types.
func (d *Dict) AtKey(k string) *Dict {
	n := d.load()
	if n.typ() == NullType {
		n = d.promote(ObjectType)
	}
	if n.typ() != ObjectType {
		fail("AtKey", n.typ(), ErrNotSupported)
	}
	l := n.locker()
	l.Lock()
	defer l.Unlock()
	return n.atKey(k)
}

// Elem returns the slot at index i of an Array. It never grows the array
// and panics when i is out of range or d is not an Array. Like At it
// returns the live slot: rebinding the result rebinds the element. Use
// LookupIndex for a handle that only shares the element.
func (d *Dict) Elem(i int) *Dict {
	n, done := d.rnode()
	defer done()
	if n.typ() != ArrayType {
		fail("Elem", n.typ(), ErrNotSupported)
	}
	v, res := n.slot(i)
	if res != OK {
		failf("Elem", ArrayType, res.Err(), "index %d", i)
	}
	return v
}

// Field returns the slot under key k of an Object. It never inserts and
// panics when k is absent or d is not an Object. Like AtKey it returns
// the live slot: rebinding the result rebinds the entry. Use Lookup for a
// handle that only shares the value.
func (d *Dict) Field(k string) *Dict {
	n, done := d.rnode()
	defer done()
	if n.typ() != ObjectType {
		fail("Field", n.typ(), ErrNotSupported)
	}
	v, res := n.slotKey(k)
	if res != OK {
		failf("Field", ObjectType, res.Err(), "key %q", k)
	}
	return v
}

// LookupIndex returns a new handle sharing element i, if present.
func (d *Dict) LookupIndex(i int) (*Dict, bool) {
	n, done := d.rnode()
	defer done()
	v, res := n.slot(i)
	if res != OK {
		return nil, false
	}
	return Share(v), true
}

// Lookup returns a new handle sharing the value under k, if present.
func (d *Dict) Lookup(k string) (*Dict, bool) {
	n, done := d.rnode()
	defer done()
	v, res := n.slotKey(k)
	if res != OK {
		return nil, false
	}
	return Share(v), true
}

// Has reports whether d is an Object with key k.
func (d *Dict) Has(k string) bool {
	n, done := d.rnode()
	defer done()
	_, res := n.slotKey(k)
	return res == OK
}

// Keys returns a sorted copy of an Object's keys; nil for other types.
func (d *Dict) Keys() []string {
	n, done := d.rnode()
	defer done()
	return n.keys()
}

// snapshot returns an Object's entries in key order, sharing the slots.
func (d *Dict) snapshot() []Entry {
	n, done := d.rnode()
	defer done()
	o, ok := n.(*objectNode)
	if !ok {
		return nil
	}
	return (&Fields{t: o.t}).Entries()
}
