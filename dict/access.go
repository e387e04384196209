package dict

// Scalar lists the payload types with typed accessors.
type Scalar interface {
	bool | int32 | float64 | string | []byte
}

// Value is a Scalar or a Dict. Reading into a *Dict shares the node.
type Value interface {
	Scalar | Dict
}

func readInto[T Value](d *Dict, out *T) Result {
	switch p := any(out).(type) {
	case *bool:
		v, res := d.Bool()
		if res == OK {
			*p = v
		}
		return res
	case *int32:
		v, res := d.Int()
		if res == OK {
			*p = v
		}
		return res
	case *float64:
		v, res := d.Float()
		if res == OK {
			*p = v
		}
		return res
	case *string:
		v, res := d.Str()
		if res == OK {
			*p = v
		}
		return res
	case *[]byte:
		v, res := d.Bytes()
		if res == OK {
			*p = v
		}
		return res
	case *Dict:
		p.Assign(d)
		return OK
	}
	return NotSupported
}

func stealInto[T Value](d *Dict, out *T) Result {
	switch p := any(out).(type) {
	case *string:
		v, res := d.StealStr()
		if res == OK {
			*p = v
		}
		return res
	case *[]byte:
		v, res := d.StealBytes()
		if res == OK {
			*p = v
		}
		return res
	case *Dict:
		p.Assign(d)
		if p != d {
			d.Drop()
		}
		return OK
	}
	return readInto(d, out)
}

// Val copies d's payload into out. On failure out is left untouched.
func Val[T Value](d *Dict, out *T) Result {
	return readInto(d, out)
}

// Steal moves d's payload into out. Strings and bytes are moved out,
// leaving d empty; a Dict out takes over d's node and d becomes Null.
func Steal[T Value](d *Dict, out *T) Result {
	return stealInto(d, out)
}

// GetAs returns d's payload as T when d holds (or numerically converts
// to) a T.
func GetAs[T Scalar](d *Dict) (T, bool) {
	var v T
	res := readInto(d, &v)
	return v, res == OK
}

// ValKey copies the value under key k of an Object into out.
func ValKey[T Value](d *Dict, k string, out *T) Result {
	n, done := d.rnode()
	defer done()
	slot, res := n.slotKey(k)
	if res != OK {
		return res
	}
	return readInto(slot, out)
}

// StealKey moves the value under key k of an Object into out and leaves
// Null in its place.
func StealKey[T Value](d *Dict, k string, out *T) Result {
	n, done := d.wnode()
	defer done()
	slot, res := n.slotKey(k)
	if res != OK {
		return res
	}
	return stealSlot(slot, out)
}

// ValAt copies element i of an Array into out.
func ValAt[T Value](d *Dict, i int, out *T) Result {
	n, done := d.rnode()
	defer done()
	slot, res := n.slot(i)
	if res != OK {
		return res
	}
	return readInto(slot, out)
}

// StealAt moves element i of an Array into out and leaves Null in its
// place.
func StealAt[T Value](d *Dict, i int, out *T) Result {
	n, done := d.wnode()
	defer done()
	slot, res := n.slot(i)
	if res != OK {
		return res
	}
	return stealSlot(slot, out)
}

func stealSlot[T Value](slot *Dict, out *T) Result {
	res := stealInto(slot, out)
	if res.Ok() {
		if p, ok := any(out).(*Dict); !ok || p != slot {
			slot.Drop()
		}
	}
	return res
}
