package dict

import (
	"fmt"
	"math"
	"sync"
)

// Dict is a handle to one value of the tree. Handles are shared
// references: Assign and Share make a handle refer to another handle's
// node without copying the payload, so a mutation through one is visible
// through every handle aliasing the same node.
//
// The zero Dict is Null.
type Dict struct {
	mu sync.RWMutex // guards n
	n  node

	// composition lock state, see Lock
	cmu    sync.Mutex
	pinned rwLocker
	pins   int
	guard  sync.RWMutex // used while d refers to a singleton
}

// New returns a Null handle.
func New() *Dict { return &Dict{n: nullVal} }

// NewType returns a handle to a fresh empty value of type t.
func NewType(t Type) *Dict { return &Dict{n: fresh(t)} }

func Null() *Dict { return New() }

func FromBool(v bool) *Dict { return &Dict{n: boolNodeOf(v)} }

func FromInt(v int32) *Dict { return &Dict{n: &intNode{v: v}} }

func FromFloat(v float64) *Dict { return &Dict{n: &floatNode{v: v}} }

func FromString(v string) *Dict { return &Dict{n: &stringNode{v: v}} }

// FromBytes takes ownership of v.
func FromBytes(v []byte) *Dict { return &Dict{n: &bytesNode{v: v}} }

func FromFunc(f Func) *Dict { return &Dict{n: &callNode{f: f}} }

// FromSlice returns an Array whose elements share the nodes of vals.
func FromSlice(vals []*Dict) *Dict {
	a := &arrayNode{v: make([]*Dict, len(vals))}
	for i, v := range vals {
		a.v[i] = Share(v)
	}
	return &Dict{n: a}
}

func Array(vals ...*Dict) *Dict { return FromSlice(vals) }

// FromEntries returns an Object of es. Later entries replace earlier ones
// with the same key.
func FromEntries(es []Entry) *Dict {
	o := newObjectNode(len(es))
	for _, e := range es {
		if res := o.addKey(e.Key, e.Val); !res.Ok() {
			failf("FromEntries", ObjectType, res.Err(), "key %q", e.Key)
		}
	}
	return &Dict{n: o}
}

func Object(es ...Entry) *Dict { return FromEntries(es) }

func FromMap(m map[string]*Dict) *Dict {
	es := make([]Entry, 0, len(m))
	for k, v := range m {
		es = append(es, Entry{Key: k, Val: v})
	}
	sortEntries(es)
	return FromEntries(es)
}

// Share returns a new handle referring to the same node as v.
func Share(v *Dict) *Dict {
	return &Dict{n: v.load()}
}

func (d *Dict) load() node {
	if d == nil {
		return nullVal
	}
	d.mu.RLock()
	n := d.n
	d.mu.RUnlock()
	if n == nil {
		return nullVal
	}
	return n
}

func (d *Dict) store(n node) {
	d.mu.Lock()
	d.n = n
	d.mu.Unlock()
}

// rnode returns d's node read-locked, with its unlock function.
func (d *Dict) rnode() (node, func()) {
	n := d.load()
	l := n.locker()
	l.RLock()
	return n, l.RUnlock
}

// wnode returns d's node write-locked, with its unlock function.
func (d *Dict) wnode() (node, func()) {
	n := d.load()
	l := n.locker()
	l.Lock()
	return n, l.Unlock
}

// promote replaces a Null node by a fresh node of type t and returns the
// current node.
func (d *Dict) promote(t Type) node {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.n == nil || d.n.typ() == NullType {
		d.n = fresh(t)
	}
	return d.n
}

// Assign makes d share o's node.
func (d *Dict) Assign(o *Dict) *Dict {
	if d == o {
		return d
	}
	d.store(o.load())
	return d
}

// Become discards d's value and installs a fresh empty value of type t.
// Other handles sharing the old node are unaffected.
func (d *Dict) Become(t Type) {
	d.store(fresh(t))
}

// Drop reverts d to Null.
func (d *Dict) Drop() {
	d.store(nullVal)
}

func (d *Dict) SetBool(v bool)     { d.store(boolNodeOf(v)) }
func (d *Dict) SetInt(v int32)     { d.store(&intNode{v: v}) }
func (d *Dict) SetFloat(v float64) { d.store(&floatNode{v: v}) }
func (d *Dict) SetString(v string) { d.store(&stringNode{v: v}) }
func (d *Dict) SetBytes(v []byte)  { d.store(&bytesNode{v: v}) }
func (d *Dict) SetFunc(f Func)     { d.store(&callNode{f: f}) }

// SameNode reports whether d and o share a node.
func (d *Dict) SameNode(o *Dict) bool {
	return d.load() == o.load()
}

// Lock, Unlock, RLock and RUnlock operate on the composition lock of the
// node d refers to, so every handle sharing that node contends on it.
// Single operations never take it; callers hold it across a sequence of
// operations that must appear atomic to other goroutines.
//
// The lock is chosen when the first pending Lock or RLock of d is taken
// and kept until the last one is released, so Unlock releases the right
// lock even if d was rebound in between. Handles referring to Null or a
// Bool singleton fall back to a lock of their own.
func (d *Dict) Lock()    { d.pin().Lock() }
func (d *Dict) Unlock()  { d.unpin().Unlock() }
func (d *Dict) RLock()   { d.pin().RLock() }
func (d *Dict) RUnlock() { d.unpin().RUnlock() }

func (d *Dict) pin() rwLocker {
	d.cmu.Lock()
	defer d.cmu.Unlock()
	if d.pins == 0 {
		d.pinned = d.load().composer()
		if d.pinned == nil {
			d.pinned = &d.guard
		}
	}
	d.pins++
	return d.pinned
}

func (d *Dict) unpin() rwLocker {
	d.cmu.Lock()
	defer d.cmu.Unlock()
	if d.pins == 0 {
		panic(fmt.Errorf("%w: unlock of unlocked Dict", errInternal))
	}
	l := d.pinned
	d.pins--
	if d.pins == 0 {
		d.pinned = nil
	}
	return l
}

func (d *Dict) Type() Type { return d.load().typ() }

func (d *Dict) Is(t Type) bool { return d.Type() == t }

func (d *Dict) IsNull() bool     { return d.Is(NullType) }
func (d *Dict) IsBool() bool     { return d.Is(BoolType) }
func (d *Dict) IsInt() bool      { return d.Is(IntType) }
func (d *Dict) IsNumber() bool   { return d.Is(NumberType) }
func (d *Dict) IsString() bool   { return d.Is(StringType) }
func (d *Dict) IsBytes() bool    { return d.Is(BytesType) }
func (d *Dict) IsArray() bool    { return d.Is(ArrayType) }
func (d *Dict) IsObject() bool   { return d.Is(ObjectType) }
func (d *Dict) IsCallable() bool { return d.Is(CallableType) }

// Size returns the number of elements of an Array, entries of an Object,
// characters of a String or bytes of a Bytes value. Other types report
// NotSupported.
func (d *Dict) Size() (int, Result) {
	n, done := d.rnode()
	defer done()
	return n.size()
}

// Empty reports whether d is Null or a sized value of size zero.
func (d *Dict) Empty() bool {
	n, done := d.rnode()
	defer done()
	if n.typ() == NullType {
		return true
	}
	sz, res := n.size()
	return res == OK && sz == 0
}

// Clear empties the payload of a String, Bytes, Array or Object, keeping
// its type. It has no effect on other types.
func (d *Dict) Clear() {
	n, done := d.wnode()
	defer done()
	n.clear()
}

func (d *Dict) Reserve(c int) Result {
	n, done := d.wnode()
	defer done()
	return n.reserve(c)
}

func (d *Dict) Bool() (bool, Result) {
	n, done := d.rnode()
	defer done()
	return n.boolVal()
}

// Int returns an Int, or a Number truncated toward zero.
func (d *Dict) Int() (int32, Result) {
	n, done := d.rnode()
	defer done()
	return n.intVal()
}

// Float returns a Number, or an Int widened.
func (d *Dict) Float() (float64, Result) {
	n, done := d.rnode()
	defer done()
	return n.floatVal()
}

func (d *Dict) Str() (string, Result) {
	n, done := d.rnode()
	defer done()
	return n.strVal()
}

// Bytes returns a copy of a Bytes payload.
func (d *Dict) Bytes() ([]byte, Result) {
	n, done := d.rnode()
	defer done()
	return n.bytesVal()
}

func (d *Dict) StealBool() (bool, Result)     { return d.Bool() }
func (d *Dict) StealInt() (int32, Result)     { return d.Int() }
func (d *Dict) StealFloat() (float64, Result) { return d.Float() }

// StealStr moves the string out, leaving d an empty String.
func (d *Dict) StealStr() (string, Result) {
	n, done := d.wnode()
	defer done()
	return n.stealStr()
}

// StealBytes moves the bytes out, leaving d an empty Bytes value.
func (d *Dict) StealBytes() ([]byte, Result) {
	n, done := d.wnode()
	defer done()
	return n.stealBytes()
}

func (d *Dict) MustBool() bool {
	v, res := d.Bool()
	if res != OK {
		fail("MustBool", d.Type(), res.Err())
	}
	return v
}

func (d *Dict) MustInt() int32 {
	v, res := d.Int()
	if res != OK {
		fail("MustInt", d.Type(), res.Err())
	}
	return v
}

func (d *Dict) MustFloat() float64 {
	v, res := d.Float()
	if res != OK {
		fail("MustFloat", d.Type(), res.Err())
	}
	return v
}

func (d *Dict) MustStr() string {
	v, res := d.Str()
	if res != OK {
		fail("MustStr", d.Type(), res.Err())
	}
	return v
}

func (d *Dict) MustBytes() []byte {
	v, res := d.Bytes()
	if res != OK {
		fail("MustBytes", d.Type(), res.Err())
	}
	return v
}

// Call invokes a Callable with in, which the function takes ownership of.
// The function runs without any lock held.
func (d *Dict) Call(in *Dict) (*Dict, Result) {
	n, done := d.rnode()
	f, res := n.fn()
	done()
	if res != OK {
		return nil, res
	}
	out := f(in)
	if out == nil {
		out = New()
	}
	return out, OK
}

// Invoke is Call for callers that treat a non-callable as a bug.
func (d *Dict) Invoke(in *Dict) *Dict {
	out, res := d.Call(in)
	if res != OK {
		fail("Invoke", d.Type(), res.Err())
	}
	return out
}

// Step dispatches d's payload to exactly one method of s.
func (d *Dict) Step(s Stepper) error {
	n, done := d.rnode()
	defer done()
	return n.accept(s)
}

func checkIndex(op string, t Type, i int) {
	if i < 0 || i >= math.MaxInt32 {
		failf(op, t, ErrOutOfRange, "index %d", i)
	}
}
