package dict

import "sync"

// node holds the payload of exactly one variant. Its type never changes;
// re-typing a handle installs a different node.
//
// Methods other than typ, locker and composer assume the caller holds
// the node's lock: shared for reads, exclusive for anything that mutates.
type node interface {
	typ() Type
	locker() rwLocker
	composer() rwLocker

	boolVal() (bool, Result)
	intVal() (int32, Result)
	floatVal() (float64, Result)
	strVal() (string, Result)
	bytesVal() ([]byte, Result)
	stealStr() (string, Result)
	stealBytes() ([]byte, Result)

	size() (int, Result)
	clear()
	reserve(n int) Result

	slot(i int) (*Dict, Result)
	slotKey(k string) (*Dict, Result)
	add(v *Dict) Result
	merge(es []Entry) Result
	addKey(k string, v *Dict) Result
	remove(i int) Result
	removeKey(k string) Result
	at(i int) *Dict
	atKey(k string) *Dict
	keys() []string

	fn() (Func, Result)
	accept(s Stepper) error
}

type rwLocker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
}

// nopLock guards the immutable singletons.
type nopLock struct{}

func (nopLock) RLock()   {}
func (nopLock) RUnlock() {}
func (nopLock) Lock()    {}
func (nopLock) Unlock()  {}

// base supplies the default behaviour of every capability: fallible
// operations report NotSupported and strict accessors panic.
type base struct {
	mu   sync.RWMutex
	comp sync.RWMutex // composition lock, see (*Dict).Lock
}

func (b *base) locker() rwLocker   { return &b.mu }
func (b *base) composer() rwLocker { return &b.comp }

func (*base) boolVal() (bool, Result)        { return false, NotSupported }
func (*base) intVal() (int32, Result)        { return 0, NotSupported }
func (*base) floatVal() (float64, Result)    { return 0, NotSupported }
func (*base) strVal() (string, Result)       { return "", NotSupported }
func (*base) bytesVal() ([]byte, Result)     { return nil, NotSupported }
func (*base) stealStr() (string, Result)     { return "", NotSupported }
func (*base) stealBytes() ([]byte, Result)   { return nil, NotSupported }
func (*base) size() (int, Result)            { return 0, NotSupported }
func (*base) clear()                         {}
func (*base) reserve(int) Result             { return NotSupported }
func (*base) slot(int) (*Dict, Result)       { return nil, NotSupported }
func (*base) slotKey(string) (*Dict, Result) { return nil, NotSupported }
func (*base) add(*Dict) Result               { return NotSupported }
func (*base) merge([]Entry) Result           { return NotSupported }
func (*base) addKey(string, *Dict) Result    { return NotSupported }
func (*base) remove(int) Result              { return NotSupported }
func (*base) removeKey(string) Result        { return NotSupported }
func (*base) keys() []string                 { return nil }
func (*base) fn() (Func, Result)             { return nil, NotSupported }

// at and atKey cannot report the receiver type from base; handles check
// the type before calling them.
func (*base) at(int) *Dict       { panic(errInternal) }
func (*base) atKey(string) *Dict { panic(errInternal) }

var (
	nullVal  node = &nullNode{}
	trueVal  node = &boolNode{v: true}
	falseVal node = &boolNode{v: false}
)

func boolNodeOf(v bool) node {
	if v {
		return trueVal
	}
	return falseVal
}

// fresh returns an empty node of type t.
func fresh(t Type) node {
	switch t {
	case BoolType:
		return falseVal
	case IntType:
		return &intNode{}
	case NumberType:
		return &floatNode{}
	case StringType:
		return &stringNode{}
	case BytesType:
		return &bytesNode{}
	case ArrayType:
		return &arrayNode{}
	case ObjectType:
		return newObjectNode(0)
	case CallableType:
		return &callNode{}
	default:
		return nullVal
	}
}
