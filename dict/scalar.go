package dict

import "unicode/utf8"

type nullNode struct{ base }

func (*nullNode) typ() Type              { return NullType }
func (*nullNode) locker() rwLocker       { return nopLock{} }
func (*nullNode) composer() rwLocker     { return nil }
func (*nullNode) accept(s Stepper) error { return s.StepNull() }

type boolNode struct {
	base
	v bool
}

func (*boolNode) typ() Type                 { return BoolType }
func (*boolNode) locker() rwLocker          { return nopLock{} }
func (*boolNode) composer() rwLocker        { return nil }
func (n *boolNode) boolVal() (bool, Result) { return n.v, OK }
func (n *boolNode) accept(s Stepper) error  { return s.StepBool(n.v) }

type intNode struct {
	base
	v int32
}

func (*intNode) typ() Type                     { return IntType }
func (n *intNode) intVal() (int32, Result)     { return n.v, OK }
func (n *intNode) floatVal() (float64, Result) { return float64(n.v), OK }
func (n *intNode) accept(s Stepper) error      { return s.StepInt(n.v) }

type floatNode struct {
	base
	v float64
}

func (*floatNode) typ() Type                     { return NumberType }
func (n *floatNode) intVal() (int32, Result)     { return int32(n.v), OK }
func (n *floatNode) floatVal() (float64, Result) { return n.v, OK }
func (n *floatNode) accept(s Stepper) error      { return s.StepNumber(n.v) }

type stringNode struct {
	base
	v string
}

func (*stringNode) typ() Type                  { return StringType }
func (n *stringNode) strVal() (string, Result) { return n.v, OK }
func (n *stringNode) accept(s Stepper) error   { return s.StepString(n.v) }

func (n *stringNode) stealStr() (string, Result) {
	v := n.v
	n.v = ""
	return v, OK
}

// size counts characters, not bytes.
func (n *stringNode) size() (int, Result) { return utf8.RuneCountInString(n.v), OK }
func (n *stringNode) clear()              { n.v = "" }

type bytesNode struct {
	base
	v []byte
}

func (*bytesNode) typ() Type                { return BytesType }
func (n *bytesNode) size() (int, Result)    { return len(n.v), OK }
func (n *bytesNode) clear()                 { n.v = nil }
func (n *bytesNode) accept(s Stepper) error { return s.StepBytes(n.v) }

func (n *bytesNode) bytesVal() ([]byte, Result) {
	return append([]byte(nil), n.v...), OK
}

func (n *bytesNode) stealBytes() ([]byte, Result) {
	v := n.v
	n.v = nil
	return v, OK
}

// Func is the payload of a Callable. It takes ownership of its argument
// and returns a new value.
type Func func(in *Dict) *Dict

type callNode struct {
	base
	f Func
}

func (*callNode) typ() Type                { return CallableType }
func (n *callNode) accept(s Stepper) error { return s.StepCallable(n.f) }

func (n *callNode) fn() (Func, Result) {
	if n.f == nil {
		return nil, NotSupported
	}
	return n.f, OK
}
