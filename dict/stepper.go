package dict

import (
	"iter"
	"slices"
)

// Stepper receives the payload of a value. Step calls exactly one method,
// chosen by the value's type, while holding the value's read lock.
// Payloads passed by reference (the array slice, Fields) must not be
// retained or mutated once the method returns.
//
// Embed NopStepper to inherit no-op methods for the variants a stepper
// does not care about.
type Stepper interface {
	StepNull() error
	StepBool(v bool) error
	StepInt(v int32) error
	StepNumber(v float64) error
	StepString(v string) error
	StepBytes(v []byte) error
	StepArray(v []*Dict) error
	StepObject(v *Fields) error
	StepCallable(f Func) error
}

type NopStepper struct{}

func (NopStepper) StepNull() error          { return nil }
func (NopStepper) StepBool(bool) error      { return nil }
func (NopStepper) StepInt(int32) error      { return nil }
func (NopStepper) StepNumber(float64) error { return nil }
func (NopStepper) StepString(string) error  { return nil }
func (NopStepper) StepBytes([]byte) error   { return nil }
func (NopStepper) StepArray([]*Dict) error  { return nil }
func (NopStepper) StepObject(*Fields) error { return nil }
func (NopStepper) StepCallable(Func) error  { return nil }

// Fields is a read-only view of an Object's entries, valid only during
// the StepObject call that received it.
type Fields struct {
	t *keyTable
}

func (f *Fields) Len() int { return f.t.len() }

func (f *Fields) Get(k string) (*Dict, bool) {
	return f.t.get(k)
}

// All yields entries in insertion order.
func (f *Fields) All() iter.Seq2[string, *Dict] {
	return func(yield func(string, *Dict) bool) {
		for pos := f.t.next(0); pos < f.t.end(); pos = f.t.next(pos + 1) {
			e := &f.t.entries[pos]
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Sorted yields entries in key order.
func (f *Fields) Sorted() iter.Seq2[string, *Dict] {
	return func(yield func(string, *Dict) bool) {
		for _, k := range f.t.sortedKeys() {
			v, _ := f.t.get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

func (f *Fields) Keys() []string { return f.t.sortedKeys() }

// Entries returns the entries in key order.
func (f *Fields) Entries() []Entry {
	res := make([]Entry, 0, f.t.len())
	for k, v := range f.Sorted() {
		res = append(res, Entry{Key: k, Val: v})
	}
	return res
}

// Entry is one key/value pair of an Object.
type Entry struct {
	Key string
	Val *Dict
}

// E is shorthand for an Entry.
func E(k string, v *Dict) Entry {
	return Entry{Key: k, Val: v}
}

func sortEntries(es []Entry) {
	slices.SortFunc(es, func(a, b Entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
}

// StepperFuncs adapts optional functions to a Stepper. Nil fields are
// no-ops.
type StepperFuncs struct {
	Null     func() error
	Bool     func(bool) error
	Int      func(int32) error
	Number   func(float64) error
	String   func(string) error
	Bytes    func([]byte) error
	Array    func([]*Dict) error
	Object   func(*Fields) error
	Callable func(Func) error
}

func (s *StepperFuncs) StepNull() error {
	if s.Null == nil {
		return nil
	}
	return s.Null()
}

func (s *StepperFuncs) StepBool(v bool) error {
	if s.Bool == nil {
		return nil
	}
	return s.Bool(v)
}

func (s *StepperFuncs) StepInt(v int32) error {
	if s.Int == nil {
		return nil
	}
	return s.Int(v)
}

func (s *StepperFuncs) StepNumber(v float64) error {
	if s.Number == nil {
		return nil
	}
	return s.Number(v)
}

func (s *StepperFuncs) StepString(v string) error {
	if s.String == nil {
		return nil
	}
	return s.String(v)
}

func (s *StepperFuncs) StepBytes(v []byte) error {
	if s.Bytes == nil {
		return nil
	}
	return s.Bytes(v)
}

func (s *StepperFuncs) StepArray(v []*Dict) error {
	if s.Array == nil {
		return nil
	}
	return s.Array(v)
}

func (s *StepperFuncs) StepObject(v *Fields) error {
	if s.Object == nil {
		return nil
	}
	return s.Object(v)
}

func (s *StepperFuncs) StepCallable(f Func) error {
	if s.Callable == nil {
		return nil
	}
	return s.Callable(f)
}
