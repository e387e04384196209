// Package dict provides a dynamically typed value tree safe for use from
// multiple goroutines.
//
// A *Dict is a handle to a node holding one value: Null, Bool, Int (32
// bits), Number, String, Bytes, Array, Object or Callable. Handles share
// nodes: Assign and Share make two handles refer to the same node, and
// mutations through either are visible through both. Each node carries
// its own reader/writer lock, so every handle aliasing a node contends on
// the same lock.
//
// Rebinding operations (Assign, Become, Drop and the Set* family) change
// which node one handle refers to and never touch the old node, so the
// Null, true and false singletons are never mutated.
//
// Expected conditions are reported as a Result. Contract violations, such
// as reading a String as a Number through MustFloat or a strict Elem past
// the end of an Array, panic with an *Error.
//
// Containers:
//
//	d := dict.New()
//	d.AtKey("name").SetString("x")
//	d.AtKey("tags").At(2).SetInt(1) // tags: [null, null, 1]
//
//	var n int32
//	dict.DotVal(d, "tags[2]", &n)
package dict
