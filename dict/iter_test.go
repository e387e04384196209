package dict

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterArray(t *testing.T) {
	a := Array(FromInt(1), FromInt(2), FromInt(3))
	var got []int32
	end := a.End()
	for it := a.Begin(); !it.Equal(end); it.Next() {
		got = append(got, it.Deref().MustInt())
	}
	if diff := cmp.Diff([]int32{1, 2, 3}, got); diff != "" {
		t.Error(diff)
	}

	it := a.Begin()
	it.Deref().SetInt(10)
	if a.Elem(0).MustInt() != 10 {
		t.Error("Iter.Deref should return the slot")
	}
	c := a.CBegin()
	c.Deref().SetInt(20)
	if a.Elem(0).MustInt() != 10 {
		t.Error("ConstIter.Deref should not return the slot")
	}
	mustPanic(t, ErrOutOfRange, func() {
		e := a.End()
		e.Deref()
	})

	// a ConstIter shares the element, so mutations show through
	nested := Array(Object())
	cn := nested.CBegin()
	cn.Deref().Set("k", FromInt(1))
	if !nested.Elem(0).Has("k") {
		t.Error("ConstIter.Deref does not share the element")
	}
}

func TestIterObject(t *testing.T) {
	o := Object(E("z", FromInt(1)), E("a", FromInt(2)), E("m", FromInt(3)))
	o.RemoveKey("a")
	o.Set("b", FromInt(4))
	var keys []string
	var vals []int32
	end := o.CEnd()
	for it := o.CBegin(); !it.Equal(end); it.Next() {
		keys = append(keys, it.Key())
		vals = append(vals, it.Deref().MustInt())
	}
	if diff := cmp.Diff([]string{"z", "m", "b"}, keys); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int32{1, 3, 4}, vals); diff != "" {
		t.Error(diff)
	}
}

func TestIterEmpty(t *testing.T) {
	for _, d := range []*Dict{New(), FromInt(1), FromString("abc"), NewType(ArrayType), NewType(ObjectType)} {
		if !d.Begin().Equal(d.End()) {
			t.Errorf("%s: begin != end", d.Type())
		}
	}
	// cursors of different kinds never compare equal
	a, o := NewType(ArrayType), NewType(ObjectType)
	if a.Begin().Equal(o.Begin()) {
		t.Error("array and object cursors compared equal")
	}
}

func TestRangeHelpers(t *testing.T) {
	a := Array(FromString("x"), FromString("y"))
	var elems []string
	for i, v := range a.Elems() {
		elems = append(elems, string(rune('0'+i))+v.MustStr())
	}
	if diff := cmp.Diff([]string{"0x", "1y"}, elems); diff != "" {
		t.Error(diff)
	}

	o := Object(E("b", FromInt(1)), E("a", FromInt(2)))
	m := map[string]int32{}
	for k, v := range o.Entries() {
		m[k] = v.MustInt()
	}
	if diff := cmp.Diff(map[string]int32{"a": 2, "b": 1}, m); diff != "" {
		t.Error(diff)
	}
	n := 0
	for range o.Values() {
		n++
		break
	}
	if n != 1 {
		t.Error("Values did not stop")
	}
	for range a.Entries() {
		t.Error("Entries of an Array yielded")
	}
}

func TestIterObjectRemoveVisited(t *testing.T) {
	o := NewType(ObjectType)
	var want []string
	for i := range 40 {
		k := fmt.Sprintf("k%02d", i)
		o.Set(k, FromInt(int32(i)))
		want = append(want, k)
	}
	var got []string
	for k := range o.Entries() {
		got = append(got, k)
		if len(got) == 30 {
			for i := range 25 {
				o.RemoveKey(fmt.Sprintf("k%02d", i))
			}
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visited (-want +got):\n%s", diff)
	}
	if n, _ := o.Size(); n != 15 {
		t.Errorf("size %d", n)
	}

	// removing an entry not yet visited skips only that entry
	o = Object(E("a", FromInt(1)), E("b", FromInt(2)), E("c", FromInt(3)))
	got = nil
	for k := range o.Entries() {
		got = append(got, k)
		if k == "a" {
			o.RemoveKey("b")
		}
	}
	if diff := cmp.Diff([]string{"a", "c"}, got); diff != "" {
		t.Error(diff)
	}
}
