package dict

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type typeCounter struct {
	NopStepper
	counts map[Type]int
}

func (c *typeCounter) StepArray(v []*Dict) error {
	c.counts[ArrayType]++
	for _, x := range v {
		if err := x.Step(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *typeCounter) StepObject(v *Fields) error {
	c.counts[ObjectType]++
	for _, x := range v.All() {
		if err := x.Step(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *typeCounter) StepInt(int32) error {
	c.counts[IntType]++
	return nil
}

func TestStep(t *testing.T) {
	d := Object(
		E("a", Array(FromInt(1), FromInt(2), FromString("x"))),
		E("b", Object(E("c", FromInt(3)))),
	)
	c := &typeCounter{counts: map[Type]int{}}
	if err := d.Step(c); err != nil {
		t.Fatal(err)
	}
	want := map[Type]int{ObjectType: 2, ArrayType: 1, IntType: 3}
	if diff := cmp.Diff(want, c.counts); diff != "" {
		t.Error(diff)
	}
}

func TestStepperFuncs(t *testing.T) {
	errStop := errors.New("stop")
	var got []string
	s := &StepperFuncs{
		String: func(v string) error {
			got = append(got, v)
			return nil
		},
		Callable: func(Func) error { return errStop },
	}
	for _, d := range []*Dict{FromString("a"), FromInt(1), New(), FromString("b")} {
		if err := d.Step(s); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Error(diff)
	}
	if err := FromFunc(nil).Step(s); !errors.Is(err, errStop) {
		t.Errorf("got %v", err)
	}
}

func TestFields(t *testing.T) {
	d := Object(E("b", FromInt(1)), E("a", FromInt(2)))
	var order, sorted []string
	s := &StepperFuncs{
		Object: func(f *Fields) error {
			for k := range f.All() {
				order = append(order, k)
			}
			for k := range f.Sorted() {
				sorted = append(sorted, k)
			}
			if v, ok := f.Get("a"); !ok || v.MustInt() != 2 {
				t.Error("Get a")
			}
			if f.Len() != 2 {
				t.Errorf("Len %d", f.Len())
			}
			return nil
		},
	}
	if err := d.Step(s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, order); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, sorted); diff != "" {
		t.Error(diff)
	}
}
