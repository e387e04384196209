package dict

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"i":   7,
		"big": int64(1) << 40,
		"u":   uint32(math.MaxUint32),
		"f":   1.5,
		"s":   "x",
		"b":   []byte("raw"),
		"arr": []any{nil, true, "y"},
		"obj": map[string]any{"k": int8(-1)},
	}
	d, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := Object(
		E("arr", Array(New(), FromBool(true), FromString("y"))),
		E("b", FromBytes([]byte("raw"))),
		E("big", FromFloat(1<<40)),
		E("f", FromFloat(1.5)),
		E("i", FromInt(7)),
		E("obj", Object(E("k", FromInt(-1)))),
		E("s", FromString("x")),
		E("u", FromFloat(math.MaxUint32)),
	)
	if diff := cmp.Diff(want, d); diff != "" {
		t.Error(diff)
	}
}

func TestFromAnyErrors(t *testing.T) {
	_, err := FromAny(map[string]any{"a": []any{struct{}{}}})
	if !errors.Is(err, errUnsupportedGo) {
		t.Errorf("got %v", err)
	}
	_, err = FromAny(map[int]any{})
	if !errors.Is(err, errUnsupportedGo) {
		t.Errorf("got %v", err)
	}
}

func TestAny(t *testing.T) {
	d := Object(
		E("n", New()),
		E("i", FromInt(3)),
		E("a", Array(FromFloat(0.5), FromString("s"), FromBytes([]byte{1}))),
	)
	want := map[string]any{
		"n": nil,
		"i": 3,
		"a": []any{0.5, "s", []byte{1}},
	}
	if diff := cmp.Diff(want, d.Any()); diff != "" {
		t.Error(diff)
	}
	back, err := FromAny(d.Any())
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(d, back) {
		t.Error("Any did not round-trip")
	}
}
