package dict

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Dict
		expected int
	}{
		// type ranking
		{"Null < Bool", New(), FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(0), -1},
		{"Int < Number", FromInt(5), FromFloat(1), -1},
		{"Number < String", FromFloat(1), FromString(""), -1},
		{"String < Bytes", FromString("z"), FromBytes(nil), -1},
		{"Bytes < Array", FromBytes([]byte("z")), Array(), -1},
		{"Array < Object", Array(FromInt(1)), Object(), -1},
		{"Object < Callable", Object(), FromFunc(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(-1), FromInt(2), -1},
		{"Number == Number", FromFloat(2.5), FromFloat(2.5), 0},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Bytes < Bytes", FromBytes([]byte{1}), FromBytes([]byte{1, 0}), -1},

		{"Empty Array == Empty Array", Array(), NewType(ArrayType), 0},
		{"Short Array < Long Array", Array(FromInt(1)), Array(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", Array(FromInt(1)), Array(FromInt(2)), -1},

		{"Empty Object == Empty Object", Object(), NewType(ObjectType), 0},
		{"Object Insertion Order Ignored",
			Object(E("a", FromInt(1)), E("b", FromInt(2))),
			Object(E("b", FromInt(2)), E("a", FromInt(1))),
			0},
		{"Short Object < Long Object",
			Object(E("a", FromInt(1))),
			Object(E("a", FromInt(1)), E("b", FromInt(2))),
			-1},
		{"Object Key Comparison",
			Object(E("a", FromInt(1))),
			Object(E("b", FromInt(1))),
			-1},
		{"Object Value Comparison",
			Object(E("a", FromInt(1))),
			Object(E("a", FromInt(2))),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Error("equal values hash differently")
			}
		})
	}
}

func TestHash(t *testing.T) {
	distinct := []*Dict{
		New(),
		FromBool(false),
		FromInt(0),
		FromFloat(0),
		FromString(""),
		FromBytes(nil),
		Array(),
		Object(),
		Array(FromString("ab")),
		Array(FromString("a"), FromString("b")),
		Object(E("a", FromInt(1))),
	}
	seen := map[uint64]int{}
	for i, d := range distinct {
		h := d.Hash()
		if j, ok := seen[h]; ok {
			t.Errorf("values %d and %d collide", j, i)
		}
		seen[h] = i
	}
	if FromFloat(0).Hash() != FromFloat(math.Copysign(0, -1)).Hash() {
		t.Error("zero hashes")
	}
	nan1 := FromFloat(math.NaN())
	nan2 := FromFloat(math.Float64frombits(0x7ff8000000000bad))
	if !Equal(nan1, nan2) {
		t.Fatal("NaNs compare unequal")
	}
	if nan1.Hash() != nan2.Hash() {
		t.Error("equal NaNs hash differently")
	}
}

func TestClone(t *testing.T) {
	orig := Object(
		E("a", Array(FromInt(1), Object(E("x", FromString("y"))))),
		E("b", FromBytes([]byte("raw"))),
	)
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	c.Field("a").Elem(1).Set("x", FromString("changed"))
	c.Field("a").Append(FromInt(2))
	if orig.Field("a").Elem(1).Field("x").MustStr() != "y" {
		t.Error("clone shares a nested object")
	}
	if n, _ := orig.Field("a").Size(); n != 2 {
		t.Error("clone shares an array")
	}
	if diff := cmp.Diff([]string{"a", "b"}, keysInOrder(c)); diff != "" {
		t.Error(diff)
	}
}

func keysInOrder(d *Dict) []string {
	var res []string
	for k := range d.Entries() {
		res = append(res, k)
	}
	return res
}
