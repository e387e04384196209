package dict

import "testing"

func dotFixture() *Dict {
	return MustFromAny(map[string]any{
		"a": map[string]any{
			"b": []any{1, 2, map[string]any{"x.y": "z"}},
			"s": "text",
		},
	})
}

func TestContains(t *testing.T) {
	d := dotFixture()
	tests := []struct {
		path string
		want Result
	}{
		{"", OK},
		{"a", OK},
		{"a.b[1]", OK},
		{"a.b[2].'x.y'", OK},
		{`a.b[2]."x.y"`, OK},
		{"a.c", NotFound},
		{"a.b.c", NotSupported},
		{"a[0]", NotSupported},
		{"a.b[9]", OutOfRange},
		{"a.s.len", NotSupported},
		{"a[", InvalidInput},
		{".a", InvalidInput},
		{"a..b", InvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := d.Contains(tt.path); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestContainsType(t *testing.T) {
	d := dotFixture()
	if res := d.ContainsType("a.b", ArrayType); res != OK {
		t.Errorf("array: %v", res)
	}
	if res := d.ContainsType("a.b", ObjectType); res != NotSupported {
		t.Errorf("wrong type: %v", res)
	}
	if res := d.ContainsType("a.q", NullType); res != NotFound {
		t.Errorf("missing: %v", res)
	}
}

func TestDotVal(t *testing.T) {
	d := dotFixture()
	var i int32
	if res := DotVal(d, "a.b[1]", &i); res != OK || i != 2 {
		t.Errorf("int: %d %v", i, res)
	}
	var s string
	if res := DotVal(d, "a.b[2].'x.y'", &s); res != OK || s != "z" {
		t.Errorf("string: %q %v", s, res)
	}
	if res := DotVal(d, "a.s", &i); res != NotSupported {
		t.Errorf("wrong type: %v", res)
	}
	var sub Dict
	if res := DotVal(d, "a.b", &sub); res != OK || !sub.IsArray() {
		t.Errorf("dict: %v", res)
	}
}

func TestDotSteal(t *testing.T) {
	d := dotFixture()
	var i int32
	if res := DotSteal(d, "a.b[0]", &i); res != OK || i != 1 {
		t.Errorf("steal: %d %v", i, res)
	}
	if res := d.ContainsType("a.b[0]", NullType); res != OK {
		t.Errorf("stolen slot: %v", res)
	}
	var s string
	if res := DotSteal(d, "a.missing", &s); res != NotFound {
		t.Errorf("missing: %v", res)
	}
	if res := DotSteal(d, "a.b[7]", &s); res != OutOfRange {
		t.Errorf("past end: %v", res)
	}
	var all Dict
	if res := DotSteal(d, "", &all); res != OK || !all.IsObject() || !d.IsNull() {
		t.Errorf("steal root: %v, root now %s", res, d.Type())
	}
}
