package dotpath

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		n    int
	}{
		{"", "", 0},
		{"a", "a", 1},
		{"a.b", "a.b", 2},
		{"[3]", "[3]", 1},
		{"a[0][1].b", "a[0][1].b", 4},
		{"a.'x.y'", `a."x.y"`, 2},
		{`a."q\"t"`, `a."q\"t"`, 2},
		{`"[0]"`, `"[0]"`, 1},
		{"a.''", `a.""`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if p.Len() != tt.n {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.n)
			}
			again, err := Parse(p.String())
			if err != nil {
				t.Fatal(err)
			}
			if again.String() != p.String() {
				t.Errorf("reparse gave %q", again.String())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{".a", "a.", "a..b", "a[", "a[x]", "a[-1]", "a]", "a[0]b", `a."x`, "a.'x"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) = %v", in, err)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	p, err := Parse("a[2].b")
	if err != nil {
		t.Fatal(err)
	}
	parent, last := p.Split()
	if parent.String() != "a[2]" || last.String() != "b" {
		t.Errorf("Split() = %q, %q", parent.String(), last.String())
	}
	if p.String() != "a[2].b" {
		t.Error("Split modified p")
	}
	if got := parent.Append(Field("c")).String(); got != "a[2].c" {
		t.Errorf("Append() = %q", got)
	}
	var root *Path
	if a, b := root.Split(); a != nil || b != nil {
		t.Error("root split")
	}
	one := Index(4)
	if a, b := one.Split(); a != nil || b.String() != "[4]" {
		t.Errorf("single split %v %v", a, b)
	}
}
