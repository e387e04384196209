package eval

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/valtree/dict"
)

func TestCompile(t *testing.T) {
	doc := dict.MustFromAny(map[string]any{
		"name": "box",
		"a":    map[string]any{"b": []any{1, 2, 3}},
	})
	tests := []struct {
		name string
		src  string
		in   *dict.Dict
		opts []Option
		want *dict.Dict
	}{
		{"arith", "input + 1", dict.FromInt(41), nil, dict.FromInt(42)},
		{"field", `input.name + "!"`, doc, nil, dict.FromString("box!")},
		{"getpath", `getpath("a.b[1]") * 10`, doc, nil, dict.FromInt(20)},
		{"has", `has("a.b") && !has("a.x")`, doc, nil, dict.FromBool(true)},
		{"typeof", `typeof("a.b")`, doc, nil, dict.FromString("Array")},
		{"len", "len(input.a.b)", doc, nil, dict.FromInt(3)},
		{"vars", "vars.k", dict.New(), []Option{WithVars(map[string]any{"k": "v"})}, dict.FromString("v")},
		{"build", `{"n": input.name, "xs": [1, 2]}`, doc, nil,
			dict.MustFromAny(map[string]any{"n": "box", "xs": []any{1, 2}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.src, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			got := dict.FromFunc(f).Invoke(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("input +"); err == nil {
		t.Error("expected syntax error")
	}
	if _, err := Compile(`getenv("HOME")`); err == nil {
		t.Error("getenv without WithOSEnv")
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv("VALTREE_EVAL_TEST", "set")
	d, err := Callable(`getenv("VALTREE_EVAL_TEST")`, WithOSEnv())
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Invoke(dict.New()).MustStr(); got != "set" {
		t.Errorf("got %q", got)
	}
}

func TestRunError(t *testing.T) {
	p, err := NewProgram("input.x.y")
	if err != nil {
		t.Fatal(err)
	}
	in := dict.MustFromAny(map[string]any{"x": 1})
	if _, err := p.Run(in); err == nil {
		t.Error("expected runtime error")
	}

	buf := bytes.NewBuffer(nil)
	p, err = NewProgram("input.x.y", WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	if err != nil {
		t.Fatal(err)
	}
	out := dict.FromFunc(p.Func()).Invoke(in)
	if !out.IsNull() {
		t.Errorf("failed run gave %s", out.Type())
	}
	if !strings.Contains(buf.String(), "expression failed") {
		t.Errorf("log %q", buf.String())
	}
}
