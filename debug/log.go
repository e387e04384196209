package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/valtree/dict"
)

// Logf writes a formatted message to stderr. *dict.Dict arguments are
// rendered with Dump and native maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	Fprintf(os.Stderr, msg, args...)
}

func Fprintf(w io.Writer, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *dict.Dict:
			args[i] = Dump(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(w, msg, args...)
}

// LogAny writes v to stderr, as a tree when it converts to one.
func LogAny(v any) {
	d, err := dict.FromAny(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	p := &Dumper{Colors: ColorsFor(os.Stderr), Indent: "  "}
	_ = p.Write(os.Stderr, d)
}
