package eval

import (
	"os"

	"github.com/signadot/valtree/dict"

	"github.com/expr-lang/expr"
)

// Env is the environment an expression runs in. The input value is
// visible as `input`, converted to native Go values.
type Env struct {
	Input any            `expr:"input"`
	Vars  map[string]any `expr:"vars"`

	GetPath func(path string) any    `expr:"getpath"`
	Has     func(path string) bool   `expr:"has"`
	TypeOf  func(path string) string `expr:"typeof"`
}

func newEnv(in *dict.Dict, vars map[string]any) Env {
	return Env{
		Input: in.Any(),
		Vars:  vars,
		GetPath: func(path string) any {
			var out dict.Dict
			if dict.DotVal(in, path, &out) != dict.OK {
				return nil
			}
			return out.Any()
		},
		Has: func(path string) bool {
			return in.Contains(path) == dict.OK
		},
		TypeOf: func(path string) string {
			var out dict.Dict
			if dict.DotVal(in, path, &out) != dict.OK {
				return ""
			}
			return out.Type().String()
		},
	}
}

func osEnvOpt() expr.Option {
	return expr.Function("getenv", func(params ...any) (any, error) {
		return os.Getenv(params[0].(string)), nil
	},
		new(func(string) string))
}
