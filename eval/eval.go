package eval

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/signadot/valtree/debug"
	"github.com/signadot/valtree/dict"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type config struct {
	vars   map[string]any
	osEnv  bool
	logger *slog.Logger
}

type Option func(*config)

// WithVars makes vars visible to the expression as `vars`.
func WithVars(vars map[string]any) Option {
	return func(c *config) { c.vars = maps.Clone(vars) }
}

// WithOSEnv enables getenv(name).
func WithOSEnv() Option {
	return func(c *config) { c.osEnv = true }
}

// WithLogger sets the logger reporting failures of Funcs. Nil means
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
	cfg config
}

func NewProgram(src string, opts ...Option) (*Program, error) {
	p := &Program{src: src}
	for _, o := range opts {
		o(&p.cfg)
	}
	exprOpts := []expr.Option{expr.Env(Env{})}
	if p.cfg.osEnv {
		exprOpts = append(exprOpts, osEnvOpt())
	}
	prg, err := expr.Compile(src, exprOpts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	p.prg = prg
	return p, nil
}

func (p *Program) String() string { return p.src }

// Run evaluates the program with in as its input.
func (p *Program) Run(in *dict.Dict) (*dict.Dict, error) {
	res, err := expr.Run(p.prg, newEnv(in, p.cfg.vars))
	if debug.Eval() {
		debug.Logf("eval %q on %s: %v (%v)\n", p.src, in, res, err)
	}
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", p.src, err)
	}
	out, err := dict.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("result of %q: %w", p.src, err)
	}
	return out, nil
}

func (p *Program) logger() *slog.Logger {
	if p.cfg.logger == nil {
		return slog.Default()
	}
	return p.cfg.logger
}

// Func returns a dict.Func running p. A failed run is logged and yields
// Null.
func (p *Program) Func() dict.Func {
	return func(in *dict.Dict) *dict.Dict {
		out, err := p.Run(in)
		if err != nil {
			p.logger().Warn("expression failed", "expr", p.src, "error", err)
			return dict.New()
		}
		return out
	}
}

// Compile compiles src into a Func.
func Compile(src string, opts ...Option) (dict.Func, error) {
	p, err := NewProgram(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.Func(), nil
}

// Callable compiles src into a Callable value.
func Callable(src string, opts ...Option) (*dict.Dict, error) {
	f, err := Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return dict.FromFunc(f), nil
}
