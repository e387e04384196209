package debug

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/valtree/dict"
)

// Dumper renders value trees as JSON-like text. Bytes print as 0x-prefixed
// hex and Callables as <callable>; Object fields keep insertion order.
// Write fails on values nested deeper than dict.MaxDepth.
type Dumper struct {
	// Colors decorates the output; nil for plain text.
	Colors *Colors
	// Indent, when not empty, puts each element on its own line.
	Indent string
}

// Dump renders d on a single line without colors.
func Dump(d *dict.Dict) string {
	return (&Dumper{}).String(d)
}

func (p *Dumper) String(d *dict.Dict) string {
	buf := bytes.NewBuffer(nil)
	_ = p.Write(buf, d)
	return buf.String()
}

func (p *Dumper) Write(w io.Writer, d *dict.Dict) error {
	s := &dumpStepper{p: p, buf: bytes.NewBuffer(nil)}
	if err := d.Step(s); err != nil {
		return err
	}
	if p.Indent != "" {
		s.buf.WriteByte('\n')
	}
	_, err := w.Write(s.buf.Bytes())
	return err
}

type dumpStepper struct {
	p     *Dumper
	buf   *bytes.Buffer
	depth int
}

func (s *dumpStepper) value(t dict.Type, v string) error {
	s.buf.WriteString(s.p.Colors.Color(t, ValueColor, v))
	return nil
}

func (s *dumpStepper) sep(t dict.Type, v string) {
	s.buf.WriteString(s.p.Colors.Color(t, SepColor, v))
}

func (s *dumpStepper) newline() {
	if s.p.Indent == "" {
		return
	}
	s.buf.WriteByte('\n')
	s.buf.WriteString(strings.Repeat(s.p.Indent, s.depth))
}

func (s *dumpStepper) comma(t dict.Type) {
	if s.p.Indent == "" {
		s.sep(t, ", ")
		return
	}
	s.sep(t, ",")
}

func (s *dumpStepper) StepNull() error {
	return s.value(dict.NullType, "null")
}

func (s *dumpStepper) StepBool(v bool) error {
	return s.value(dict.BoolType, strconv.FormatBool(v))
}

func (s *dumpStepper) StepInt(v int32) error {
	return s.value(dict.IntType, strconv.FormatInt(int64(v), 10))
}

func (s *dumpStepper) StepNumber(v float64) error {
	return s.value(dict.NumberType, strconv.FormatFloat(v, 'g', -1, 64))
}

func (s *dumpStepper) StepString(v string) error {
	return s.value(dict.StringType, strconv.Quote(v))
}

func (s *dumpStepper) StepBytes(v []byte) error {
	return s.value(dict.BytesType, "0x"+hex.EncodeToString(v))
}

func (s *dumpStepper) StepCallable(dict.Func) error {
	return s.value(dict.CallableType, "<callable>")
}

func (s *dumpStepper) nest(t dict.Type) error {
	if s.depth >= dict.MaxDepth {
		return fmt.Errorf("%w: %s nested deeper than %d", dict.ErrInvalidInput, t, dict.MaxDepth)
	}
	return nil
}

func (s *dumpStepper) StepArray(v []*dict.Dict) error {
	if err := s.nest(dict.ArrayType); err != nil {
		return err
	}
	s.sep(dict.ArrayType, "[")
	if len(v) == 0 {
		s.sep(dict.ArrayType, "]")
		return nil
	}
	s.depth++
	for i, x := range v {
		if i > 0 {
			s.comma(dict.ArrayType)
		}
		s.newline()
		if err := x.Step(s); err != nil {
			return err
		}
	}
	s.depth--
	s.newline()
	s.sep(dict.ArrayType, "]")
	return nil
}

func (s *dumpStepper) StepObject(v *dict.Fields) error {
	if err := s.nest(dict.ObjectType); err != nil {
		return err
	}
	s.sep(dict.ObjectType, "{")
	if v.Len() == 0 {
		s.sep(dict.ObjectType, "}")
		return nil
	}
	s.depth++
	i := 0
	for k, x := range v.All() {
		if i > 0 {
			s.comma(dict.ObjectType)
		}
		i++
		s.newline()
		s.buf.WriteString(s.p.Colors.Color(dict.ObjectType, FieldColor, strconv.Quote(k)))
		s.sep(dict.ObjectType, ": ")
		if err := x.Step(s); err != nil {
			return err
		}
	}
	s.depth--
	s.newline()
	s.sep(dict.ObjectType, "}")
	return nil
}
