package debug

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/valtree/dict"
)

type Colorable struct {
	Type dict.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
)

// Colors maps a value type and role to a function decorating text.
// A nil *Colors decorates nothing.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string) string{},
	}
	for _, t := range dict.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = rgb(255, 0, 196)
	}
	able := Colorable{Attr: ValueColor}

	able.Type = dict.NullType
	colors.Map[able] = rgb(168, 0, 196)

	able.Type = dict.BoolType
	colors.Map[able] = fg(color.FgCyan)

	able.Type = dict.IntType
	colors.Map[able] = rgb(128, 216, 236)
	able.Type = dict.NumberType
	colors.Map[able] = rgb(128, 216, 236)

	able.Type = dict.StringType
	colors.Map[able] = rgb(8, 196, 16)
	able.Type = dict.BytesType
	colors.Map[able] = rgb(198, 198, 46)
	able.Type = dict.CallableType
	colors.Map[able] = rgb(96, 96, 96)

	able.Type = dict.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = rgb(128, 168, 196)
	able.Attr = SepColor
	colors.Map[able] = rgb(196, 128, 128)
	return colors
}

// ColorsFor returns NewColors when f is a terminal and nil otherwise.
func ColorsFor(f *os.File) *Colors {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

func rgb(r, g, b int) func(string) string {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return sprint(c)
}

func fg(a color.Attribute) func(string) string {
	c := color.New(a)
	c.EnableColor()
	return sprint(c)
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(t dict.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t dict.Type, a ColorAttr) func(string) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
