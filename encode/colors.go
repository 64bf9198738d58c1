package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/jsondom/jsondom/arena"
)

type Colorable struct {
	Kind arena.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range arena.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: arena.Object, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: arena.Object, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Kind = arena.Null
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = arena.Bool
	colors.Map[able] = color.CyanString
	able.Kind = arena.Int
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = arena.Uint
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = arena.Float
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = arena.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k arena.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k arena.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func (es *encState) color(k arena.Kind, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(k, a, s)
}
