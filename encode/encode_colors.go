package encode

import (
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type MarkupColorable struct {
	Type markup.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
	Markup  map[MarkupColorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Markup:  map[MarkupColorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	mAble := MarkupColorable{Type: markup.ElementType, Attr: TagColor}
	colors.Markup[mAble] = color.RGB(74, 92, 138).SprintfFunc()
	mAble = MarkupColorable{Type: markup.AttributeType, Attr: FieldColor}
	colors.Markup[mAble] = color.RGB(196, 96, 16).SprintfFunc()
	mAble.Attr = SepColor
	colors.Markup[mAble] = color.RGB(255, 0, 196).SprintfFunc()
	mAble.Attr = ValueColor
	colors.Markup[mAble] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Markup[MarkupColorable{Type: markup.TextType, Attr: ValueColor}] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Markup[MarkupColorable{Type: markup.CDataType, Attr: ValueColor}] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Markup[MarkupColorable{Type: markup.CommentType, Attr: CommentColor}] = color.BlueString

	for k, f := range colors.Map {
		colors.Map[k] = escapePercent(f)
	}
	for k, f := range colors.Markup {
		colors.Markup[k] = escapePercent(f)
	}
	return colors
}

func escapePercent(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) MarkupColor(t markup.Type, a ColorAttr, s string) string {
	f := c.Markup[MarkupColorable{Type: t, Attr: a}]
	if f == nil {
		f = c.Default
	}
	return f(s)
}
