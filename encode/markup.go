package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;",
	)
)

// EncodeMarkup writes node and its descendants as markup text, without a
// trailing newline. A Root writes each top level child on its own line; an
// Attribute writes name="value". A nil node writes nothing.
func EncodeMarkup(node *markup.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return nil
	}
	return encodeMarkup(node, w, newEncState(opts))
}

func encodeMarkup(n *markup.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case markup.RootType:
		for i, c := range n.Children {
			if i > 0 {
				if err := writeNL(w, es); err != nil {
					return err
				}
			}
			if err := encodeMarkup(c, w, es); err != nil {
				return err
			}
		}
		return nil
	case markup.ElementType:
		return encodeElement(n, w, es)
	case markup.AttributeType:
		return writeAttr(n, w, es)
	case markup.TextType:
		return writeMarkup(w, es, n.Type, ValueColor, textEscaper.Replace(n.Value))
	case markup.CDataType:
		v := strings.ReplaceAll(n.Value, "]]>", "]]]]><![CDATA[>")
		return writeMarkup(w, es, n.Type, ValueColor, "<![CDATA["+v+"]]>")
	case markup.CommentType:
		return writeMarkup(w, es, n.Type, CommentColor, "<!--"+n.Value+"-->")
	default:
		return fmt.Errorf("%w: unknown node type %d at %s", ErrEncoding, n.Type, n.Path())
	}
}

func encodeElement(n *markup.Node, w io.Writer, es *EncState) error {
	qn := n.QName()
	if err := writeMarkup(w, es, n.Type, TagColor, "<"+qn); err != nil {
		return err
	}
	for _, a := range n.Attrs() {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := writeAttr(a, w, es); err != nil {
			return err
		}
	}
	content := n.Content()
	switch {
	case len(content) == 0:
		return writeMarkup(w, es, n.Type, TagColor, "/>")
	case len(content) == 1 && content[0].Type.IsCharData():
		if err := writeMarkup(w, es, n.Type, TagColor, ">"); err != nil {
			return err
		}
		if err := encodeMarkup(content[0], w, es); err != nil {
			return err
		}
		return writeMarkup(w, es, n.Type, TagColor, "</"+qn+">")
	}
	if err := writeMarkup(w, es, n.Type, TagColor, ">"); err != nil {
		return err
	}
	es.depth++
	for _, c := range content {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeMarkup(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeMarkup(w, es, n.Type, TagColor, "</"+qn+">")
}

func writeAttr(a *markup.Node, w io.Writer, es *EncState) error {
	if err := writeMarkup(w, es, a.Type, FieldColor, a.QName()); err != nil {
		return err
	}
	if err := writeMarkup(w, es, a.Type, SepColor, "="); err != nil {
		return err
	}
	return writeMarkup(w, es, a.Type, ValueColor, `"`+attrEscaper.Replace(a.Value)+`"`)
}

func writeMarkup(w io.Writer, es *EncState, t markup.Type, a ColorAttr, v string) error {
	if es.MarkupColor != nil {
		v = es.MarkupColor(t, a, v)
	}
	return writeString(w, v)
}
