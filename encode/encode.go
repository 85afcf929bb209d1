package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/fabceolin/airgap-json-formatter-sub000/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	Color       func(ir.Type, ColorAttr, string) string
	MarkupColor func(markup.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node and its descendants as object notation text, without
// a trailing newline. A nil node writes nothing.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return nil
	}
	return encode(node, w, newEncState(opts))
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeContainer(node, w, es, "{", "}")
	case ir.ArrayType:
		return encodeContainer(node, w, es, "[", "]")
	case ir.StringType:
		return writeValue(w, es, node.Type, token.Quote(node.String))
	case ir.NumberType:
		if node.Float64 != nil && (math.IsInf(*node.Float64, 0) || math.IsNaN(*node.Float64)) {
			return fmt.Errorf("%w: non-finite number at %s", ErrEncoding, node.Path())
		}
		return writeValue(w, es, node.Type, node.NumberText())
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	default:
		return fmt.Errorf("%w: unknown node type %d at %s", ErrEncoding, node.Type, node.Path())
	}
}

func encodeContainer(node *ir.Node, w io.Writer, es *EncState, lb, rb string) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, node.Type, lb+rb)
	}
	if err := writeSep(w, es, node.Type, lb); err != nil {
		return err
	}
	es.depth++
	for i, child := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			if err := writeField(w, es, child); err != nil {
				return err
			}
		}
		if err := encode(child, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, rb)
}

func writeField(w io.Writer, es *EncState, child *ir.Node) error {
	field := token.Quote(child.ParentField)
	if es.Color != nil {
		field = es.Color(child.Type, FieldColor, field)
	}
	if err := writeString(w, field); err != nil {
		return err
	}
	sep := ": "
	if es.wire {
		sep = ":"
	}
	return writeSep(w, es, ir.ObjectType, sep)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, SepColor, v)
	}
	return writeString(w, v)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
