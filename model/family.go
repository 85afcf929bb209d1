package model

import (
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
)

// Family adapts the node type of one document grammar to a Model.
type Family[N any] interface {
	Format() format.Format
	// Parse returns the root and the number of nodes. A count of zero
	// means an empty document.
	Parse(d []byte, opts ...parse.ParseOption) (N, int, error)
	Children(n N) []N
	Key(n N) string
	Value(n N) string
	Type(n N) string
	Prefix(n N) string
	Path(n N) string
	Encode(n N, w io.Writer, opts ...encode.EncodeOption) error
}

type jsonFamily struct{}

func (jsonFamily) Format() format.Format { return format.JSONFormat }

func (jsonFamily) Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, int, error) {
	n := 0
	root, err := parse.Parse(d, append(opts[:len(opts):len(opts)], parse.NodeCount(&n))...)
	return root, n, err
}

func (jsonFamily) Children(n *ir.Node) []*ir.Node { return n.Values }
func (jsonFamily) Key(n *ir.Node) string          { return n.Key() }
func (jsonFamily) Value(n *ir.Node) string        { return n.DisplayValue() }
func (jsonFamily) Type(n *ir.Node) string         { return n.Type.String() }
func (jsonFamily) Prefix(*ir.Node) string         { return "" }
func (jsonFamily) Path(n *ir.Node) string         { return n.Path() }

func (jsonFamily) Encode(n *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(n, w, opts...)
}

type markupFamily struct{}

func (markupFamily) Format() format.Format { return format.XMLFormat }

func (markupFamily) Parse(d []byte, opts ...parse.ParseOption) (*markup.Node, int, error) {
	n := 0
	root, err := parse.ParseMarkup(d, append(opts[:len(opts):len(opts)], parse.NodeCount(&n))...)
	return root, n, err
}

func (markupFamily) Children(n *markup.Node) []*markup.Node { return n.Children }
func (markupFamily) Key(n *markup.Node) string              { return n.Key() }
func (markupFamily) Type(n *markup.Node) string             { return n.Type.String() }
func (markupFamily) Prefix(n *markup.Node) string           { return n.Prefix }
func (markupFamily) Path(n *markup.Node) string             { return n.Path() }

func (markupFamily) Value(n *markup.Node) string {
	switch n.Type {
	case markup.RootType, markup.ElementType:
		return ""
	default:
		return n.Value
	}
}

func (markupFamily) Encode(n *markup.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.EncodeMarkup(n, w, opts...)
}
