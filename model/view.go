package model

import (
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
)

// View is the family independent surface of a Model.
type View interface {
	Format() format.Format
	Load(text []byte) bool
	Clear()
	HasTree() bool
	TotalNodeCount() int
	LastError() *parse.Error
	Generation() uint64

	Index(row, column int, parent Index) (Index, error)
	Parent(ix Index) (Index, error)
	RowCount(parent Index) (int, error)
	ColumnCount(parent Index) int
	Data(ix Index, role Role) (any, error)
	Row(ix Index) (Row, error)
	Rows(parent Index) ([]Row, error)

	SerializeNode(ix Index) (string, error)
	GetPath(ix Index) (string, error)
	Lookup(path string) (Index, error)
	Visit(f func(Index) error) error
	Subscribe(f func(Event)) func()
}

var (
	_ View = (*Model[*ir.Node])(nil)
	_ View = (*Model[*markup.Node])(nil)
)

// Row carries every role of one node.
type Row struct {
	Index      Index  `json:"index"`
	Key        string `json:"key"`
	Value      string `json:"value"`
	Type       string `json:"type"`
	Path       string `json:"path"`
	ChildCount int    `json:"childCount"`
	Expandable bool   `json:"isExpandable"`
	LastChild  bool   `json:"isLastChild"`
	Prefix     string `json:"namespacePrefix,omitempty"`
	Depth      int    `json:"depth"`
}
