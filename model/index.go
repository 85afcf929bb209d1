package model

import (
	"fmt"

	"github.com/segmentio/encoding/json"
)

// Index addresses one node of the tree loaded at a given generation.
// The zero Index is invalid and stands for the root.
type Index struct {
	gen    uint64
	handle int
	row    int
	column int
}

func (ix Index) IsValid() bool { return ix.handle > 0 }
func (ix Index) Row() int      { return ix.row }
func (ix Index) Column() int   { return ix.column }

func (ix Index) String() string {
	if !ix.IsValid() {
		return "Index(root)"
	}
	return fmt.Sprintf("Index(g=%d h=%d r=%d c=%d)", ix.gen, ix.handle, ix.row, ix.column)
}

type indexJSON struct {
	Gen    uint64 `json:"g"`
	Handle int    `json:"h"`
	Row    int    `json:"r"`
	Column int    `json:"c"`
}

func (ix Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(indexJSON{Gen: ix.gen, Handle: ix.handle, Row: ix.row, Column: ix.column})
}

func (ix *Index) UnmarshalJSON(d []byte) error {
	if string(d) == "null" {
		*ix = Index{}
		return nil
	}
	var v indexJSON
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	*ix = Index{gen: v.Gen, handle: v.Handle, row: v.Row, column: v.Column}
	return nil
}
