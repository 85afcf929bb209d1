package bridge

import (
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"

	"go.lsp.dev/protocol"
)

const (
	MethodLoad      = "load"
	MethodClear     = "clear"
	MethodRows      = "rows"
	MethodData      = "data"
	MethodSerialize = "serialize"
	MethodPath      = "path"
	MethodCount     = "count"
	MethodLookup    = "lookup"
	MethodFind      = "find"
	MethodRoleNames = "roleNames"

	NotifyReset = "tree/reset"
	NotifyError = "tree/error"
)

type FormatParams struct {
	Format format.Format `json:"format"`
}

type LoadParams struct {
	Format format.Format `json:"format"`
	Text   string        `json:"text"`
}

type LoadResult struct {
	OK         bool                 `json:"ok"`
	TotalNodes int                  `json:"totalNodes"`
	Diagnostic *protocol.Diagnostic `json:"diagnostic,omitempty"`
}

type IndexParams struct {
	Format format.Format `json:"format"`
	Index  model.Index   `json:"index"`
}

type DataParams struct {
	Format format.Format `json:"format"`
	Index  model.Index   `json:"index"`
	Role   string        `json:"role"`
}

type LookupParams struct {
	Format format.Format `json:"format"`
	Path   string        `json:"path"`
}

type FindParams struct {
	Format format.Format `json:"format"`
	Expr   string        `json:"expr"`
}

type ResetNotice struct {
	Format     format.Format `json:"format"`
	TotalNodes int           `json:"totalNodes"`
}

type ErrorNotice struct {
	Format     format.Format       `json:"format"`
	Diagnostic protocol.Diagnostic `json:"diagnostic"`
}

// Diagnostic converts a load failure to an LSP diagnostic. LSP positions
// are 0-based.
func Diagnostic(err *parse.Error) protocol.Diagnostic {
	pos := protocol.Position{
		Line:      uint32(max(err.Line-1, 0)),
		Character: uint32(max(err.Col-1, 0)),
	}
	code := "syntax"
	if err.Kind == parse.ErrCapacity {
		code = "capacity"
	}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: protocol.DiagnosticSeverityError,
		Code:     code,
		Source:   "treeview",
		Message:  err.Msg,
	}
}
