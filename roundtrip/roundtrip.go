// Package roundtrip checks that serializing a loaded document and loading
// the output again reproduces the same tree.
package roundtrip

import (
	"fmt"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/libdiff"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"
)

type Result struct {
	Format format.Format
	// Output is the serialized root of the loaded source.
	Output string
	// Equal reports whether the reloaded output matches the source tree.
	Equal bool
	// Changes lists node differences when Equal is false.
	Changes []libdiff.Change
	// Lines diffs the source text against Output.
	Lines []libdiff.Line
	Nodes int
}

// Check loads src, serializes its root, loads the output and compares the
// two trees. A source that fails to load returns its *parse.Error.
func Check(f format.Format, src []byte, opts ...model.Option) (*Result, error) {
	switch f {
	case format.JSONFormat:
		return check(model.NewJSON(opts...), model.NewJSON(opts...), f, src, ir.Equal, libdiff.Tree)
	case format.XMLFormat:
		return check(model.NewMarkup(opts...), model.NewMarkup(opts...), f, src, markup.Equal, libdiff.Markup)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

func check[N any](first, second *model.Model[N], f format.Format, src []byte,
	equal func(a, b N) bool, changes func(a, b N) []libdiff.Change) (*Result, error) {

	if !first.Load(src) {
		return nil, first.LastError()
	}
	res := &Result{Format: f, Nodes: first.TotalNodeCount(), Equal: true}
	if !first.HasTree() {
		res.Lines = libdiff.Lines(string(src), "")
		return res, nil
	}
	out, err := first.SerializeNode(model.Index{})
	if err != nil {
		return nil, err
	}
	res.Output = out
	res.Lines = libdiff.Lines(string(src), out)
	if !second.Load([]byte(out)) {
		return nil, fmt.Errorf("reloading serialized output: %w", second.LastError())
	}
	a, err := first.Node(model.Index{})
	if err != nil {
		return nil, err
	}
	b, err := second.Node(model.Index{})
	if err != nil {
		return nil, err
	}
	if !equal(a, b) {
		res.Equal = false
		res.Changes = changes(a, b)
	}
	if second.TotalNodeCount() != res.Nodes {
		res.Equal = false
	}
	return res, nil
}
