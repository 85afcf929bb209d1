package libdiff

import (
	"strconv"

	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one node level difference. Path addresses the node in the
// tree it was taken from: the old tree for Delete and Replace, the new one
// for Insert.
type Change struct {
	Op   Op     `json:"op"`
	Path string `json:"path"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type differ[N any] struct {
	children func(N) []N
	summary  func(N) string
	path     func(N) string
	text     func(N) string
}

// we give each distinct child summary a rune, diff the rune sequences of
// the two child lists, recurse into matching containers and report
// unmatched children. A delete directly followed by an insert is reported
// as a replace.
func (d *differ[N]) diff(from, to N, res []Change) []Change {
	m := map[string]rune{}
	fromKids, toKids := d.children(from), d.children(to)
	fromRunes := d.runes(m, fromKids)
	toRunes := d.runes(m, toKids)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	delIndex := -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: d.path(fromKids[fi]), From: d.text(fromKids[fi])})
				delIndex = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = -1
			for range n {
				res = d.diff(fromKids[fi], toKids[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if delIndex >= 0 && delIndex == len(res)-1 {
					res[delIndex].Op = Replace
					res[delIndex].To = d.text(toKids[ti])
				} else {
					res = append(res, Change{Op: Insert, Path: d.path(toKids[ti]), To: d.text(toKids[ti])})
				}
				delIndex = -1
				ti++
			}
		}
	}
	return res
}

func (d *differ[N]) runes(m map[string]rune, kids []N) []rune {
	rs := make([]rune, len(kids))
	for i, k := range kids {
		sum := d.summary(k)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

var treeDiffer = &differ[*ir.Node]{
	children: func(n *ir.Node) []*ir.Node { return n.Values },
	summary:  summaryStr,
	path:     (*ir.Node).Path,
	text: func(n *ir.Node) string {
		return encode.MustString(n, encode.EncodeWire(true))
	},
}

func summaryStr(node *ir.Node) string {
	key := strconv.Quote(node.ParentField) + ":" + node.Type.String()
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return key
	case ir.BoolType:
		return key + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return key + "-" + node.String
	default:
		return key + "-" + node.NumberText()
	}
}

// Tree lists the differences between two object notation trees.
func Tree(from, to *ir.Node) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return []Change{{Op: Insert, Path: ir.RootPath, To: treeDiffer.text(to)}}
	case to == nil:
		return []Change{{Op: Delete, Path: ir.RootPath, From: treeDiffer.text(from)}}
	case summaryStr(from) != summaryStr(to):
		return []Change{{Op: Replace, Path: ir.RootPath, From: treeDiffer.text(from), To: treeDiffer.text(to)}}
	}
	return treeDiffer.diff(from, to, nil)
}

var markupDiffer = &differ[*markup.Node]{
	children: func(n *markup.Node) []*markup.Node { return n.Children },
	summary:  markupSummary,
	path:     (*markup.Node).Path,
	text: func(n *markup.Node) string {
		return encode.MustStringMarkup(n, encode.EncodeWire(true))
	},
}

func markupSummary(n *markup.Node) string {
	switch n.Type {
	case markup.RootType, markup.ElementType:
		return n.Type.String() + "-" + n.QName()
	default:
		return n.Type.String() + "-" + n.QName() + "=" + n.Value
	}
}

// Markup lists the differences between two markup trees.
func Markup(from, to *markup.Node) []Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return []Change{{Op: Insert, Path: "/", To: markupDiffer.text(to)}}
	case to == nil:
		return []Change{{Op: Delete, Path: "/", From: markupDiffer.text(from)}}
	}
	return markupDiffer.diff(from, to, nil)
}
