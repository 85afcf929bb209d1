package ir

import (
	"strconv"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/token"
)

// RootPath is the address of a document root.
const RootPath = "$"

// Path returns the accessor expression addressing y from its root, such as
// `$.a[1]` or `$["a b"].c`.
func (y *Node) Path() string {
	if y.Parent == nil {
		return RootPath
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path()
		if QuoteField(f) {
			return prefix + "[" + token.Quote(f) + "]"
		}
		return prefix + "." + f
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// QuoteField reports whether an object key needs the bracket form in a
// path.
func QuoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, ". []\"")
}
