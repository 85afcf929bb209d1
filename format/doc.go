// Package format names the document grammars the tree engine understands.
//
// JSONFormat documents load into [github.com/fabceolin/airgap-json-formatter-sub000/ir]
// trees, XMLFormat documents into
// [github.com/fabceolin/airgap-json-formatter-sub000/markup] trees.
package format
