// Package encode renders node trees back to document text.
//
// Encode serializes an object notation subtree and EncodeMarkup a markup
// subtree. Any node may be encoded, not only a root, and the output of
// either re-parses into an equal tree. Indentation defaults to two spaces
// per level; EncodeWire produces single line output.
//
//	root, _ := parse.Parse(src)
//	var buf bytes.Buffer
//	err := encode.Encode(root.Values[0], &buf, encode.Indent(4))
package encode
