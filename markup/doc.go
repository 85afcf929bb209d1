// Package markup provides the in-memory tree for markup (XML) documents.
//
// A tree always starts at a synthetic RootType node whose children are the
// document element and any top level comments. Element nodes keep their
// attributes as AttributeType children ahead of their content, so a tree
// view can expand attributes like any other child.
//
// Path returns a location path in the style of XPath abbreviated syntax:
//
//	/a/b[0]/@id
//	/a/text()
//	/a/comment()
package markup
