// Package libdiff compares documents, as text line by line and as trees
// child by child.
package libdiff
