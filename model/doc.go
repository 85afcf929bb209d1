// Package model exposes a loaded document tree through a row and column
// addressed contract suited to lazily rendered tree views.
//
// A Model owns at most one tree. Load replaces it wholesale, parsing the new
// text completely before the old tree is dropped, and Clear empties it.
// Nodes are addressed by Index values which stay valid only until the next
// Load or Clear; queries with an older Index fail with ErrStaleIndex.
//
// The zero Index addresses the root. Its rows are the root's children, so a
// view shows the members of a top level object, or the document element of
// a markup document, as its first level.
//
// A Model does no locking. Callers must not overlap Load or Clear with any
// other call.
package model
