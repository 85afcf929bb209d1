// Package token provides tokenization support for object notation (JSON).
//
// A [Scanner] pulls one [Token] at a time from a byte slice, so a caller can
// stop as soon as it has seen enough. [Tokenize] drains a scanner into a
// slice. Every token carries a [Pos] which resolves lazily to a 1-based
// line and column.
//
// String tokens keep their quoted source bytes; use [Token.String] or
// [QuotedToString] for the decoded value and [Quote] to produce a quoted
// literal.
package token
