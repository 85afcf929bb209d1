// Package parse loads object notation and markup documents into node trees.
//
// Both loaders are all or nothing: a document either loads completely or
// yields a single *Error carrying a 1-based line and column. Loads are
// bounded by a node ceiling, DefaultMaxNodes unless overridden with
// MaxNodes, and by a nesting depth limit.
package parse
