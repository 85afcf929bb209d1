// Package bridge serves document models to a host process over JSON-RPC
// 2.0.
//
// Every request names a format, "json" or "xml", selecting one of two
// models. Requests are handled one at a time. Model events are sent as
// notifications before the reply of the request that caused them:
//
//	tree/reset  {"format", "totalNodes"}
//	tree/error  {"format", "diagnostic"}
//
// where diagnostic is an LSP Diagnostic with 0-based positions.
package bridge
