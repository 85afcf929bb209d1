package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax classifies documents rejected by the scanner or the
	// markup reader.
	ErrSyntax = errors.New("syntax error")
	// ErrCapacity classifies documents exceeding the node or depth
	// ceiling.
	ErrCapacity = errors.New("capacity exceeded")
)

// Error is the single structured failure of a load. Line and Col are 1-based
// positions in the source text. Limit is set for capacity errors.
type Error struct {
	Kind  error
	Msg   string
	Line  int
	Col   int
	Limit int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line=%d, col=%d)", e.Msg, e.Line, e.Col)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func syntaxErr(line, col int, msg string, args ...any) *Error {
	return &Error{Kind: ErrSyntax, Msg: fmt.Sprintf(msg, args...), Line: line, Col: col}
}

func nodeLimitErr(limit, line, col int) *Error {
	return &Error{
		Kind:  ErrCapacity,
		Msg:   fmt.Sprintf("document exceeds the maximum of %d nodes", limit),
		Line:  line,
		Col:   col,
		Limit: limit,
	}
}

func depthLimitErr(limit, line, col int) *Error {
	return &Error{
		Kind:  ErrCapacity,
		Msg:   fmt.Sprintf("document exceeds the maximum nesting depth of %d", limit),
		Line:  line,
		Col:   col,
		Limit: limit,
	}
}

// AsError extracts the structured load error from err.
func AsError(err error) (*Error, bool) {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
