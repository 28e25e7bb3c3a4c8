package importer

import "fmt"

// ParseError is a stream-level CSV failure. It is terminal: the whole file
// is abandoned and the source object stays under the upload prefix so the
// triggering event can be retried.
type ParseError struct {
	Line int
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("csv parse failed at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csv parse failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// DispatchError is a per-row queue publish failure. It is logged and
// non-fatal: other rows keep dispatching and the file still completes.
type DispatchError struct {
	Line int
	Err  error
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed for row at line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error
func (e *DispatchError) Unwrap() error {
	return e.Err
}
