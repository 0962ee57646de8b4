package errorsx

import (
	"fmt"
	"strings"
)

// Location identifies the source position where an error originated.
// It is captured when the builder is created, not when Build is called.
type Location struct {
	// File is the path of the source file, as reported by the runtime.
	File string

	// Line is the line number within File.
	Line int
}

// String renders the location in the canonical form used by Error.Error.
func (l Location) String() string {
	return fmt.Sprintf("(at: %s, line_no:%d)", l.File, l.Line)
}

// Error is an immutable snapshot of a failure.
//
// An Error is produced by Build (or the New/Wrap shortcuts) and never changes
// afterwards, so it may be freely shared for concurrent reads by multiple
// observers. It carries the original message, the call-site location captured
// at builder creation, a stack backtrace captured at Build, ordered context
// annotations, an optional wrapped cause, and optional advisory status
// metadata.
type Error struct {
	message    string
	location   Location
	backtrace  Stack
	context    []string
	source     error
	statusCode uint32
	status     string
	hasCode    bool
	hasStatus  bool
}

// Error returns the canonical human-readable rendering.
// Format:
//
//	Message:<message>,
//	Location: (at: <file>, line_no:<line>),
//	Context: <ctx1>,<ctx2>,
//	Source:
//	 <backtrace>
//
// Context entries are joined with a bare comma. The labels are always present
// even when no context was attached.
func (e *Error) Error() string {
	return fmt.Sprintf("Message:%s,\nLocation: %s,\nContext: %s,\nSource:\n %s",
		e.message, e.location, strings.Join(e.context, ","), e.backtrace)
}

// Message returns the original caller-supplied message.
func (e *Error) Message() string {
	return e.message
}

// Location returns the source position of the NewBuilder/New call that
// started this error.
func (e *Error) Location() Location {
	return e.location
}

// Backtrace returns the stack snapshot captured when the error was built.
func (e *Error) Backtrace() Stack {
	return e.backtrace
}

// Context returns the context annotations in the order they were attached.
// The returned slice is a defensive copy; mutating it does not affect the
// error. Returns nil if no context was attached.
func (e *Error) Context() []string {
	if e.context == nil {
		return nil
	}
	ctx := make([]string, len(e.context))
	copy(ctx, e.context)
	return ctx
}

// StatusCode returns the advisory status code and whether one was set.
// The value is stored verbatim; no range validation is performed.
func (e *Error) StatusCode() (uint32, bool) {
	return e.statusCode, e.hasCode
}

// Status returns the advisory status string and whether one was set.
func (e *Error) Status() (string, bool) {
	return e.status, e.hasStatus
}

// Unwrap returns the wrapped cause for errors.Is and errors.As compatibility.
// Returns nil if no source was attached.
func (e *Error) Unwrap() error {
	return e.source
}
