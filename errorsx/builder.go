package errorsx

import (
	"fmt"
	"runtime"
)

// Builder stages the fields of a future Error.
//
// A Builder is created by NewBuilder, driven by a single call chain, and
// consumed by Build. The fluent methods mutate the receiver in place and
// return it for chaining. A Builder is single-owner: it must not be shared
// across goroutines and must not be reused after Build.
type Builder struct {
	message    string
	location   Location
	context    []string
	source     error
	statusCode uint32
	status     string
	hasCode    bool
	hasStatus  bool
}

// NewBuilder starts a new error builder with the given message.
// The caller's file and line are recorded at this exact call, so the finished
// error points at the point the failure was first detected, not at any later
// annotation or the Build call.
//
// Example:
//
//	err := errorsx.NewBuilder("failed to process file").
//	    WithContext("processing user upload").
//	    WithSource(ioErr).
//	    WithStatusCode(500).
//	    Build()
func NewBuilder(message string) *Builder {
	return newBuilder(message, 3)
}

// newBuilder records the call site skip frames up the stack, counting like
// runtime.Caller from inside newBuilder: 2 is the caller of newBuilder, 3 is
// the caller of an exported constructor that called newBuilder directly.
func newBuilder(message string, skip int) *Builder {
	b := &Builder{message: message}
	if _, file, line, ok := runtime.Caller(skip - 1); ok {
		b.location = Location{File: file, Line: line}
	}
	return b
}

// WithContext appends a context annotation. Annotations are ordered,
// append-only, and rendered comma-joined; calling WithContext n times yields
// n entries in call order.
func (b *Builder) WithContext(context string) *Builder {
	b.context = append(b.context, context)
	return b
}

// WithSource attaches the error that caused this one, discarding any
// previously attached source. The value must be safe for concurrent reads
// once the built Error is shared.
func (b *Builder) WithSource(source error) *Builder {
	b.source = source
	return b
}

// WithStatusCode stores an advisory status code verbatim. No range validation
// is performed; a later call overwrites the previous value.
func (b *Builder) WithStatusCode(statusCode uint32) *Builder {
	b.statusCode = statusCode
	b.hasCode = true
	return b
}

// WithStatus stores an advisory status string verbatim. A later call
// overwrites the previous value.
func (b *Builder) WithStatus(status string) *Builder {
	b.status = status
	b.hasStatus = true
	return b
}

// Build captures a full stack backtrace at this instant and returns the
// immutable Error. This is the only operation in the package that walks the
// stack; it must be called exactly once per builder.
func (b *Builder) Build() *Error {
	return b.build(3)
}

func (b *Builder) build(skip int) *Error {
	return &Error{
		message:    b.message,
		location:   b.location,
		backtrace:  captureStack(skip),
		context:    b.context,
		source:     b.source,
		statusCode: b.statusCode,
		status:     b.status,
		hasCode:    b.hasCode,
		hasStatus:  b.hasStatus,
	}
}

// New creates an Error with just a message. It is shorthand for
// NewBuilder(message).Build() with no annotations; the recorded location is
// the New call site.
//
// Example:
//
//	err := errorsx.New("user not found")
func New(message string) *Error {
	return newBuilder(message, 3).build(3)
}

// Newf creates an Error with a formatted message.
//
// Example:
//
//	err := errorsx.Newf("invalid chunk length: %d", n)
func Newf(format string, args ...any) *Error {
	return newBuilder(fmt.Sprintf(format, args...), 3).build(3)
}
