// Package zerologx adapts errorsx errors to zerolog's structured logging.
//
// The core errorsx package deliberately contains no logging; this adapter
// turns an *errorsx.Error into a zerolog object marshaler so top-level
// handlers can log the structured form instead of the rendered string.
package zerologx

import (
	"github.com/rs/zerolog"

	"github.com/Revanthshalon/toolkit/errorsx"
)

type errorMarshaler struct {
	err *errorsx.Error
}

type stdErrorMarshaler struct {
	err error
}

// Error wraps an error for zerolog's structured logging. The returned
// marshaler can be used with Object() or EmbedObject().
//
// For errorsx errors (anywhere in the chain) the object contains:
//   - message: the error message
//   - location: the origin call site with file and line
//   - context: the ordered annotations (if present)
//   - status_code, status: advisory metadata (if present)
//   - causes: messages of the wrapped chain, outermost first (if present)
//
// Plain errors get a message-only object.
//
// Example with Object() (nested under "error" key):
//
//	err := errorsx.Wrap(dbErr, "failed to load profile")
//	logger.Error().Object("error", zerologx.Error(err)).Msg("request failed")
//
// Example with EmbedObject() (fields at top level):
//
//	logger.Error().EmbedObject(zerologx.Error(err)).Msg("request failed")
func Error(err error) zerolog.LogObjectMarshaler {
	if e, ok := errorsx.From(err); ok {
		return &errorMarshaler{err: e}
	}
	return &stdErrorMarshaler{err: err}
}

func (m *errorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	loc := m.err.Location()
	e.Str("message", m.err.Message())
	e.Object("location", locationMarshaler{loc: loc})

	if ctx := m.err.Context(); len(ctx) > 0 {
		arr := zerolog.Arr()
		for _, entry := range ctx {
			arr.Str(entry)
		}
		e.Array("context", arr)
	}

	if code, ok := m.err.StatusCode(); ok {
		e.Uint32("status_code", code)
	}
	if status, ok := m.err.Status(); ok {
		e.Str("status", status)
	}

	if cause := m.err.Unwrap(); cause != nil {
		arr := zerolog.Arr()
		for _, msg := range causeMessages(cause) {
			arr.Str(msg)
		}
		e.Array("causes", arr)
	}
}

func (m *stdErrorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", m.err.Error())
}

type locationMarshaler struct {
	loc errorsx.Location
}

func (m locationMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("file", m.loc.File)
	e.Int("line", m.loc.Line)
}

// causeMessages flattens the cause chain into messages, outermost first.
func causeMessages(cause error) []string {
	var out []string
	for cause != nil {
		if e, ok := cause.(*errorsx.Error); ok {
			out = append(out, e.Message())
			cause = e.Unwrap()
			continue
		}
		out = append(out, cause.Error())
		u, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = u.Unwrap()
	}
	return out
}
