// Package zapx adapts errorsx errors to zap's structured logging.
//
// The core errorsx package deliberately contains no logging; this adapter
// turns an *errorsx.Error into a zap Field so top-level handlers can log the
// structured form instead of the rendered string.
package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Revanthshalon/toolkit/errorsx"
)

type errorMarshaler struct {
	err *errorsx.Error
}

// Error wraps an error for zap's structured logging. It returns a Field that
// nests error information under the "error" key.
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
// Example:
//
//	err := errorsx.Wrap(dbErr, "failed to load profile")
//	logger.Error("request failed", zapx.Error(err))
func Error(err error) zapcore.Field {
	if e, ok := errorsx.From(err); ok {
		return zap.Object("error", &errorMarshaler{err: e})
	}
	return zap.Object("error", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("message", err.Error())
		return nil
	}))
}

// ErrorInline is like Error but expands the fields at the top level of the
// log entry instead of nesting them under "error".
func ErrorInline(err error) zapcore.Field {
	if e, ok := errorsx.From(err); ok {
		return zap.Inline(&errorMarshaler{err: e})
	}
	return zap.Inline(zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("message", err.Error())
		return nil
	}))
}

func (m *errorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", m.err.Message())
	_ = enc.AddObject("location", locationMarshaler{loc: m.err.Location()})

	if ctx := m.err.Context(); len(ctx) > 0 {
		_ = enc.AddArray("context", contextMarshaler{entries: ctx})
	}

	if code, ok := m.err.StatusCode(); ok {
		enc.AddUint32("status_code", code)
	}
	if status, ok := m.err.Status(); ok {
		enc.AddString("status", status)
	}

	if cause := m.err.Unwrap(); cause != nil {
		_ = enc.AddArray("causes", causesMarshaler{cause: cause})
	}

	return nil
}

type locationMarshaler struct {
	loc errorsx.Location
}

func (m locationMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", m.loc.File)
	enc.AddInt("line", m.loc.Line)
	return nil
}

type contextMarshaler struct {
	entries []string
}

func (m contextMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, entry := range m.entries {
		enc.AppendString(entry)
	}
	return nil
}

type causesMarshaler struct {
	cause error
}

func (m causesMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for cause := m.cause; cause != nil; {
		if e, ok := cause.(*errorsx.Error); ok {
			enc.AppendString(e.Message())
			cause = e.Unwrap()
			continue
		}
		enc.AppendString(cause.Error())
		u, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = u.Unwrap()
	}
	return nil
}
