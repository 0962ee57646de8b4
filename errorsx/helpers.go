package errorsx

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// From extracts the first *Error in err's chain.
// Returns (nil, false) if err is nil or the chain contains no *Error.
//
// Example:
//
//	if e, ok := errorsx.From(err); ok {
//	    log.Println(e.Location())
//	}
func From(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetStatusCode extracts the advisory status code from the outermost *Error
// in err's chain. Returns (0, false) if err is nil, the chain contains no
// *Error, or no status code was set.
//
// Example:
//
//	if code, ok := errorsx.GetStatusCode(err); ok {
//	    w.WriteHeader(int(code))
//	}
func GetStatusCode(err error) (uint32, bool) {
	if e, ok := From(err); ok {
		return e.StatusCode()
	}
	return 0, false
}

// GetStatus extracts the advisory status string from the outermost *Error in
// err's chain. Returns ("", false) if err is nil, the chain contains no
// *Error, or no status was set.
func GetStatus(err error) (string, bool) {
	if e, ok := From(err); ok {
		return e.Status()
	}
	return "", false
}
