package errorsx

import "fmt"

// Wrap wraps an error as the source of a new Error with its own message. The
// original error stays reachable through Unwrap and compatible with errors.Is
// and errors.As, so intermediate layers can add context without losing the
// origin. The recorded location is the Wrap call site.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := store.Load(ctx, id)
//	if err != nil {
//	    return errorsx.Wrap(err, "failed to load profile")
//	}
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return newBuilder(message, 3).WithSource(err).build(3)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return errorsx.Wrapf(err, "validation failed for field %s", name)
//	}
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return newBuilder(fmt.Sprintf(format, args...), 3).WithSource(err).build(3)
}
