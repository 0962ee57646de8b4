// Package errorsx provides structured diagnostic errors.
//
// This package extends Go's standard error handling with call-site provenance,
// on-demand stack backtraces, ordered context annotations, cause wrapping, and
// advisory status metadata. It maintains full compatibility with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Call-site location captured when the builder is created, so it points at
//     the true origin of the failure rather than a later annotation point
//   - Full stack backtrace captured once, at Build time
//   - Ordered, append-only context annotations for intermediate layers
//   - Cause wrapping that preserves the error chain
//   - Advisory status code and status string for transport-layer translation
//   - JSON serialization for API responses
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (a built Error never changes; safe for concurrent reads)
//   - No fallible paths (constructing an error value cannot itself fail)
//   - No logging, transport, or policy in the core; adapters live in
//     subpackages (zapx, zerologx)
//
// # Quick Start
//
// Creating errors:
//
//	// Simple error
//	err := errorsx.New("file not found")
//
//	// Full builder chain
//	err := errorsx.NewBuilder("failed to process file").
//	    WithContext("processing user upload").
//	    WithSource(ioErr).
//	    WithStatusCode(500).
//	    WithStatus("Internal Server Error").
//	    Build()
//
// Wrapping errors as they propagate:
//
//	data, err := store.Load(ctx, id)
//	if err != nil {
//	    return errorsx.Wrap(err, "failed to load profile")
//	}
//
// Reading status metadata at the top-level handler:
//
//	if code, ok := errorsx.GetStatusCode(err); ok {
//	    w.WriteHeader(int(code))
//	}
//
// # Location and Backtrace
//
// The location (file and line) is fixed the moment NewBuilder or New is
// called. Annotating the builder afterwards, or wrapping the built error
// inside another record, never moves it. The backtrace is captured exactly
// once, inside Build, which is the only relatively expensive operation in the
// package; a builder must not be reused after Build.
//
// # Status Metadata
//
// StatusCode and Status carry no enforced semantics. They are stored
// verbatim, unvalidated, so an outer layer can decide how to present the
// failure externally. Repeated setter calls overwrite the previous value
// rather than accumulating.
//
// # Rendering
//
// Error() renders the canonical human-readable form:
//
//	Message:<message>,
//	Location: (at: <file>, line_no:<line>),
//	Context: <ctx1>,<ctx2>,
//	Source:
//	 <backtrace>
//
// Consumers wanting machine-readable structure must use the accessors (or
// ToResponse) rather than parse the rendered string.
package errorsx
