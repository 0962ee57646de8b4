package errorsx

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single call site in a captured backtrace.
type Frame struct {
	// Function is the fully-qualified function name (pkg.Func or method).
	Function string

	// File is the absolute file path as provided by the runtime.
	File string

	// Line is the line number within File.
	Line int
}

// String renders the frame as "function\n\tfile:line".
func (f Frame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// Stack is a captured backtrace, most recent call first. It is opaque in the
// sense that callers should treat it as text-renderable only; the frame data
// exists for structured log adapters.
type Stack []Frame

// String renders the stack one frame per line pair, most recent call first.
func (s Stack) String() string {
	if len(s) == 0 {
		return ""
	}
	frames := make([]string, len(s))
	for i, f := range s {
		frames[i] = f.String()
	}
	return strings.Join(frames, "\n")
}

// maxStackDepth bounds the stack walk. Deep enough for meaningful context
// without excessive work on exceptional paths.
const maxStackDepth = 64

// captureStack walks the current goroutine's stack once and resolves the
// frames. skip counts frames to omit before recording, with the same
// semantics as runtime.Caller: skip 1 starts at the caller of captureStack.
// Frames are resolved through runtime.CallersFrames so inlined calls are
// expanded correctly.
func captureStack(skip int) Stack {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}
