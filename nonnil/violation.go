package nonnil

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"go.uber.org/atomic"
)

// ErrNilValue is the sentinel error behind every Violation; test for it
// with errors.Is.
var ErrNilValue = errors.New("nil pointer-like value")

// Violation describes a single failed non-null check: the message and the
// source location of the offending construction or dereference.
type Violation struct {
	File    string
	Line    int
	Message string
}

// Error returns the formatted violation message, including the source
// location when one was captured.
func (v *Violation) Error() string {
	if v.File == "" {
		return "nonnil: " + v.Message
	}

	return fmt.Sprintf("nonnil: %s at %s:%d", v.Message, v.File, v.Line)
}

// Unwrap returns the sentinel error for errors.Is.
func (v *Violation) Unwrap() error {
	return ErrNilValue
}

// Handler receives every violation. The process-wide handler decides the
// failure policy: the default logs the violation and panics with it,
// treating a nil where a non-null was promised as a programming error,
// not a recoverable condition. Tests and embedders may install a handler
// that collects instead; a handler that returns normally resumes the
// caller with an invalid handle, which the deref guard will catch later.
type Handler func(*Violation)

// handler holds the installed Handler. Using atomic.Value keeps
// installation and lookup safe under concurrent construction.
var handler atomic.Value //nolint:gochecknoglobals

// SetHandler installs the process-wide violation handler. Passing nil
// restores the default log-and-panic behavior.
func SetHandler(h Handler) {
	if h == nil {
		h = defaultHandler
	}

	handler.Store(h)
}

func currentHandler() Handler {
	if h, ok := handler.Load().(Handler); ok {
		return h
	}

	return defaultHandler
}

func defaultHandler(v *Violation) {
	slog.Error("non-null invariant violated",
		"message", v.Message,
		"file", v.File,
		"line", v.Line)

	panic(v)
}

// Fail reports a violation on behalf of a pointer-like implementation
// (for example an expired self-handle), attributed to Fail's caller.
func Fail(msg string) {
	fail(failSkipCaller, msg)
}

// failSkipCaller is the runtime.Caller skip depth that attributes a
// violation to the caller of the exported function that detected it.
const failSkipCaller = 2

func fail(skip int, msg string) {
	v := &Violation{Message: msg}

	if _, file, line, ok := runtime.Caller(skip); ok {
		v.File = file
		v.Line = line
	}

	currentHandler()(v)
}
