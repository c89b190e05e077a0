package errors

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer

	// Limiter, if set, bounds how many errors and panics are logged. Entries
	// over the limit are counted and the count is printed with the next
	// entry that gets through. Fatal errors are never limited.
	Limiter *rate.Limiter

	dropped atomic.Int64
}

// Default log rate: a burst of 20, then 10 entries per second.
const (
	defaultLogRate  = rate.Limit(10)
	defaultLogBurst = 20
)

// NewLogHandler creates the handler installed by default: non-verbose,
// writing to stderr, with the default rate limit.
func NewLogHandler() *LogHandler {
	return &LogHandler{Limiter: rate.NewLimiter(defaultLogRate, defaultLogBurst)}
}

// admit reports whether an entry may be written, printing the number of
// suppressed entries first when some were dropped.
func (h *LogHandler) admit(w io.Writer) bool {
	if h.Limiter == nil {
		return true
	}
	if !h.Limiter.Allow() {
		h.dropped.Add(1)
		return false
	}
	if n := h.dropped.Swap(0); n > 0 {
		fmt.Fprintf(w, "[finestra] %d error(s) suppressed\n", n)
	}
	return true
}

// Dropped returns the number of entries suppressed since the last one
// that was written.
func (h *LogHandler) Dropped() int64 {
	return h.dropped.Load()
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	w := h.out()
	if !h.admit(w) {
		return
	}
	if h.Verbose {
		fmt.Fprintf(w, "[finestra error] %s [%s]", err.Op, err.Kind)
		if err.View != 0 {
			fmt.Fprintf(w, " view=%d", err.View)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[finestra error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if !h.admit(w) {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(w, "[finestra panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[finestra panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleFatal logs a FatalError. Stack traces are always printed since the
// process is about to unwind.
func (h *LogHandler) HandleFatal(err *FatalError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[finestra fatal] %s [%s]: %s\n", err.Op, err.Kind, err.Msg)
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
