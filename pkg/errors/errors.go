// Package errors provides structured error handling for the Finestra framework.
//
// The framework distinguishes two classes of failure. Recoverable problems
// (a malformed bridge message, a missing configuration file) are described by
// [*Error] and sent to the global [ErrorHandler] via [Report]. Programming
// errors that leave the application's invariants untrustworthy, such as a
// poisoned state lock or a view identity registered twice, are described by
// [*FatalError] and raised with [Fatal], which reports the error and then
// panics.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPlatform indicates a native backend or bridge error.
	KindPlatform
	// KindParsing indicates an event decoding failure.
	KindParsing
	// KindInit indicates an initialization error.
	KindInit
	// KindDispatch indicates an event that could not be routed.
	KindDispatch
	// KindPanic indicates a panic inside an application callback.
	KindPanic
	// KindBuild indicates a failure while building the native view tree.
	KindBuild
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig

	// KindPoisoned indicates a lock whose holder panicked.
	KindPoisoned
	// KindUnsupported indicates a capability the active backend does not implement.
	KindUnsupported
	// KindExhausted indicates the view identity space ran out.
	KindExhausted
	// KindDuplicate indicates a second registration for the same view identity.
	KindDuplicate
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindInit:
		return "init"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindConfig:
		return "config"
	case KindPoisoned:
		return "poisoned"
	case KindUnsupported:
		return "unsupported"
	case KindExhausted:
		return "exhausted"
	case KindDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind are unrecoverable.
func (k ErrorKind) Fatal() bool {
	return k >= KindPoisoned
}

// Error represents a structured, recoverable error in the Finestra framework.
type Error struct {
	// Op is the operation that failed (e.g., "platform.Bridge.HandleEvent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View is the view identity involved, or zero.
	View uint32
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.View != 0 {
		return fmt.Sprintf("%s [%s] view=%d: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a panic raised by an application callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Dispatcher.DispatchEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// FatalError represents a programming error after which the framework
// refuses to continue.
type FatalError struct {
	// Op is the operation that detected the condition.
	Op string
	// Kind is one of the fatal kinds (KindPoisoned, KindUnsupported, ...).
	Kind ErrorKind
	// Msg describes the condition.
	Msg string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s [%s]: %s", e.Op, e.Kind, e.Msg)
}

// ParseError represents a failure to decode an event received from a backend.
type ParseError struct {
	// Source names the bridge or codec that received the data.
	Source string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %T", e.DataType, e.Source, e.Got)
}

// ErrorHandler receives errors reported by the Finestra framework.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *Error)
	// HandlePanic is called when an application callback panics.
	HandlePanic(err *PanicError)
	// HandleFatal is called right before the framework panics.
	HandleFatal(err *FatalError)
}
