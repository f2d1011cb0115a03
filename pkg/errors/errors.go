// Package errors provides structured error reporting for fern.
//
// Recoverable failures are reported as *FernError. Host contract violations,
// such as rendering a scene that was never laid out, are reported as
// *ContractError and panic while Strict is enabled.
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
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindInput indicates malformed host input.
	KindInput
	// KindLayout indicates a layout failure.
	KindLayout
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindContract indicates a broken host contract.
	KindContract
	// KindIO indicates a failure reading or writing external data.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindContract:
		return "contract"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// FernError represents a structured error reported by the framework.
type FernError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FernError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FernError) Unwrap() error {
	return e.Err
}

// Wrap returns a FernError for err, or nil when err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &FernError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "signal.Emit").
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

// ContractError reports a caller breaking a documented precondition.
type ContractError struct {
	// Op is the operation whose precondition was violated (e.g., "scene.Render").
	Op string
	// Violation describes what the caller did wrong.
	Violation string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Violation)
}

// ErrorHandler receives errors reported by fern.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FernError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleContractError is called when a host contract is broken.
	HandleContractError(err *ContractError)
}
