package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record was not found
	CodeNotFound Code = "not_found"

	// CodeConfiguration indicates a missing definition or reference at battle start
	CodeConfiguration Code = "configuration"

	// CodeInvalidCommand indicates a player or AI command that cannot be carried out
	// (dead target, wrong side, unknown or exhausted move)
	CodeInvalidCommand Code = "invalid_command"

	// CodeStateInconsistency indicates an action against an entity that already left the battle
	CodeStateInconsistency Code = "state_inconsistency"

	// CodeCancelled indicates the surrounding battle was cancelled
	CodeCancelled Code = "cancelled"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve the code of an already coded error
	var battleErr *Error
	if errors.As(err, &battleErr) {
		return &Error{
			Code:    battleErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(battleErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Configurationf creates a formatted configuration error
func Configurationf(format string, args ...any) *Error {
	return Newf(CodeConfiguration, format, args...)
}

// InvalidCommand creates an invalid command error
func InvalidCommand(message string) *Error {
	return New(CodeInvalidCommand, message)
}

// InvalidCommandf creates a formatted invalid command error
func InvalidCommandf(format string, args ...any) *Error {
	return Newf(CodeInvalidCommand, format, args...)
}

// StateInconsistencyf creates a formatted state inconsistency error
func StateInconsistencyf(format string, args ...any) *Error {
	return Newf(CodeStateInconsistency, format, args...)
}

// Cancelled marks cause as the end of a cancelled battle
func Cancelled(cause error, message string) *Error {
	if cause == nil {
		return New(CodeCancelled, message)
	}
	return WrapWithCode(cause, CodeCancelled, message)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var battleErr *Error
	if errors.As(err, &battleErr) {
		return battleErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return Is(err, CodeConfiguration)
}

// IsInvalidCommand checks if the error is an invalid command error
func IsInvalidCommand(err error) bool {
	return Is(err, CodeInvalidCommand)
}

// IsStateInconsistency checks if the error is a state inconsistency error
func IsStateInconsistency(err error) bool {
	return Is(err, CodeStateInconsistency)
}

// IsCancelled checks if the error ended a cancelled battle
func IsCancelled(err error) bool {
	return Is(err, CodeCancelled)
}

// Recoverable reports whether a rejected command can be asked for again
func Recoverable(err error) bool {
	return IsInvalidCommand(err) || IsStateInconsistency(err)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var battleErr *Error
	if errors.As(err, &battleErr) {
		return battleErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var battleErr *Error
	if errors.As(err, &battleErr) {
		return battleErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
