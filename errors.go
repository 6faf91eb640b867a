package toolbelt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for toolbelt. Use errors.Is to check.
var (
	ErrNoArguments         = errors.New("no arguments provided")
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrUnknownTool         = errors.New("unknown tool")
	ErrExecutionFailed     = errors.New("tool execution failed")
	ErrDecode              = errors.New("decode failed")
	ErrMissingExample      = errors.New("missing argument example")
	ErrValidation          = errors.New("argument validation failed")
)

// InvalidArgumentTypeError reports that the first argument passed to a
// tool's decode step did not have the expected concrete type.
// Wraps ErrInvalidArgumentType for errors.Is.
type InvalidArgumentTypeError struct {
	Want string
	Got  string
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type: want %s, got %s", e.Want, e.Got)
}

func (e *InvalidArgumentTypeError) Unwrap() error { return ErrInvalidArgumentType }

// UnknownToolError reports a registry lookup miss. Registered carries the
// tool names known at failure time so the caller can self-correct.
// Wraps ErrUnknownTool for errors.Is.
type UnknownToolError struct {
	Name       string
	Registered []string
}

func (e *UnknownToolError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("unknown tool %q: no tools registered", e.Name)
	}
	return fmt.Sprintf("unknown tool %q: registered tools are [%s]", e.Name, strings.Join(e.Registered, ", "))
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// ExecutionError is a tool-specific failure with a human-readable reason.
// Wraps ErrExecutionFailed for errors.Is.
type ExecutionError struct {
	Reason string
}

func (e *ExecutionError) Error() string {
	return "tool execution failed: " + e.Reason
}

func (e *ExecutionError) Unwrap() error { return ErrExecutionFailed }

// DecodeError reports a malformed or unrecognized wire payload. Fatal to
// the decode call that raised it; never retried.
// Wraps ErrDecode for errors.Is.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode failed: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// MissingExampleError reports a tool declaration whose argument carries no
// example string. Raised at declaration time, before the tool is usable.
// Wraps ErrMissingExample for errors.Is.
type MissingExampleError struct {
	Tool     string
	Argument string
}

func (e *MissingExampleError) Error() string {
	return fmt.Sprintf("tool %q: argument %q declared without an example", e.Tool, e.Argument)
}

func (e *MissingExampleError) Unwrap() error { return ErrMissingExample }

// IsExecutionFailed returns true if err is or wraps an ExecutionError.
func IsExecutionFailed(err error) bool {
	return errors.Is(err, ErrExecutionFailed)
}

// IsUnknownTool returns true if err is or wraps an UnknownToolError.
func IsUnknownTool(err error) bool {
	return errors.Is(err, ErrUnknownTool)
}

// panicError wraps a recovered panic value; used by the registry's opt-in
// recovery and by the WithRecovery middleware.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
