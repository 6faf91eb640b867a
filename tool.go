package toolbelt

import (
	"context"
	"fmt"
	"reflect"
)

// Tool is the contract every callable tool implements: static metadata plus
// a single dispatch entry point. Each invocation is stateless and
// independent; the framework never serializes calls to the same tool, and
// ctx is the only suspension and cancellation surface.
type Tool interface {
	Definition() Definition
	Descriptor() Descriptor
	// Call executes the tool against the supplied argument values. At most
	// one argument is consumed per invocation; tool bodies start by passing
	// args to DecodeArgument.
	Call(ctx context.Context, args ...any) (Value, error)
}

// SchemaProvider is implemented by tools that can export a full JSON Schema
// for their argument shape (e.g. tools built with New).
type SchemaProvider interface {
	Schema() map[string]any
}

// EmptyArgument marks a tool that takes no input.
type EmptyArgument struct{}

// DecodeArgument returns the first element of args cast to A. It fails with
// ErrNoArguments on an empty sequence and with InvalidArgumentTypeError
// when the first element's runtime type is not A. Every tool body begins
// here.
func DecodeArgument[A any](args []any) (A, error) {
	var zero A
	if len(args) == 0 {
		return zero, ErrNoArguments
	}
	a, ok := args[0].(A)
	if !ok {
		return zero, &InvalidArgumentTypeError{
			Want: reflect.TypeOf((*A)(nil)).Elem().String(),
			Got:  fmt.Sprintf("%T", args[0]),
		}
	}
	return a, nil
}
