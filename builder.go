package toolbelt

import (
	"context"
	"errors"
	"maps"
	"reflect"
)

// funcTool is the internal Tool implementation built by New.
type funcTool struct {
	def    Definition
	desc   Descriptor
	schema map[string]any
	call   func(ctx context.Context, args ...any) (Value, error)
}

// New builds a Tool from a typed function. The primary argument shape is A;
// declare it with WithArgument (the example string is mandatory — building
// a tool over a non-empty argument shape without one fails with
// MissingExampleError, before the tool is usable). Additional declared
// shapes may be attached with WithArg; only the first call argument is
// consumed at dispatch time.
//
// Tools over EmptyArgument need no argument declaration and may be called
// with no arguments at all.
func New[A any](
	name, description string,
	fn func(ctx context.Context, args A) (Value, error),
	opts ...ToolOption,
) (Tool, error) {
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	def := Definition{Name: name, Description: description, Instructions: o.instructions}

	shape := reflect.TypeOf((*A)(nil)).Elem()
	_, takesNothing := any(*new(A)).(EmptyArgument)

	var specs []ArgumentSpec
	if o.argument != nil {
		primary := *o.argument
		primary.shape = shape
		specs = append(specs, primary)
	}
	specs = append(specs, o.extraArgs...)
	if !takesNothing && o.argument == nil {
		return nil, &MissingExampleError{Tool: name, Argument: shape.String()}
	}

	desc, err := NewDescriptor(def, specs...)
	if err != nil {
		return nil, err
	}
	schema, err := generateSchema[A]()
	if err != nil {
		return nil, err
	}

	call := func(ctx context.Context, args ...any) (Value, error) {
		if takesNothing && len(args) == 0 {
			return wrapToolError(fn(ctx, *new(A)))
		}
		a, err := DecodeArgument[A](args)
		if err != nil {
			return Value{}, err
		}
		return wrapToolError(fn(ctx, a))
	}

	return &funcTool{def: def, desc: desc, schema: schema, call: call}, nil
}

func (t *funcTool) Definition() Definition { return t.def }
func (t *funcTool) Descriptor() Descriptor { return t.desc }

// Schema returns a shallow copy of the JSON Schema for the primary argument
// shape (top-level keys only). Nested maps are shared; callers must not
// mutate them.
func (t *funcTool) Schema() map[string]any { return maps.Clone(t.schema) }

func (t *funcTool) Call(ctx context.Context, args ...any) (Value, error) {
	return t.call(ctx, args...)
}

// wrapToolError folds arbitrary tool-body errors into the taxonomy: errors
// that already carry a framework sentinel pass through, everything else
// becomes an ExecutionError.
func wrapToolError(v Value, err error) (Value, error) {
	if err == nil {
		return v, nil
	}
	if errors.Is(err, ErrExecutionFailed) ||
		errors.Is(err, ErrNoArguments) ||
		errors.Is(err, ErrInvalidArgumentType) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrValidation) {
		return Value{}, err
	}
	return Value{}, &ExecutionError{Reason: err.Error()}
}

var (
	_ Tool           = (*funcTool)(nil)
	_ SchemaProvider = (*funcTool)(nil)
)
