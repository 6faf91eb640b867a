package toolbelt

import (
	"context"
	"time"
)

// toolOptions hold optional tool declaration settings.
type toolOptions struct {
	instructions string
	argument     *ArgumentSpec
	extraArgs    []ArgumentSpec
}

// ToolOption configures a tool built with New.
type ToolOption func(*toolOptions)

// WithInstructions sets optional usage instructions on the definition.
func WithInstructions(instructions string) ToolOption {
	return func(o *toolOptions) {
		o.instructions = instructions
	}
}

// WithArgument declares the tool's primary argument shape (the function's
// argument type). The example string is mandatory and must be non-empty.
func WithArgument(name, description, example string) ToolOption {
	return func(o *toolOptions) {
		o.argument = &ArgumentSpec{Name: name, Description: description, Example: example}
	}
}

// WithArg attaches an additional declared argument shape (see Arg). Only
// the first call argument is consumed at dispatch time; extra shapes exist
// for documentation in the descriptor.
func WithArg(spec ArgumentSpec) ToolOption {
	return func(o *toolOptions) {
		o.extraArgs = append(o.extraArgs, spec)
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	recoverPanics bool
	onBefore      func(context.Context, Call)
	onAfter       func(ctx context.Context, call Call, output string, err error, d time.Duration)
}

// WithRecoverPanics enables panic recovery in HandleTool (panics surface as
// ExecutionError instead of crashing the process).
func WithRecoverPanics(enable bool) RegistryOption {
	return func(o *registryOptions) {
		o.recoverPanics = enable
	}
}

// WithOnBeforeHandle sets a hook called before each dispatch.
func WithOnBeforeHandle(fn func(context.Context, Call)) RegistryOption {
	return func(o *registryOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterHandle sets a hook called after each dispatch with the final
// output, error, and duration. Runs on success, failure, and recovered panic.
func WithOnAfterHandle(fn func(ctx context.Context, call Call, output string, err error, d time.Duration)) RegistryOption {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}
