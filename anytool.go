package toolbelt

import (
	"context"
	"encoding/json"
)

// AnyTool holds a concrete tool behind a uniform call signature so
// heterogeneous tool types can live in one collection or inside a
// serializable envelope. It has two capability tiers depending on
// provenance: wrapped in-process, it carries the original tool and a bound
// invocation closure; decoded from JSON, it is a legitimate metadata
// carrier but a permanently inert executor.
type AnyTool struct {
	def    Definition
	invoke func(ctx context.Context, args ...any) (Value, error)
	tool   Tool
}

// Wrap erases the concrete type of t. A is the tool's expected argument
// type: the captured closure keeps only incoming arguments whose dynamic
// type is A and drops the rest before delegating, which may leave the
// concrete call with fewer arguments than supplied. The narrowing is
// silent; a call filtered down to nothing surfaces the wrapped tool's own
// ErrNoArguments.
func Wrap[A any](t Tool) *AnyTool {
	invoke := func(ctx context.Context, args ...any) (Value, error) {
		kept := make([]any, 0, len(args))
		for _, a := range args {
			if _, ok := a.(A); ok {
				kept = append(kept, a)
			}
		}
		return t.Call(ctx, kept...)
	}
	return &AnyTool{def: t.Definition(), invoke: invoke, tool: t}
}

// Definition returns the captured definition. It survives an
// encode/decode round trip intact.
func (a *AnyTool) Definition() Definition { return a.def }

// Tool returns the original wrapped tool. The second return is false for
// wrappers reconstructed from serialized form.
func (a *AnyTool) Tool() (Tool, bool) { return a.tool, a.tool != nil }

// Call invokes the wrapped tool. A decoded AnyTool always fails with an
// ExecutionError: behavior is not durable across serialization, only
// metadata is.
func (a *AnyTool) Call(ctx context.Context, args ...any) (Value, error) {
	if a.invoke == nil {
		return Value{}, &ExecutionError{Reason: "original tool implementation lost during encoding"}
	}
	return a.invoke(ctx, args...)
}

type anyToolWire struct {
	Definition Definition `json:"definition"`
}

// MarshalJSON emits only the definition; behavior is never serialized.
func (a *AnyTool) MarshalJSON() ([]byte, error) {
	return json.Marshal(anyToolWire{Definition: a.def})
}

// UnmarshalJSON reconstructs a metadata-only wrapper.
func (a *AnyTool) UnmarshalJSON(data []byte) error {
	var wire anyToolWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return &DecodeError{Reason: "malformed AnyTool envelope: " + err.Error()}
	}
	a.def = wire.Definition
	a.invoke = nil
	a.tool = nil
	return nil
}
