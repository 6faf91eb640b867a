// Package toolbelt declares callable tools — named, self-describing units
// with typed arguments and typed outputs — and dispatches externally
// supplied JSON tool calls (e.g. from an LLM agent) to their statically
// typed implementations.
//
// # Overview
//
// Three pieces interlock. Value is a closed variant covering every output
// and argument shape (scalars, binary, lists, maps, lists of maps) with a
// tagged JSON wire format that round-trips bit-exactly. Descriptor is the
// stable, machine-readable metadata document generated once per tool
// declaration, worked example included. Registry maps tool names to
// handlers and routes loosely-typed calls to them at runtime.
//
// Pipeline: JSON call → ParseRequest → Registry.HandleTool → handler reads
// typed arguments off the Call (or binds them with Binder) → tool logic →
// Value result → tagged JSON or pretty display string.
//
// # Key concepts
//
//   - Explicit wire tags: every encoded Value carries {"type", "value"}, so
//     30 is never ambiguous between int and double on the wire.
//   - Fail fast on declaration: an argument without an example string is a
//     declaration-time MissingExampleError, never a call-time surprise.
//   - Metadata outlives behavior: an AnyTool decoded from JSON still serves
//     its Definition but deterministically refuses to execute.
//
// # Example
//
//	type SqrtArgs struct{ Value float64 `json:"value"` }
//	tool, err := toolbelt.New("square_root", "Computes a square root",
//	    func(_ context.Context, a SqrtArgs) (toolbelt.Value, error) {
//	        return toolbelt.Number(math.Sqrt(a.Value)), nil
//	    },
//	    toolbelt.WithArgument("value", "the number to take the root of", "16.0"),
//	)
//	if err != nil { ... }
//	out, err := tool.Call(ctx, SqrtArgs{Value: 16})
package toolbelt
