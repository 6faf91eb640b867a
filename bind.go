package toolbelt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Validatable is implemented by argument structs that need custom business
// validation. Called after shape checking and unmarshaling.
type Validatable interface {
	Validate() error
}

// Binder decodes a Call's scalar arguments (or a raw JSON object) into a
// typed argument struct A, checking the payload's shape and types against
// A's generated JSON Schema first. Build once per tool, reuse across calls.
type Binder[A any] struct {
	schema   map[string]any
	compiled *jsonschema.Schema
}

// NewBinder creates a Binder for type A. Schema generation failures are
// declaration-time errors.
func NewBinder[A any]() (*Binder[A], error) {
	schemaMap, err := generateSchema[A]()
	if err != nil {
		return nil, err
	}
	compiled, err := compileSchema(schemaMap)
	if err != nil {
		return nil, err
	}
	return &Binder[A]{schema: schemaMap, compiled: compiled}, nil
}

// Schema returns a shallow copy of the JSON Schema for A (top-level keys
// only). Nested maps are shared; callers must not mutate them.
func (b *Binder[A]) Schema() map[string]any {
	return maps.Clone(b.schema)
}

// Bind extracts A from the call's argument map. Only scalar argument values
// participate; null and structured values are omitted from the bound
// object.
func (b *Binder[A]) Bind(call Call) (A, error) {
	payload := make(map[string]any, len(call.Arguments))
	for k, v := range call.Arguments {
		if s, ok := v.scalarPayload(); ok {
			payload[k] = s
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		var zero A
		return zero, err
	}
	return b.BindJSON(data)
}

// BindJSON decodes a raw JSON object into A. Malformed JSON fails with
// DecodeError; a shape or type mismatch fails with an error wrapping
// ErrValidation, as does a Validatable rejection.
func (b *Binder[A]) BindJSON(argsJSON []byte) (A, error) {
	var zero A
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(argsJSON))
	if err != nil {
		return zero, &DecodeError{Reason: "malformed arguments: " + err.Error()}
	}
	if err := b.compiled.Validate(inst); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var args A
	if err := json.Unmarshal(argsJSON, &args); err != nil {
		return zero, &DecodeError{Reason: "malformed arguments: " + err.Error()}
	}
	if err := runCustomValidation(args); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return args, nil
}

// runCustomValidation runs Validatable.Validate on args; when args does not
// implement Validatable, it retries with &args for value types (pointer
// receiver). Validate is never called twice for the same receiver.
func runCustomValidation[A any](args A) error {
	if v, ok := any(args).(Validatable); ok {
		return v.Validate()
	}
	typ := reflect.TypeOf(args)
	if typ == nil || typ.Kind() == reflect.Pointer {
		return nil
	}
	if v, ok := any(&args).(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// compileSchema compiles a raw JSON Schema map into a validator. The map is
// not mutated.
func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("arguments.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("arguments.json")
}
