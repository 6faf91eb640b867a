package toolbelt

import (
	"math/big"
	"reflect"
)

// ArgumentSpec declares one argument shape of a tool: its name,
// description, a mandatory example string, and the Go type of the shape.
// Construct with Arg.
type ArgumentSpec struct {
	Name        string
	Description string
	Example     string

	shape reflect.Type
}

// Arg declares an argument shape of type A. The example string is mandatory;
// NewDescriptor rejects specs with an empty example.
func Arg[A any](name, description, example string) ArgumentSpec {
	return ArgumentSpec{
		Name:        name,
		Description: description,
		Example:     example,
		shape:       reflect.TypeOf((*A)(nil)).Elem(),
	}
}

// NewDescriptor computes the descriptor for a tool declaration. Every
// argument spec must carry a non-empty example, otherwise declaration fails
// with MissingExampleError before the tool is usable. Generation is pure:
// the same declaration always yields the same descriptor.
func NewDescriptor(def Definition, args ...ArgumentSpec) (Descriptor, error) {
	desc := Descriptor{
		ToolName:    def.Name,
		Description: def.Description,
		Arguments:   make([]ArgumentDescriptor, 0, len(args)),
	}
	for _, a := range args {
		if a.Example == "" {
			return Descriptor{}, &MissingExampleError{Tool: def.Name, Argument: a.Name}
		}
		desc.Arguments = append(desc.Arguments, ArgumentDescriptor{
			Name:        a.Name,
			Description: a.Description,
			Type:        ArgumentType{Type: inferTypeTag(a.shape)},
		})
	}
	if len(args) > 0 {
		ex := &Example{ToolName: def.Name, Arguments: make(map[string]string, len(args))}
		for _, a := range args {
			ex.Arguments[a.Name] = a.Example
		}
		desc.Example = ex
	}
	return desc, nil
}

// inferTypeTag maps an argument shape to its descriptor type tag. Only the
// declared shape is unwrapped: for struct shapes the first declared field is
// inspected, and multi-field arguments are under-described on purpose. A
// struct-typed first field is not unwrapped further. Unrecognized types fall
// back to "string", not "object".
func inferTypeTag(shape reflect.Type) string {
	t := shape
	if t == nil {
		return ArgumentTypeString
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct && t != bigIntType {
		if t.NumField() == 0 {
			return ArgumentTypeString
		}
		t = t.Field(0).Type
	}
	return scalarTypeTag(t)
}

// scalarTypeTag maps a leaf type to its tag.
func scalarTypeTag(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == bigIntType {
		return ArgumentTypeInteger
	}
	switch t.Kind() {
	case reflect.String:
		return ArgumentTypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ArgumentTypeInteger
	case reflect.Float32, reflect.Float64:
		return ArgumentTypeNumber
	case reflect.Bool:
		return ArgumentTypeBoolean
	default:
		return ArgumentTypeString
	}
}

var bigIntType = reflect.TypeOf(big.Int{})
