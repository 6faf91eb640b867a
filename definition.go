package toolbelt

// Definition is the static identity of a tool: a stable name (snake_case
// recommended, unique within a registry), a description for the caller, and
// optional usage instructions. Immutable; created once per tool type.
type Definition struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions,omitempty"`
}

// Argument descriptor type tags. Inference never produces "object"; it is
// part of the descriptor vocabulary for hand-written descriptors only.
const (
	ArgumentTypeString  = "string"
	ArgumentTypeNumber  = "number"
	ArgumentTypeInteger = "integer"
	ArgumentTypeBoolean = "boolean"
	ArgumentTypeObject  = "object"
)

// ArgumentType carries the JSON-schema-like type tag of an argument.
type ArgumentType struct {
	Type string `json:"type"`
}

// ArgumentDescriptor describes one declared argument shape of a tool.
type ArgumentDescriptor struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ArgumentType `json:"type"`
}

// Example is a worked invocation sample: one example value per declared
// argument, keyed by argument name.
type Example struct {
	ToolName  string            `json:"tool_name"`
	Arguments map[string]string `json:"arguments"`
}

// Descriptor is the machine-readable metadata document for a tool's
// callable surface. It is computed once per tool declaration and is
// effectively constant.
type Descriptor struct {
	ToolName    string               `json:"tool_name"`
	Description string               `json:"description"`
	Arguments   []ArgumentDescriptor `json:"arguments"`
	Example     *Example             `json:"example,omitempty"`
}

// JSON renders the descriptor as canonical pretty JSON (sorted keys,
// two-space indentation, literal slashes). The output is byte-identical
// across calls for the same declaration.
func (d Descriptor) JSON() (string, error) {
	return PrettyJSON(d)
}
