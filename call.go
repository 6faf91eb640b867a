package toolbelt

import (
	"encoding/json"
	"sort"
)

// Call is the untyped tool invocation payload received from a caller.
// Argument values are restricted to the scalar Value kinds; a JSON null
// argument decodes to the zero Value, so HasArgument reports it present but
// every typed getter misses.
type Call struct {
	ID        string // optional caller correlation ID; backfilled by the registry when empty
	ToolName  string
	Arguments map[string]Value
}

// callWire avoids the tagged Value envelope on the call payload: arguments
// travel as plain JSON scalars.
type callWire struct {
	ID        string                     `json:"id,omitempty"`
	ToolName  string                     `json:"tool_name"`
	Arguments map[string]json.RawMessage `json:"arguments"`
}

// MarshalJSON encodes the call with untagged scalar arguments. Non-scalar
// argument values are dropped, invalid Values encode as null.
func (c Call) MarshalJSON() ([]byte, error) {
	args := make(map[string]any, len(c.Arguments))
	for k, v := range c.Arguments {
		if !v.IsValid() {
			args[k] = nil
			continue
		}
		if s, ok := v.scalarPayload(); ok {
			args[k] = s
		}
	}
	return json.Marshal(struct {
		ID        string         `json:"id,omitempty"`
		ToolName  string         `json:"tool_name"`
		Arguments map[string]any `json:"arguments"`
	}{ID: c.ID, ToolName: c.ToolName, Arguments: args})
}

// UnmarshalJSON decodes untagged scalar arguments with the standard
// boolean/integer/double/string precedence. Structured argument values are
// dropped, mirroring the codec's scalar narrowing.
func (c *Call) UnmarshalJSON(data []byte) error {
	var wire callWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return &DecodeError{Reason: "malformed tool call: " + err.Error()}
	}
	c.ID = wire.ID
	c.ToolName = wire.ToolName
	c.Arguments = make(map[string]Value, len(wire.Arguments))
	for k, raw := range wire.Arguments {
		v, err := decodeScalar(raw)
		if err != nil {
			continue
		}
		c.Arguments[k] = v
	}
	return nil
}

// HasArgument reports whether key is present, including null-valued keys.
func (c Call) HasArgument(key string) bool {
	_, ok := c.Arguments[key]
	return ok
}

// ArgumentKeys returns the argument names. The set is unordered on the
// wire; keys are returned sorted for deterministic iteration.
func (c Call) ArgumentKeys() []string {
	keys := make([]string, 0, len(c.Arguments))
	for k := range c.Arguments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString returns the argument under key if it decoded as text.
func (c Call) GetString(key string) (string, bool) {
	v, ok := c.Arguments[key]
	if !ok {
		return "", false
	}
	return v.AsText()
}

// GetInt returns the argument under key if it decoded as an integer.
func (c Call) GetInt(key string) (int64, bool) {
	v, ok := c.Arguments[key]
	if !ok {
		return 0, false
	}
	return v.AsInteger()
}

// GetBool returns the argument under key if it decoded as a boolean.
func (c Call) GetBool(key string) (bool, bool) {
	v, ok := c.Arguments[key]
	if !ok {
		return false, false
	}
	return v.AsBoolean()
}

// GetDouble returns the argument under key if it decoded as a double.
func (c Call) GetDouble(key string) (float64, bool) {
	v, ok := c.Arguments[key]
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

// GetFloat narrows the decoded double representation to float32. There is
// no independent float decode path; precision truncation on the narrow is
// expected.
func (c Call) GetFloat(key string) (float32, bool) {
	f, ok := c.GetDouble(key)
	if !ok {
		return 0, false
	}
	return float32(f), true
}

// GetStringOr returns the string argument under key, or def when absent or
// mistyped.
func (c Call) GetStringOr(key, def string) string {
	if s, ok := c.GetString(key); ok {
		return s
	}
	return def
}

// GetIntOr returns the integer argument under key, or def.
func (c Call) GetIntOr(key string, def int64) int64 {
	if i, ok := c.GetInt(key); ok {
		return i
	}
	return def
}

// GetBoolOr returns the boolean argument under key, or def.
func (c Call) GetBoolOr(key string, def bool) bool {
	if b, ok := c.GetBool(key); ok {
		return b
	}
	return def
}

// GetDoubleOr returns the double argument under key, or def.
func (c Call) GetDoubleOr(key string, def float64) float64 {
	if f, ok := c.GetDouble(key); ok {
		return f
	}
	return def
}

// GetFloatOr returns the narrowed float argument under key, or def.
func (c Call) GetFloatOr(key string, def float32) float32 {
	if f, ok := c.GetFloat(key); ok {
		return f
	}
	return def
}
