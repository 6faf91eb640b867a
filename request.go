package toolbelt

import (
	"github.com/tidwall/gjson"
)

// Request is the inbound call payload: a free-text message plus an optional
// tool invocation. Tool is nil when the payload carries no tool call.
type Request struct {
	Message string
	Tool    *Call
}

// ParseRequest decodes a {"message": ..., "tool": {...}} payload. A missing
// or null tool field is valid. Structured values inside tool.arguments are
// dropped; scalars decode with the boolean/integer/double/string
// precedence. Malformed JSON fails with DecodeError.
func ParseRequest(data []byte) (Request, error) {
	if !gjson.ValidBytes(data) {
		return Request{}, &DecodeError{Reason: "request payload is not valid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Request{}, &DecodeError{Reason: "request payload is not an object"}
	}

	req := Request{Message: root.Get("message").String()}

	toolField := root.Get("tool")
	if !toolField.Exists() || toolField.Type == gjson.Null {
		return req, nil
	}
	if !toolField.IsObject() {
		return Request{}, &DecodeError{Reason: "tool field is not an object"}
	}

	call := Call{
		ID:        toolField.Get("id").String(),
		ToolName:  toolField.Get("tool_name").String(),
		Arguments: make(map[string]Value),
	}
	if args := toolField.Get("arguments"); args.IsObject() {
		args.ForEach(func(key, item gjson.Result) bool {
			if item.IsObject() || item.IsArray() {
				return true
			}
			v, err := decodeScalar([]byte(item.Raw))
			if err == nil {
				call.Arguments[key.String()] = v
			}
			return true
		})
	}
	req.Tool = &call
	return req, nil
}
