package toolbelt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Wire type tags for the Value envelope.
const (
	tagString          = "string"
	tagDouble          = "double"
	tagInt             = "int"
	tagBool            = "bool"
	tagData            = "data"
	tagArray           = "array"
	tagDictionary      = "dictionary"
	tagDictionaryArray = "dictionaryArray"
)

// envelope is the tagged wire form of a Value: {"type": tag, "value": payload}.
// The explicit tag removes JSON's native type ambiguity (30 as int vs double).
type envelope struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// MarshalJSON encodes the Value as a tagged envelope. List, map, and
// map-list payloads carry only string/int/double/bool leaves; entries of
// any other kind are dropped without error. That narrowing is deliberate,
// not a failure mode.
func (v Value) MarshalJSON() ([]byte, error) {
	var env envelope
	switch v.kind {
	case KindText:
		env = envelope{Type: tagString, Value: v.str}
	case KindNumber:
		env = envelope{Type: tagDouble, Value: v.num}
	case KindInteger:
		env = envelope{Type: tagInt, Value: v.integer}
	case KindBoolean:
		env = envelope{Type: tagBool, Value: v.boolean}
	case KindBinary:
		env = envelope{Type: tagData, Value: v.bin} // []byte marshals as base64
	case KindList:
		payload := make([]any, 0, len(v.list))
		for _, it := range v.list {
			if s, ok := it.scalarPayload(); ok {
				payload = append(payload, s)
			}
		}
		env = envelope{Type: tagArray, Value: payload}
	case KindMap:
		env = envelope{Type: tagDictionary, Value: v.scalarMapPayload()}
	case KindMapList:
		payload := make([]map[string]any, 0, len(v.maps))
		for _, m := range v.maps {
			payload = append(payload, m.scalarMapPayload())
		}
		env = envelope{Type: tagDictionaryArray, Value: payload}
	default:
		return nil, fmt.Errorf("cannot encode invalid Value")
	}
	return json.Marshal(env)
}

// scalarPayload returns the untagged payload for the four scalar kinds the
// container encodings support.
func (v Value) scalarPayload() (any, bool) {
	switch v.kind {
	case KindText:
		return v.str, true
	case KindNumber:
		return v.num, true
	case KindInteger:
		return v.integer, true
	case KindBoolean:
		return v.boolean, true
	default:
		return nil, false
	}
}

// scalarMapPayload projects a map Value onto its scalar entries only.
func (v Value) scalarMapPayload() map[string]any {
	out := make(map[string]any, v.entries.Len())
	for pair := v.entries.Oldest(); pair != nil; pair = pair.Next() {
		if s, ok := pair.Value.scalarPayload(); ok {
			out[pair.Key] = s
		}
	}
	return out
}

// UnmarshalJSON decodes a tagged envelope. An unrecognized tag or a payload
// that does not match its tag yields a DecodeError.
func (v *Value) UnmarshalJSON(data []byte) error {
	var env struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return &DecodeError{Reason: "malformed value envelope: " + err.Error()}
	}
	switch env.Type {
	case tagString:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return payloadError(env.Type, err)
		}
		*v = Text(s)
	case tagDouble:
		var f float64
		if err := json.Unmarshal(env.Value, &f); err != nil {
			return payloadError(env.Type, err)
		}
		*v = Number(f)
	case tagInt:
		var i int64
		if err := json.Unmarshal(env.Value, &i); err != nil {
			return payloadError(env.Type, err)
		}
		*v = Integer(i)
	case tagBool:
		var b bool
		if err := json.Unmarshal(env.Value, &b); err != nil {
			return payloadError(env.Type, err)
		}
		*v = Boolean(b)
	case tagData:
		var raw []byte
		if err := json.Unmarshal(env.Value, &raw); err != nil {
			return payloadError(env.Type, err)
		}
		*v = Binary(raw)
	case tagArray:
		items, err := decodeScalarArray(env.Value)
		if err != nil {
			return err
		}
		*v = List(items...)
	case tagDictionary:
		m, err := decodeScalarMap(env.Value)
		if err != nil {
			return err
		}
		*v = m
	case tagDictionaryArray:
		root := gjson.ParseBytes(env.Value)
		if !root.IsArray() {
			return &DecodeError{Reason: "dictionaryArray payload is not an array"}
		}
		var maps []Value
		var decodeErr error
		root.ForEach(func(_, item gjson.Result) bool {
			m, err := decodeScalarMap([]byte(item.Raw))
			if err != nil {
				decodeErr = err
				return false
			}
			maps = append(maps, m)
			return true
		})
		if decodeErr != nil {
			return decodeErr
		}
		*v = MapList(maps...)
	default:
		return &DecodeError{Reason: fmt.Sprintf("unrecognized type tag %q", env.Type)}
	}
	return nil
}

func payloadError(tag string, err error) error {
	return &DecodeError{Reason: fmt.Sprintf("payload does not match tag %q: %v", tag, err)}
}

// DecodeValue decodes a tagged envelope into a Value. Any failure, including
// a syntax error caught by encoding/json before UnmarshalJSON runs, surfaces
// as a DecodeError.
func DecodeValue(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		if errors.Is(err, ErrDecode) {
			return Value{}, err
		}
		return Value{}, &DecodeError{Reason: "malformed value envelope: " + err.Error()}
	}
	return v, nil
}

// decodeScalar decodes a raw, untagged JSON token into a scalar Value using
// the precedence boolean, then integer, then double, then string. The order
// is load-bearing: a JSON true must never be captured by a numeric decoder,
// and a whole number must never widen to a double. JSON null decodes to the
// zero Value with no error.
func decodeScalar(raw []byte) (Value, error) {
	trim := bytes.TrimSpace(raw)
	if len(trim) == 0 {
		return Value{}, &DecodeError{Reason: "empty scalar token"}
	}
	if bytes.Equal(trim, []byte("null")) {
		return Value{}, nil
	}
	var b bool
	if err := json.Unmarshal(trim, &b); err == nil {
		return Boolean(b), nil
	}
	var i int64
	if err := json.Unmarshal(trim, &i); err == nil {
		return Integer(i), nil
	}
	var f float64
	if err := json.Unmarshal(trim, &f); err == nil {
		return Number(f), nil
	}
	var s string
	if err := json.Unmarshal(trim, &s); err == nil {
		return Text(s), nil
	}
	return Value{}, &DecodeError{Reason: fmt.Sprintf("token %q is not a scalar", string(trim))}
}

// decodeScalarArray decodes an untagged JSON array, keeping scalar elements
// and dropping nulls and structured elements.
func decodeScalarArray(raw []byte) ([]Value, error) {
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return nil, &DecodeError{Reason: "array payload is not an array"}
	}
	var items []Value
	root.ForEach(func(_, item gjson.Result) bool {
		if item.IsObject() || item.IsArray() {
			return true
		}
		v, err := decodeScalar([]byte(item.Raw))
		if err == nil && v.IsValid() {
			items = append(items, v)
		}
		return true
	})
	return items, nil
}

// decodeScalarMap decodes an untagged JSON object into a map Value,
// preserving document key order and keeping only scalar entries.
func decodeScalarMap(raw []byte) (Value, error) {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Value{}, &DecodeError{Reason: "dictionary payload is not an object"}
	}
	var entries []Entry
	root.ForEach(func(key, item gjson.Result) bool {
		if item.IsObject() || item.IsArray() {
			return true
		}
		v, err := decodeScalar([]byte(item.Raw))
		if err == nil && v.IsValid() {
			entries = append(entries, Entry{Key: key.String(), Value: v})
		}
		return true
	})
	return Map(entries...), nil
}
