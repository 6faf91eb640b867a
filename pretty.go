package toolbelt

import (
	"bytes"
	"encoding/json"
)

// PrettyJSON renders v as canonical display JSON: keys sorted
// alphabetically at every level, two-space indentation with a ": "
// separator, and literal forward slashes (never \/). This is the display
// contract for descriptors and Value descriptions; the tagged wire codec is
// unaffected.
//
// The value is marshaled once, re-decoded into generic containers so that
// struct field order is replaced by sorted map keys, and encoded again.
// json.Number is used on the intermediate pass so numeric tokens survive
// byte-exactly.
func PrettyJSON(v any) (string, error) {
	flat, err := marshalNoEscape(v, "")
	if err != nil {
		return "", err
	}
	dec := json.NewDecoder(bytes.NewReader(flat))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", err
	}
	out, err := marshalNoEscape(generic, "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// marshalNoEscape marshals without HTML escaping so /, <, >, and & appear
// literally. indent is empty for compact output.
func marshalNoEscape(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
