package toolbelt

import (
	"bytes"
	"encoding/base64"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindInvalid Kind = iota // zero Value, also the decoding of JSON null
	KindText
	KindNumber
	KindInteger
	KindBoolean
	KindBinary
	KindList
	KindMap
	KindMapList
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindBinary:
		return "binary"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindMapList:
		return "mapList"
	default:
		return "invalid"
	}
}

// Value is the closed set of data shapes a tool can return or receive:
// scalars (text, number, integer, boolean), binary blobs, ordered lists,
// maps, and lists of maps. A Value is immutable once constructed; accessors
// return copies of any contained slices.
//
// Map entries keep their insertion order for display, but order is
// irrelevant for Equal.
type Value struct {
	kind    Kind
	str     string
	num     float64
	integer int64
	boolean bool
	bin     []byte
	list    []Value
	entries *orderedmap.OrderedMap[string, Value]
	maps    []Value // each of KindMap
}

// Entry is a single key/value pair of a map Value.
type Entry struct {
	Key   string
	Value Value
}

// Text returns a string Value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Number returns a floating-point Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Integer returns an integer Value.
func Integer(i int64) Value { return Value{kind: KindInteger, integer: i} }

// Boolean returns a boolean Value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// Binary returns a binary Value. The input slice is copied.
func Binary(data []byte) Value {
	return Value{kind: KindBinary, bin: bytes.Clone(data)}
}

// List returns an ordered list Value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), items...)}
}

// Map returns a map Value preserving the given entry order.
func Map(entries ...Entry) Value {
	om := orderedmap.New[string, Value]()
	for _, e := range entries {
		om.Set(e.Key, e.Value)
	}
	return Value{kind: KindMap, entries: om}
}

// MapOf returns a map Value from a Go map. Entries are ordered by key so
// the result is deterministic.
func MapOf(m map[string]Value) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: m[k]})
	}
	return Map(entries...)
}

// MapList returns a Value holding an ordered sequence of maps. Items that
// are not map Values are dropped, consistent with the codec's narrowing
// policy.
func MapList(items ...Value) Value {
	maps := make([]Value, 0, len(items))
	for _, it := range items {
		if it.kind == KindMap {
			maps = append(maps, it)
		}
	}
	return Value{kind: KindMapList, maps: maps}
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the Value holds any variant at all. The zero
// Value (and decoded JSON null) is invalid.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsText returns the string payload if the Value is text.
func (v Value) AsText() (string, bool) {
	return v.str, v.kind == KindText
}

// AsNumber returns the float payload if the Value is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsInteger returns the integer payload if the Value is an integer.
func (v Value) AsInteger() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// AsBoolean returns the boolean payload if the Value is a boolean.
func (v Value) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// AsBinary returns a copy of the binary payload if the Value is binary.
func (v Value) AsBinary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return bytes.Clone(v.bin), true
}

// AsList returns a copy of the list payload if the Value is a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]Value(nil), v.list...), true
}

// AsMap returns the map entries in insertion order if the Value is a map.
func (v Value) AsMap() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	entries := make([]Entry, 0, v.entries.Len())
	for pair := v.entries.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Key: pair.Key, Value: pair.Value})
	}
	return entries, true
}

// AsMapList returns the contained maps if the Value is a map list.
func (v Value) AsMapList() ([]Value, bool) {
	if v.kind != KindMapList {
		return nil, false
	}
	return append([]Value(nil), v.maps...), true
}

// Get returns the value stored under key if the Value is a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	return v.entries.Get(key)
}

// Len returns the number of items for list, map, and map-list Values,
// and 0 for everything else.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return v.entries.Len()
	case KindMapList:
		return len(v.maps)
	default:
		return 0
	}
}

// Equal reports deep equality. Map entry order does not matter.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindInteger:
		return v.integer == other.integer
	case KindBoolean:
		return v.boolean == other.boolean
	case KindBinary:
		return bytes.Equal(v.bin, other.bin)
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if v.entries.Len() != other.entries.Len() {
			return false
		}
		for pair := v.entries.Oldest(); pair != nil; pair = pair.Next() {
			got, ok := other.entries.Get(pair.Key)
			if !ok || !pair.Value.Equal(got) {
				return false
			}
		}
		return true
	case KindMapList:
		if len(v.maps) != len(other.maps) {
			return false
		}
		for i := range v.maps {
			if !v.maps[i].Equal(other.maps[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// plain returns the untagged projection of the Value for the display path
// (maps and lists become plain Go containers, binary becomes base64).
func (v Value) plain() any {
	switch v.kind {
	case KindText:
		return v.str
	case KindNumber:
		return v.num
	case KindInteger:
		return v.integer
	case KindBoolean:
		return v.boolean
	case KindBinary:
		return base64.StdEncoding.EncodeToString(v.bin)
	case KindList:
		out := make([]any, 0, len(v.list))
		for _, it := range v.list {
			out = append(out, it.plain())
		}
		return out
	case KindMap:
		out := make(map[string]any, v.entries.Len())
		for pair := v.entries.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = pair.Value.plain()
		}
		return out
	case KindMapList:
		out := make([]any, 0, len(v.maps))
		for _, m := range v.maps {
			out = append(out, m.plain())
		}
		return out
	default:
		return nil
	}
}

// Description renders the Value as canonical pretty JSON: alphabetically
// sorted keys, two-space indentation, and literal forward slashes. This is
// the human-readable display form, not the tagged wire format.
func (v Value) Description() string {
	s, err := PrettyJSON(v.plain())
	if err != nil {
		return ""
	}
	return s
}
