package toolbelt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSON_SortedKeysAndIndent(t *testing.T) {
	got, err := PrettyJSON(map[string]any{
		"zebra": 1,
		"alpha": 2,
		"mid":   map[string]any{"y": true, "x": false},
	})
	require.NoError(t, err)
	want := strings.Join([]string{
		"{",
		`  "alpha": 2,`,
		`  "mid": {`,
		`    "x": false,`,
		`    "y": true`,
		"  },",
		`  "zebra": 1`,
		"}",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPrettyJSON_LiteralSlashes(t *testing.T) {
	v := Map(Entry{Key: "url", Value: Text("https://example.com/path")})
	got := v.Description()
	assert.Contains(t, got, "https://example.com/path")
	assert.NotContains(t, got, `https:\/\/example.com\/path`)
}

func TestPrettyJSON_StructKeysSorted(t *testing.T) {
	type sample struct {
		Zulu  string `json:"zulu"`
		Alpha string `json:"alpha"`
	}
	got, err := PrettyJSON(sample{Zulu: "z", Alpha: "a"})
	require.NoError(t, err)
	assert.True(t, strings.Index(got, `"alpha"`) < strings.Index(got, `"zulu"`))
}

func TestPrettyJSON_NumbersSurviveExactly(t *testing.T) {
	got, err := PrettyJSON(map[string]any{"score": 95.5, "count": int64(9007199254740993)})
	require.NoError(t, err)
	assert.Contains(t, got, "95.5")
	assert.Contains(t, got, "9007199254740993")
}

func TestPrettyJSON_Deterministic(t *testing.T) {
	v := Map(
		Entry{Key: "b", Value: Integer(2)},
		Entry{Key: "a", Value: Integer(1)},
	)
	first := v.Description()
	second := v.Description()
	assert.Equal(t, first, second)
	assert.True(t, strings.Index(first, `"a"`) < strings.Index(first, `"b"`))
}
