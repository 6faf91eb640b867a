package toolbelt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherArgs struct {
	City string `json:"city"`
	Days int    `json:"days,omitempty"`
}

type boundedArgs struct {
	Limit int `json:"limit"`
}

func (a boundedArgs) Validate() error {
	if a.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

type ptrValidatedArgs struct {
	Name string `json:"name"`
}

func (a *ptrValidatedArgs) Validate() error {
	if a.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

func TestBinder_BindJSON(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)

	args, err := b.BindJSON([]byte(`{"city": "Oslo", "days": 3}`))
	require.NoError(t, err)
	assert.Equal(t, "Oslo", args.City)
	assert.Equal(t, 3, args.Days)
}

func TestBinder_Schema(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)
	schema := b.Schema()
	assert.Equal(t, "object", schema["type"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "city")
	assert.Contains(t, props, "days")
}

func TestBinder_TypeMismatch(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)

	_, err = b.BindJSON([]byte(`{"city": 123}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBinder_MissingRequiredField(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)

	_, err = b.BindJSON([]byte(`{"days": 3}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBinder_MalformedJSON(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)

	_, err = b.BindJSON([]byte(`{"city": `))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestBinder_CustomValidation_ValueReceiver(t *testing.T) {
	b, err := NewBinder[boundedArgs]()
	require.NoError(t, err)

	args, err := b.BindJSON([]byte(`{"limit": 5}`))
	require.NoError(t, err)
	assert.Equal(t, 5, args.Limit)

	_, err = b.BindJSON([]byte(`{"limit": -1}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "limit must be positive")
}

func TestBinder_CustomValidation_PointerReceiver(t *testing.T) {
	b, err := NewBinder[ptrValidatedArgs]()
	require.NoError(t, err)

	_, err = b.BindJSON([]byte(`{"name": ""}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name must not be empty")
}

func TestBinder_BindFromCall(t *testing.T) {
	b, err := NewBinder[weatherArgs]()
	require.NoError(t, err)

	call := Call{
		ToolName: "weather",
		Arguments: map[string]Value{
			"city": Text("Bergen"),
			"days": Integer(2),
			"skip": {}, // null argument, omitted from the bound object
		},
	}
	args, err := b.Bind(call)
	require.NoError(t, err)
	assert.Equal(t, "Bergen", args.City)
	assert.Equal(t, 2, args.Days)
}
