package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/akarpov/toolbelt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMockTool(t *testing.T) {
	m := &MockTool{
		DefinitionVal: toolbelt.Definition{Name: "test_tool", Description: "For tests"},
		CallFn: func(_ context.Context, args ...any) (toolbelt.Value, error) {
			require.Len(t, args, 1)
			return toolbelt.Text("called"), nil
		},
	}
	assert.Equal(t, "test_tool", m.Definition().Name)
	assert.Equal(t, "test_tool", m.Descriptor().ToolName)

	out, err := m.Call(context.Background(), "arg")
	require.NoError(t, err)
	s, ok := out.AsText()
	require.True(t, ok)
	assert.Equal(t, "called", s)
}

func TestMockTool_Defaults(t *testing.T) {
	m := &MockTool{}
	assert.Equal(t, "mock", m.Definition().Name)
	assert.Equal(t, "mock", m.Descriptor().ToolName)

	out, err := m.Call(context.Background())
	require.NoError(t, err)
	s, ok := out.AsText()
	require.True(t, ok)
	assert.Empty(t, s)
}

func TestMockTool_WrapsIntoAnyTool(t *testing.T) {
	m := &MockTool{
		DefinitionVal: toolbelt.Definition{Name: "wrapped", Description: "d"},
		CallFn: func(_ context.Context, args ...any) (toolbelt.Value, error) {
			return toolbelt.Integer(int64(len(args))), nil
		},
	}
	at := toolbelt.Wrap[string](m)
	assert.Equal(t, "wrapped", at.Definition().Name)

	// Non-string arguments are filtered before delegation.
	out, err := at.Call(context.Background(), "a", 1, "b")
	require.NoError(t, err)
	n, ok := out.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(2), n)
}
