package toolbelt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, call Call) (string, error) {
	return call.GetStringOr("text", ""), nil
}

func TestRegistry_RegisterAndHandle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("echo", echoHandler)

	assert.True(t, reg.IsRegistered("echo"))
	assert.False(t, reg.IsRegistered("missing"))
	assert.Equal(t, []string{"echo"}, reg.RegisteredTools())

	out, err := reg.HandleTool(context.Background(), Call{
		ToolName:  "echo",
		Arguments: map[string]Value{"text": Text("hello")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRegistry_Register_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("greet", func(_ context.Context, _ Call) (string, error) { return "first", nil })
	reg.Register("greet", func(_ context.Context, _ Call) (string, error) { return "second", nil })

	out, err := reg.HandleTool(context.Background(), Call{ToolName: "greet"})
	require.NoError(t, err)
	assert.Equal(t, "second", out)
	assert.Equal(t, []string{"greet"}, reg.RegisteredTools())
}

func TestRegistry_UnknownTool_EnumeratesRegistered(t *testing.T) {
	reg := NewRegistry()
	reg.Register("alpha", echoHandler)
	reg.Register("beta", echoHandler)

	_, err := reg.HandleTool(context.Background(), Call{ToolName: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTool)
	var ute *UnknownToolError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "nope", ute.Name)
	assert.Equal(t, []string{"alpha", "beta"}, ute.Registered)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Contains(t, err.Error(), "alpha")
	assert.Contains(t, err.Error(), "beta")

	// The list is recomputed at failure time, not cached.
	reg.Register("gamma", echoHandler)
	_, err = reg.HandleTool(context.Background(), Call{ToolName: "nope"})
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, ute.Registered)
}

func TestRegistry_HandlerErrorsSurfaceAsExecutionFailed(t *testing.T) {
	reg := NewRegistry()
	reg.Register("fail", func(_ context.Context, _ Call) (string, error) {
		return "", errors.New("disk on fire")
	})

	_, err := reg.HandleTool(context.Background(), Call{ToolName: "fail"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestRegistry_ExecutionErrorPassesThrough(t *testing.T) {
	reg := NewRegistry()
	want := &ExecutionError{Reason: "quota exhausted"}
	reg.Register("fail", func(_ context.Context, _ Call) (string, error) {
		return "", want
	})

	_, err := reg.HandleTool(context.Background(), Call{ToolName: "fail"})
	var ee *ExecutionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "quota exhausted", ee.Reason)
}

func TestRegistry_RecoverPanics(t *testing.T) {
	reg := NewRegistry(WithRecoverPanics(true))
	reg.Register("boom", func(_ context.Context, _ Call) (string, error) {
		panic("oops")
	})

	out, err := reg.HandleTool(context.Background(), Call{ToolName: "boom"})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, ErrExecutionFailed)
	assert.Contains(t, err.Error(), "oops")
}

func TestRegistry_Hooks(t *testing.T) {
	var beforeCalls, afterCalls int
	var hookedCall Call
	var hookedOut string
	var hookedErr error
	var hookedDur time.Duration

	reg := NewRegistry(
		WithOnBeforeHandle(func(_ context.Context, call Call) {
			beforeCalls++
			hookedCall = call
		}),
		WithOnAfterHandle(func(_ context.Context, _ Call, out string, err error, d time.Duration) {
			afterCalls++
			hookedOut = out
			hookedErr = err
			hookedDur = d
		}),
	)
	reg.Register("echo", echoHandler)

	out, err := reg.HandleTool(context.Background(), Call{
		ToolName:  "echo",
		Arguments: map[string]Value{"text": Text("hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
	assert.Equal(t, 1, beforeCalls)
	assert.Equal(t, 1, afterCalls)
	assert.Equal(t, "echo", hookedCall.ToolName)
	assert.NotEmpty(t, hookedCall.ID, "an ID is backfilled for correlation")
	assert.Equal(t, "hi", hookedOut)
	assert.NoError(t, hookedErr)
	assert.GreaterOrEqual(t, hookedDur, time.Duration(0))
}

func TestRegistry_SuppliedIDIsKept(t *testing.T) {
	var seen string
	reg := NewRegistry(WithOnBeforeHandle(func(_ context.Context, call Call) {
		seen = call.ID
	}))
	reg.Register("echo", echoHandler)

	_, err := reg.HandleTool(context.Background(), Call{ID: "call_42", ToolName: "echo"})
	require.NoError(t, err)
	assert.Equal(t, "call_42", seen)
}

func TestRegistry_ConcurrentRegisterAndHandle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("echo", echoHandler)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(fmt.Sprintf("tool_%d", i), echoHandler)
		}(i)
		go func() {
			defer wg.Done()
			_, err := reg.HandleTool(context.Background(), Call{
				ToolName:  "echo",
				Arguments: map[string]Value{"text": Text("x")},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, reg.RegisteredTools(), 21)
}

func TestRegistry_HandleBatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register("echo", echoHandler)

	calls := []Call{
		{ToolName: "echo", Arguments: map[string]Value{"text": Text("one")}},
		{ToolName: "missing"},
		{ToolName: "echo", Arguments: map[string]Value{"text": Text("three")}},
	}
	results := reg.HandleBatch(context.Background(), calls)
	require.Len(t, results, 3)

	assert.Equal(t, "one", results[0].Output)
	assert.NoError(t, results[0].Err)
	assert.NotEmpty(t, results[0].ID)

	assert.ErrorIs(t, results[1].Err, ErrUnknownTool)

	assert.Equal(t, "three", results[2].Output)
	assert.NoError(t, results[2].Err)
}

func TestRegistry_HandleBatch_Empty(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.HandleBatch(context.Background(), nil))
}

func TestDefaultRegistry(t *testing.T) {
	name := "default_registry_probe"
	Register(name, echoHandler)

	assert.True(t, IsRegistered(name))
	assert.Contains(t, RegisteredTools(), name)
	assert.Same(t, defaultRegistry, Default())

	out, err := HandleTool(context.Background(), Call{
		ToolName:  name,
		Arguments: map[string]Value{"text": Text("global")},
	})
	require.NoError(t, err)
	assert.Equal(t, "global", out)
}
