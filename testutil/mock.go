// Package testutil provides test helpers for toolbelt (e.g. MockTool).
package testutil

import (
	"context"

	"github.com/akarpov/toolbelt"
)

// MockTool is a configurable Tool implementation for tests.
type MockTool struct {
	DefinitionVal toolbelt.Definition
	DescriptorVal toolbelt.Descriptor
	CallFn        func(ctx context.Context, args ...any) (toolbelt.Value, error)
}

// Definition returns the configured definition, defaulting the name to "mock".
func (m *MockTool) Definition() toolbelt.Definition {
	def := m.DefinitionVal
	if def.Name == "" {
		def.Name = "mock"
	}
	return def
}

// Descriptor returns the configured descriptor, defaulting the tool name to
// the definition's.
func (m *MockTool) Descriptor() toolbelt.Descriptor {
	desc := m.DescriptorVal
	if desc.ToolName == "" {
		desc.ToolName = m.Definition().Name
	}
	return desc
}

// Call runs CallFn if set, otherwise returns an empty text Value.
func (m *MockTool) Call(ctx context.Context, args ...any) (toolbelt.Value, error) {
	if m.CallFn != nil {
		return m.CallFn(ctx, args...)
	}
	return toolbelt.Text(""), nil
}

// Ensure MockTool implements Tool.
var _ toolbelt.Tool = (*MockTool)(nil)
