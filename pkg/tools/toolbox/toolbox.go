// Package toolbox defines the tool descriptor shared by the agent loop and
// the tool host, and a registry the loop validates tool names against.
package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownTool is returned by Call when no tool with the requested name is
// registered. The lookup is local; no remote call is issued for unknown names.
var ErrUnknownTool = errors.New("toolbox: unknown tool")

// ToolBox holds a fixed set of named tools. The set is populated once at
// session start and consulted on every tool decision.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (tb *ToolBox) Names() []string {
	return slices.Sorted(maps.Keys(tb.tools))
}

// Tools returns all registered tools as a slice.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}
	return result
}

// Call executes the named tool with the given JSON arguments. Unknown names
// fail with ErrUnknownTool before any handler runs.
func (tb *ToolBox) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t, ok := tb.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	return t.Handler(ctx, args)
}
