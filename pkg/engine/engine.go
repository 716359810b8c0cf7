// Package engine wires the agent loop together from configuration: the
// Ollama completer, the spawned MCP tool host, the session tool set, and the
// conversation seeded with the system prompt.
package engine

import (
	"context"
	"fmt"

	"github.com/germanamz/weekender/pkg/agent"
	"github.com/germanamz/weekender/pkg/chats/chat"
	"github.com/germanamz/weekender/pkg/chats/message"
	"github.com/germanamz/weekender/pkg/chats/role"
	"github.com/germanamz/weekender/pkg/providers/ollama"
	"github.com/germanamz/weekender/pkg/tools/mcpclient"
	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

// Engine holds a running session: one agent over one tool host connection.
type Engine struct {
	Agent *agent.Agent

	client    *mcpclient.MCPClient
	toolNames []string
}

// New builds an Engine from the configuration. It spawns the tool host
// process and fetches its tool set once; the set is fixed for the session.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	completer, err := ollama.New(cfg.OllamaHost, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("engine: create completer: %w", err)
	}

	client, err := mcpclient.New(ctx, cfg.ToolServer.Command, cfg.ToolServer.Args...)
	if err != nil {
		return nil, fmt.Errorf("engine: connect tool host: %w", err)
	}

	tools, err := client.ListTools(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("engine: list tools: %w", err)
	}

	tb := toolbox.New()
	tb.Register(tools...)

	c := chat.New(message.New(role.System, agent.SystemPrompt))

	a := agent.New(completer, tb, c)
	a.MaxSteps = cfg.MaxSteps

	return &Engine{
		Agent:     a,
		client:    client,
		toolNames: tb.Names(),
	}, nil
}

// ToolNames returns the names of the connected tools in sorted order.
func (e *Engine) ToolNames() []string {
	return e.toolNames
}

// Close shuts down the tool host connection and its subprocess.
func (e *Engine) Close() error {
	return e.client.Close()
}
