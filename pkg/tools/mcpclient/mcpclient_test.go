package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer creates an MCP server with the given tools, connects a
// client via in-memory transports, and returns the client. The server runs
// in a background goroutine tied to t.Cleanup.
func setupTestServer(t *testing.T, tools ...toolbox.Tool) *MCPClient {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-funtools",
		Version: "0.1.0",
	}, nil)

	for _, tool := range tools {
		handler := tool.Handler
		server.AddTool(&mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := handler(ctx, req.Params.Arguments)
			if err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
					IsError: true,
				}, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: result}},
			}, nil
		})
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.Run(ctx, serverTransport)
	}()
	t.Cleanup(func() {
		cancel()
		<-serverDone
	})

	client, err := newFromTransport(ctx, clientTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestListTools(t *testing.T) {
	client := setupTestServer(t,
		toolbox.Tool{
			Name:        "random_dog",
			Description: "Return a random dog image URL.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
				return `{"ok":true,"image":"https://images.dog.ceo/one.jpg"}`, nil
			},
		},
		toolbox.Tool{
			Name:        "get_weather",
			Description: "Current weather at coordinates.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"latitude":{"type":"number"},"longitude":{"type":"number"}}}`),
			Handler: func(_ context.Context, input json.RawMessage) (string, error) {
				return string(input), nil
			},
		},
	)

	tools, err := client.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	byName := make(map[string]toolbox.Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	dog, ok := byName["random_dog"]
	require.True(t, ok)
	assert.Equal(t, "Return a random dog image URL.", dog.Description)
	assert.NotNil(t, dog.Handler)
}

func TestListToolsHandlerCallsBack(t *testing.T) {
	client := setupTestServer(t, toolbox.Tool{
		Name:        "get_weather",
		Description: "echo args",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			return string(input), nil
		},
	})

	tools, err := client.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)

	out, err := tools[0].Handler(context.Background(), json.RawMessage(`{"latitude":52.5,"longitude":13.4}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":52.5,"longitude":13.4}`, out)
}

func TestCallTool(t *testing.T) {
	client := setupTestServer(t, toolbox.Tool{
		Name:        "random_joke",
		Description: "joke",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return `{"ok":true,"joke":"A classic."}`, nil
		},
	})

	out, err := client.CallTool(context.Background(), "random_joke", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"joke":"A classic."}`, out)
}

func TestCallToolError(t *testing.T) {
	client := setupTestServer(t, toolbox.Tool{
		Name:        "trivia",
		Description: "always fails",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return "", errors.New("upstream returned status 500")
		},
	})

	_, err := client.CallTool(context.Background(), "trivia", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream returned status 500")
}

func TestCallToolInvalidArguments(t *testing.T) {
	client := setupTestServer(t)

	_, err := client.CallTool(context.Background(), "anything", json.RawMessage(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal arguments")
}
