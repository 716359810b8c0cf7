// Package ollama implements provider.Completer against a local Ollama daemon
// using the official Ollama API client.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/germanamz/weekender/pkg/chats/chat"
	"github.com/germanamz/weekender/pkg/providers/provider"
	api "github.com/ollama/ollama/api"
)

const defaultHost = "http://localhost:11434"

// Low temperature keeps the model close to the JSON decision protocol.
const defaultTemperature = 0.2

var _ provider.Completer = (*Adapter)(nil)

// Adapter sends conversations to an Ollama daemon's chat endpoint.
type Adapter struct {
	client      *api.Client
	model       string
	temperature float64
}

// New creates an Adapter for the given model. Host resolution order: the
// host argument, the OLLAMA_HOST environment variable, then the daemon's
// default local address.
func New(host, model string) (*Adapter, error) {
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = defaultHost
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid host %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	return &Adapter{
		client:      api.NewClient(u, httpClient),
		model:       model,
		temperature: defaultTemperature,
	}, nil
}

// Complete sends the conversation to the chat endpoint and returns the
// assistant's reply text.
func (a *Adapter) Complete(ctx context.Context, c *chat.Chat) (string, error) {
	msgs := make([]api.Message, 0, c.Len())
	for _, m := range c.Messages() {
		msgs = append(msgs, api.Message{
			Role:    m.Role.String(),
			Content: m.Content,
		})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    a.model,
		Messages: msgs,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": a.temperature,
		},
	}

	var text strings.Builder
	err := a.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama: chat: %w", err)
	}

	return strings.TrimSpace(text.String()), nil
}
