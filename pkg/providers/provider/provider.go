// Package provider defines the boundary between the agent loop and an LLM.
package provider

import (
	"context"

	"github.com/germanamz/weekender/pkg/chats/chat"
)

// Completer sends a conversation to an LLM and returns the assistant's raw
// text reply. The agent loop parses that text into a decision; completers do
// no interpretation of their own.
type Completer interface {
	Complete(ctx context.Context, c *chat.Chat) (string, error)
}
