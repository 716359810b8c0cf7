// Package message defines the Message type used in LLM conversations.
package message

import "github.com/germanamz/weekender/pkg/chats/role"

// Message is a single role-tagged text entry in a conversation.
// It is a value type that copies cheaply.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a message with the given role and text content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}
