package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the chat-completion collaborator boundary. Chat returns the first
// choice's message content (empty when the response carries none) plus the raw
// response body for diagnostics.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, []byte, error)
}
