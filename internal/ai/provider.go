package ai

import "context"

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Completer sends one prompt to a chat-completion backend and returns the
// text of the first candidate.
type Completer interface {
	Send(ctx context.Context, prompt string) (string, error)
}
