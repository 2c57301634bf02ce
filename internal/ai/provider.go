package ai

import "context"

// Message is a provider-agnostic chat message.
type Message struct {
	Role    string // "system" or "user"
	Content string
}

// Provider is the interface that a completion backend must implement.
// Client shapes the messages; the provider owns the wire format.
type Provider interface {
	// Complete sends messages and returns the content of the first choice
	// verbatim.
	Complete(ctx context.Context, messages []Message) (string, error)
}
