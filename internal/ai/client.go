// Package ai talks to a chat-completion service to turn a free-text prompt
// into a single shell command for a target platform.
package ai

import (
	"context"
	"fmt"

	"github.com/arin/please/internal/config"
	"github.com/sirupsen/logrus"
)

// Client generates commands through a Provider.
type Client struct {
	provider Provider
}

// NewClient creates a client backed by the OpenAI-compatible provider
// described by cfg.
func NewClient(cfg *config.Config, log logrus.FieldLogger) *Client {
	return NewClientWithProvider(NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.APIURL, cfg.Timeout, log))
}

// NewClientWithProvider creates a client with an explicit provider.
func NewClientWithProvider(p Provider) *Client {
	return &Client{provider: p}
}

// SystemPrompt returns the system instruction for platform.
func SystemPrompt(platform string) string {
	return fmt.Sprintf("Generate a %s terminal command based on the user's input text. Always reply with one command, raw text, no formatting.", platform)
}

// BuildMessages returns the system and user messages for one request.
// The user message is the prompt verbatim.
func BuildMessages(prompt, platform string) []Message {
	return []Message{
		{Role: RoleSystem, Content: SystemPrompt(platform)},
		{Role: RoleUser, Content: prompt},
	}
}

// Generate asks the service for one command for platform. The returned
// text is not trimmed or otherwise rewritten.
func (c *Client) Generate(ctx context.Context, prompt, platform string) (string, error) {
	return c.provider.Complete(ctx, BuildMessages(prompt, platform))
}
