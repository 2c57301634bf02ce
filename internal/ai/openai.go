package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// OpenAIProvider implements Provider for an OpenAI-compatible
// chat-completions endpoint.
type OpenAIProvider struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewOpenAIProvider creates a provider for the given endpoint. A zero
// timeout leaves the request without a deadline.
func NewOpenAIProvider(apiKey, model, apiURL string, timeout time.Duration, log logrus.FieldLogger) *OpenAIProvider {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &OpenAIProvider{
		apiKey:     apiKey,
		model:      model,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Complete posts messages to the endpoint and returns the content of the
// first choice exactly as the service sent it.
func (o *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]chatMessage, len(messages))
	for i, m := range messages {
		msgs[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	body, err := json.Marshal(chatRequest{Model: o.model, Messages: msgs})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	log := o.log.WithFields(logrus.Fields{"model": o.model, "url": o.apiURL})
	log.Debug("sending completion request")
	start := time.Now()

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", newError(ErrTransport, "could not reach "+o.apiURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(ErrTransport, "failed to read response", err)
	}
	log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("completion response received")

	return parseContent(resp.StatusCode, respBody)
}

// parseContent extracts choices[0].message.content from a response body.
func parseContent(status int, body []byte) (string, error) {
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", newError(ErrMalformedResponse, fmt.Sprintf("failed to parse response (status %d)", status), err)
	}

	if status < 200 || status > 299 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", newError(ErrAPI, fmt.Sprintf("status %d: %s", status, parsed.Error.Message), nil)
		}
	}

	if len(parsed.Choices) == 0 {
		return "", newError(ErrMalformedResponse, "response has no choices", nil)
	}
	content := parsed.Choices[0].Message.Content
	if content == nil {
		return "", newError(ErrMalformedResponse, "first choice has no message content", nil)
	}
	return *content, nil
}
