// Package ai provides types for the chat-completion API client.
package ai

// Roles used in a command-generation request.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// chatRequest is the request body sent to the completion endpoint.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage is a single message in the chat format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we read.
// Content is a pointer so that a JSON null can be told apart from "".
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError is the error envelope returned on non-2xx statuses.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
