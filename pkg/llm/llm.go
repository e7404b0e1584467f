package llm

import "context"

// Role identifies who authored a message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the full input to a chat completion call
type Request struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Messages    []Message `json:"messages"`
}

// Response holds the completion result and usage information
type Response struct {
	Content     string `json:"content"`
	Model       string `json:"model"`
	TotalTokens int64  `json:"total_tokens"`
}

// Client is implemented by chat completion backends
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
