package sdk

import (
	"encoding/json"
	"time"

	"github.com/promptline/relay/pkg/llm"
)

// StatusType marks an API response as success, fail, or error
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusFail    StatusType = "fail"
	StatusError   StatusType = "error"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  StatusType `json:"status"`          // Status message
	Code    int        `json:"code"`            // Status code
	Message string     `json:"message"`         // Human-readable message
	Data    T          `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any        `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the ApiResponse to a format suitable for JSON responses
func (r ApiResponse[T]) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	e := err
	if asErr, ok := err.(error); ok {
		e = asErr.Error()
	}

	return ApiResponse[any]{
		Status:  StatusError,
		Code:    code,
		Message: message,
		Error:   e,
	}
}

/** Requests */

// CompletionRequest represents the request body for a stateful chat completion
type CompletionRequest struct {
	Question  string `json:"question" binding:"required"`
	Context   string `json:"context"`
	SessionID string `json:"session_id"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

/** Responses */

// CompletionResponse represents the response body for a chat completion
type CompletionResponse struct {
	Response   string `json:"response"`
	PromptID   string `json:"prompt_id"`
	SessionID  string `json:"session_id"`
	ModelName  string `json:"model_name"`
	TokensUsed int64  `json:"tokens_used"`
}

// Session represents a conversation session summary
type Session struct {
	SessionID    string    `json:"session_id"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionTranscript represents a full conversation transcript
type SessionTranscript struct {
	SessionID string        `json:"session_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Messages  []llm.Message `json:"messages"`
}

// User represents a stored user
type User struct {
	ID        uint      `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
