package chat

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/promptline/relay/internal/stores/conversation"
	"github.com/promptline/relay/pkg/llm"
	"github.com/promptline/relay/pkg/prompts"
	"github.com/promptline/relay/pkg/sdk"
	"github.com/promptline/relay/pkg/utils"
)

// Default persona for stateful conversations
const defaultSystemPrompt = "You are an insurance domain expert specializing in UB (Uniform Billing) hospital claims."

// ChatService runs stateful completions against the conversation store
type ChatService struct {
	client      llm.Client
	store       *conversation.Store
	sweeper     *conversation.Sweeper
	model       string
	temperature float64
	maxWords    int

	systemPrompt string
	userTemplate *prompts.Template
}

var chatService *ChatService

// Init creates the chat service backed by the OpenAI API
func Init(cfg *utils.Config) error {
	apiKey := cfg.Get("OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set in environment")
	}

	return InitWithClient(cfg, llm.NewOpenAIClient(apiKey))
}

// InitWithClient creates the chat service with a caller-provided client
func InitWithClient(cfg *utils.Config, client llm.Client) error {
	store := conversation.NewStore()

	// Idle-session sweeping is opt-in and off by default
	sweeper, err := conversation.NewSweeper(cfg, store)
	if err != nil {
		return fmt.Errorf("failed to create session sweeper: %w", err)
	}
	if sweeper != nil {
		sweeper.Start()
	}

	systemPrompt := defaultSystemPrompt
	if path := cfg.Get("SYSTEM_PROMPT_FILE"); path != "" {
		systemPrompt = utils.LoadPromptWithFallback(path, defaultSystemPrompt)
	}

	chatService = &ChatService{
		client:      client,
		store:       store,
		sweeper:     sweeper,
		model:       cfg.GetWithDefault("OPENAI_MODEL_NAME", "gpt-4o-mini"),
		temperature: cfg.GetFloatWithDefault("OPENAI_TEMPERATURE", 0.3),
		maxWords:    cfg.GetIntWithDefault("OPENAI_MAX_WORDS", 50),

		systemPrompt: systemPrompt,
		userTemplate: prompts.New(
			"Question: {question}\nContext: {context}\nNote: response max {words} words.",
			"question", "context", "words",
		),
	}

	return nil
}

// GetService returns the active chat service
func GetService() *ChatService {
	return chatService
}

// Store returns the underlying conversation store
func (s *ChatService) Store() *conversation.Store {
	return s.store
}

// NewSession mints a session id and creates its empty transcript
func (s *ChatService) NewSession() conversation.SessionInfo {
	sessionID := uuid.NewString()
	transcript := s.store.GetOrCreate(sessionID)

	return conversation.SessionInfo{
		SessionID:    sessionID,
		MessageCount: transcript.Len(),
		CreatedAt:    transcript.CreatedAt(),
		UpdatedAt:    transcript.UpdatedAt(),
	}
}

// Complete records the question in the session transcript, completes the
// conversation so far, and records the assistant reply
func (s *ChatService) Complete(ctx context.Context, req sdk.CompletionRequest) (*sdk.CompletionResponse, error) {
	// Render the user turn from the request
	content, err := s.userTemplate.Format(map[string]string{
		"question": req.Question,
		"context":  req.Context,
		"words":    strconv.Itoa(s.maxWords),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format prompt: %w", err)
	}

	// Any session id is valid, including the empty string
	transcript := s.store.GetOrCreate(req.SessionID)

	// Conversation so far, prefixed with the persona and followed by the
	// new user turn. The turn is not recorded yet, so a failed completion
	// leaves the transcript unchanged and a retry does not duplicate it
	messages := append(
		[]llm.Message{{Role: llm.RoleSystem, Content: s.systemPrompt}},
		transcript.Messages()...,
	)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: content})

	resp, err := s.client.Complete(ctx, llm.Request{
		Model:       s.model,
		Temperature: s.temperature,
		Messages:    messages,
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	transcript.Append(llm.RoleUser, content)
	transcript.Append(llm.RoleAssistant, resp.Content)

	return &sdk.CompletionResponse{
		Response:   resp.Content,
		PromptID:   uuid.NewString(),
		SessionID:  req.SessionID,
		ModelName:  resp.Model,
		TokensUsed: resp.TotalTokens,
	}, nil
}
