package prompt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/promptline/relay/pkg/llm"
	"github.com/promptline/relay/pkg/prompts"
	"github.com/promptline/relay/pkg/sdk"
	"github.com/promptline/relay/pkg/utils"
)

// Default persona for the chat and few-shot templates
const defaultSystemPrompt = "You are an insurance domain expert specializing in UB (Uniform Billing) hospital claims."

// PromptService renders the prompt templates and forwards them to the model
type PromptService struct {
	client      llm.Client
	model       string
	temperature float64
	maxWords    int

	template     *prompts.Template
	chatTemplate *prompts.ChatTemplate
	fewShot      *prompts.FewShotTemplate
}

var promptService *PromptService

// Init creates the prompt service backed by the OpenAI API
func Init(cfg *utils.Config) error {
	apiKey := cfg.Get("OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set in environment")
	}

	return InitWithClient(cfg, llm.NewOpenAIClient(apiKey))
}

// InitWithClient creates the prompt service with a caller-provided client
func InitWithClient(cfg *utils.Config, client llm.Client) error {
	systemPrompt := defaultSystemPrompt
	if path := cfg.Get("SYSTEM_PROMPT_FILE"); path != "" {
		systemPrompt = utils.LoadPromptWithFallback(path, defaultSystemPrompt)
	}

	// Few-shot examples come from config with built-in defaults
	examples := prompts.DefaultExamples()
	if path := cfg.Get("PROMPT_EXAMPLES_FILE"); path != "" {
		examples = prompts.LoadExamplesWithFallback(path, examples)
	}

	promptService = &PromptService{
		client:      client,
		model:       cfg.GetWithDefault("OPENAI_MODEL_NAME", "gpt-4o-mini"),
		temperature: cfg.GetFloatWithDefault("OPENAI_TEMPERATURE", 0.3),
		maxWords:    cfg.GetIntWithDefault("OPENAI_MAX_WORDS", 50),

		template: prompts.New(
			"Question: {question}\nContext: {context}\nNote: response max {words} words.",
			"question", "context", "words",
		),
		chatTemplate: prompts.NewChat(
			prompts.System(systemPrompt),
			prompts.Human("Answer the question using ONLY the provided context."),
			prompts.Human("Question:\n{question}", "question"),
			prompts.Human("Context:\n{context}", "context"),
			prompts.Human("Limit the response to {words} words.", "words"),
		),
		fewShot: prompts.NewFewShot(
			prompts.New(systemPrompt+"\nNote: output should be max {words} words.", "words"),
			examples,
			prompts.New("Question: {question}\nContext: {context}\nAnswer:", "question", "context"),
		),
	}

	return nil
}

// GetService returns the active prompt service
func GetService() *PromptService {
	return promptService
}

// InvokeTemplate renders the plain prompt template and completes it
func (s *PromptService) InvokeTemplate(ctx context.Context, question, contextText string) (*sdk.CompletionResponse, error) {
	content, err := s.template.Format(s.values(question, contextText))
	if err != nil {
		return nil, err
	}

	return s.complete(ctx, []llm.Message{{Role: llm.RoleUser, Content: content}})
}

// InvokeChatTemplate renders the chat prompt template and completes it
func (s *PromptService) InvokeChatTemplate(ctx context.Context, question, contextText string) (*sdk.CompletionResponse, error) {
	messages, err := s.chatTemplate.FormatMessages(s.values(question, contextText))
	if err != nil {
		return nil, err
	}

	return s.complete(ctx, messages)
}

// InvokeFewShotTemplate renders the few-shot prompt template and completes it
func (s *PromptService) InvokeFewShotTemplate(ctx context.Context, question, contextText string) (*sdk.CompletionResponse, error) {
	messages, err := s.fewShot.FormatMessages(s.values(question, contextText))
	if err != nil {
		return nil, err
	}

	return s.complete(ctx, messages)
}

// values assembles the common template inputs
func (s *PromptService) values(question, contextText string) map[string]string {
	return map[string]string{
		"question": question,
		"context":  contextText,
		"words":    strconv.Itoa(s.maxWords),
	}
}

// complete forwards rendered messages to the model
func (s *PromptService) complete(ctx context.Context, messages []llm.Message) (*sdk.CompletionResponse, error) {
	resp, err := s.client.Complete(ctx, llm.Request{
		Model:       s.model,
		Temperature: s.temperature,
		Messages:    messages,
	})
	if err != nil {
		return nil, err
	}

	return &sdk.CompletionResponse{
		Response:   resp.Content,
		PromptID:   uuid.NewString(),
		ModelName:  resp.Model,
		TokensUsed: resp.TotalTokens,
	}, nil
}
