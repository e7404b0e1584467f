package prompts

import (
	"fmt"

	"github.com/promptline/relay/pkg/llm"
)

// Example is a single question/answer pair used to prime the model
type Example struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FewShotTemplate renders a prefix, a run of worked examples, and a
// suffix carrying the actual question
type FewShotTemplate struct {
	prefix        *Template
	examplePrompt *ChatTemplate
	suffix        *Template
	examples      []Example
}

// NewFewShot creates a few-shot template with the default example prompt
func NewFewShot(prefix *Template, examples []Example, suffix *Template) *FewShotTemplate {
	examplePrompt := NewChat(
		Human("Question: {question}", "question"),
		AI("Answer: {answer}", "answer"),
	)

	return &FewShotTemplate{
		prefix:        prefix,
		examplePrompt: examplePrompt,
		suffix:        suffix,
		examples:      examples,
	}
}

// FormatMessages renders the full few-shot message sequence
func (f *FewShotTemplate) FormatMessages(values map[string]string) ([]llm.Message, error) {
	var messages []llm.Message

	// Prefix becomes the system message
	if f.prefix != nil {
		content, err := f.prefix.Format(values)
		if err != nil {
			return nil, fmt.Errorf("failed to format prefix: %w", err)
		}
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: content})
	}

	// Worked examples alternate human/assistant turns
	for i, example := range f.examples {
		exampleMessages, err := f.examplePrompt.FormatMessages(map[string]string{
			"question": example.Question,
			"answer":   example.Answer,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to format example %d: %w", i, err)
		}
		messages = append(messages, exampleMessages...)
	}

	// Suffix carries the caller's question
	if f.suffix != nil {
		content, err := f.suffix.Format(values)
		if err != nil {
			return nil, fmt.Errorf("failed to format suffix: %w", err)
		}
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: content})
	}

	return messages, nil
}
