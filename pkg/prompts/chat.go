package prompts

import (
	"fmt"

	"github.com/promptline/relay/pkg/llm"
)

// MessageSpec pairs a message role with a template for its content
type MessageSpec struct {
	Role     llm.Role
	Template *Template
}

// System creates a system message spec
func System(text string, variables ...string) MessageSpec {
	return MessageSpec{Role: llm.RoleSystem, Template: New(text, variables...)}
}

// Human creates a user message spec
func Human(text string, variables ...string) MessageSpec {
	return MessageSpec{Role: llm.RoleUser, Template: New(text, variables...)}
}

// AI creates an assistant message spec
func AI(text string, variables ...string) MessageSpec {
	return MessageSpec{Role: llm.RoleAssistant, Template: New(text, variables...)}
}

// ChatTemplate is an ordered list of role-tagged message templates
type ChatTemplate struct {
	specs []MessageSpec
}

// NewChat creates a chat template from message specs
func NewChat(specs ...MessageSpec) *ChatTemplate {
	return &ChatTemplate{specs: specs}
}

// FormatMessages renders every message spec against the given values
func (c *ChatTemplate) FormatMessages(values map[string]string) ([]llm.Message, error) {
	messages := make([]llm.Message, 0, len(c.specs))

	for i, spec := range c.specs {
		content, err := spec.Template.Format(values)
		if err != nil {
			return nil, fmt.Errorf("failed to format message %d: %w", i, err)
		}

		messages = append(messages, llm.Message{
			Role:    spec.Role,
			Content: content,
		})
	}

	return messages, nil
}
