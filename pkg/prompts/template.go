package prompts

import (
	"fmt"
	"strings"
)

// Template is a reusable prompt with named {variable} placeholders.
// Formatting fails if a declared variable is missing from the values,
// so broken prompts surface at request time instead of at the model.
type Template struct {
	text      string
	variables []string
}

// New creates a template from text and its declared input variables
func New(text string, variables ...string) *Template {
	return &Template{
		text:      text,
		variables: variables,
	}
}

// Variables returns the declared input variables
func (t *Template) Variables() []string {
	out := make([]string, len(t.variables))
	copy(out, t.variables)
	return out
}

// Format substitutes the declared variables into the template text.
// Substitution is a single pass over the text, so placeholders inside
// the values themselves stay literal
func (t *Template) Format(values map[string]string) (string, error) {
	pairs := make([]string, 0, len(t.variables)*2)
	for _, name := range t.variables {
		value, ok := values[name]
		if !ok {
			return "", fmt.Errorf("missing value for template variable %q", name)
		}
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(t.text), nil
}
