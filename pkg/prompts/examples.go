package prompts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadExamples reads few-shot examples from a YAML file of the form:
//
//	examples:
//	  - question: What is UB claim?
//	    answer: Uniform Billing hospital claim.
func LoadExamples(filePath string) ([]Example, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples file %s: %w", filePath, err)
	}

	var file struct {
		Examples []Example `yaml:"examples"`
	}
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse examples file %s: %w", filePath, err)
	}

	if len(file.Examples) == 0 {
		return nil, fmt.Errorf("examples file %s contains no examples", filePath)
	}

	return file.Examples, nil
}

// LoadExamplesWithFallback reads examples from a file, falling back to
// the provided defaults when the file is missing or invalid
func LoadExamplesWithFallback(filePath string, fallback []Example) []Example {
	if examples, err := LoadExamples(filePath); err == nil {
		return examples
	}
	return fallback
}

// DefaultExamples returns the built-in insurance domain example set
func DefaultExamples() []Example {
	return []Example{
		{Question: "What is UB claim?", Answer: "Uniform Billing hospital claim."},
		{Question: "What is EOB?", Answer: "Explanation of Benefits."},
	}
}
