package llm

import (
	"fmt"
	"strings"
)

// New creates a provider from configuration. An empty provider name
// returns (nil, nil): LLM analysis is disabled and callers take the
// heuristic path.
func New(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "gemini", "google":
		return NewGeminiProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, openai)", config.Provider)
	}
}

// NewProvider is the factory used by the pipeline. It is a package-level
// variable so tests can replace it with a mock without modifying the call
// site. Tests must restore the original value; use t.Cleanup to do so.
var NewProvider = New
