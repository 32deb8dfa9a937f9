package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider for OpenAI and OpenAI-compatible
// endpoints.
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider. Setting BaseURL points
// the client at a compatible server without changing anything else.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 1200
	}
	if config.Temperature == 0 {
		config.Temperature = 0.15
	}
	if config.Timeout == 0 {
		config.Timeout = 30
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Simple check: try to list models (lightweight API call)
	_, err := p.client.ListModels(ctx)
	if err != nil {
		// Log the actual error for debugging (this helps users diagnose API key issues)
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Analyze runs the chunk or focus analysis prompt over req.Text.
func (p *OpenAIProvider) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	system, user := BuildAnalysisPrompt(req)

	raw, err := p.complete(ctx, system, user)
	if err != nil {
		return nil, Classify(err)
	}

	analysis, err := decodeAnalysis(raw)
	if err != nil {
		return nil, Classify(err)
	}
	return analysis, nil
}

// Refine tailors mitigation and replacement language for one clause.
func (p *OpenAIProvider) Refine(ctx context.Context, req RefineRequest) (*Refinement, error) {
	system, user := BuildRefinePrompt(req)

	raw, err := p.complete(ctx, system, user)
	if err != nil {
		return nil, Classify(err)
	}

	refinement, err := decodeRefinement(raw)
	if err != nil {
		return nil, Classify(err)
	}
	return refinement, nil
}

func (p *OpenAIProvider) complete(ctx context.Context, system, user string) (string, error) {
	if err := apiLimiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.config.Timeout)*time.Second)
	defer cancel()

	if p.config.Verbose {
		fmt.Fprintf(os.Stderr, "openai: %s request, %d prompt chars\n", p.config.Model, len(system)+len(user))
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		MaxTokens:   p.config.MaxTokens,
		Temperature: float32(p.config.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
