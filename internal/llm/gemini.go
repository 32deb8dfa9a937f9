package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements Provider on the Google Generative AI SDK. A
// new genai.Client is created per call so the caller's context governs the
// connection and the client is always closed after use.
type GeminiProvider struct {
	config Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if config.Model == "" {
		config.Model = defaultGeminiModel
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

	return &GeminiProvider{config: config}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks that the API key is accepted by listing models
func (p *GeminiProvider) IsAvailable(ctx context.Context) bool {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.config.APIKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gemini API check failed: %v\n", err)
		return false
	}
	defer client.Close()

	it := client.ListModels(ctx)
	if _, err := it.Next(); err != nil && err != iterator.Done {
		fmt.Fprintf(os.Stderr, "Gemini API check failed: %v\n", err)
		return false
	}
	return true
}

// Analyze runs the chunk or focus analysis prompt over req.Text.
func (p *GeminiProvider) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	system, user := BuildAnalysisPrompt(req)

	raw, err := p.generate(ctx, system, user)
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
func (p *GeminiProvider) Refine(ctx context.Context, req RefineRequest) (*Refinement, error) {
	system, user := BuildRefinePrompt(req)

	raw, err := p.generate(ctx, system, user)
	if err != nil {
		return nil, Classify(err)
	}

	refinement, err := decodeRefinement(raw)
	if err != nil {
		return nil, Classify(err)
	}
	return refinement, nil
}

func (p *GeminiProvider) generate(ctx context.Context, system, user string) (string, error) {
	if err := apiLimiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.config.Timeout)*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.config.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(p.config.Model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	maxOut := int32(p.config.MaxTokens)
	m.MaxOutputTokens = &maxOut
	temp := float32(p.config.Temperature)
	m.Temperature = &temp
	// JSON output mode keeps the model from wrapping the response in
	// markdown code fences.
	m.ResponseMIMEType = "application/json"

	if p.config.Verbose {
		fmt.Fprintf(os.Stderr, "gemini: %s request, %d prompt chars\n", p.config.Model, len(system)+len(user))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	var parts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				parts = append(parts, string(t))
			}
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: response contained no text content")
	}
	return strings.Join(parts, ""), nil
}
