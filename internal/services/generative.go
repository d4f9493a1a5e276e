package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/genai"

	"github.com/heenakousar16/beauty/internal/config"
)

var generativeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "beauty_generative_fallbacks_total",
	Help: "Generative calls that fell back to deterministic text",
})

// GenerateOptions bound a single completion request.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// TextGenerator is the one generative-text port shared by the description
// synthesizer and the consultant responder. A nil TextGenerator means no
// backend is configured; callers check once per call and use their
// deterministic variant instead.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error)
}

// GeminiGenerator implements TextGenerator on top of the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates the Gemini-backed generator. It returns
// (nil, nil) when no API key is configured, so missing credentials are
// detectable without an error.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.GeminiModel,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error) {
	temp := opts.Temperature
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if system != "" {
		generateConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in Gemini response")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("empty response text from Gemini")
	}

	return text, nil
}
