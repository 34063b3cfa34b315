// Copyright Mindgrove Labs, 2026. All rights reserved.

package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates analyses through the Gemini API. The response MIME
// type is pinned to JSON so the model wraps less; the pipeline still
// treats the returned text as opaque and unparsed.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini builds a Gemini backend. An empty model selects the
// default.
func NewGemini(apiKey, model string) *Gemini {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{apiKey: strings.TrimSpace(apiKey), model: model}
}

// Generate sends the prompt and returns the first text part of the
// first candidate. Transport and API failures return unabsorbed; the
// analysis engine propagates them to the caller.
func (g *Gemini) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("gemini: API key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: creating client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(temperature),
		ResponseMIMEType: "application/json",
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
