// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package generator implements the generative-model backends behind the
// analysis engine. Each backend takes a rendered prompt and a sampling
// temperature and returns the model's raw text; everything downstream
// (parsing, normalization, quality gating) is backend-agnostic.
// Implements: prd001-generation (R5); docs/ARCHITECTURE § Backends.
package generator

import (
	"fmt"

	"github.com/mindgrove/answer-engine/internal/analyze"
	"github.com/mindgrove/answer-engine/pkg/types"
)

// New returns the backend selected by cfg.AI.Provider. An empty
// provider defaults to Gemini.
func New(cfg types.EngineConfig) (analyze.Generator, error) {
	switch cfg.AI.Provider {
	case "", types.ProviderGemini:
		return NewGemini(cfg.AI.APIKey, cfg.AI.Model), nil
	case types.ProviderClaude:
		return NewClaude(cfg.AI.APIKey, cfg.AI.Model, cfg.HTTP), nil
	default:
		return nil, fmt.Errorf("unknown provider %q: use gemini or claude", cfg.AI.Provider)
	}
}
