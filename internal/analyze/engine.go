// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package analyze turns free-form generative-model responses into
// strictly shaped, invariant-respecting answer analyses for
// multiple-choice questions. The pipeline is prompt → generate → parse
// → normalize → post-process → quality gate, with a bounded retry and a
// deterministic fallback. Implements: prd001-generation,
// prd002-normalization, prd003-source-classification, prd004-quality-gate;
//
//	docs/ARCHITECTURE § Analysis Pipeline.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Generator produces raw model text for a prompt at a given sampling
// temperature. Implementations live in internal/generator; tests supply
// mocks.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// attemptTemperatures gives the sampling temperature per attempt. The
// second attempt runs looser than the first: a rejected first answer is
// usually too conservative and generic, not syntactically broken.
// Attempts beyond the list reuse the last entry.
var attemptTemperatures = []float32{0.4, 0.9}

const defaultMaxAttempts = 2

// Engine drives generation attempts for one question at a time. It
// holds no mutable state across calls, so a single Engine is safe under
// arbitrary concurrent use.
type Engine struct {
	backend     Generator
	maxAttempts int
}

// NewEngine wires a generation backend into an analysis engine.
// maxAttempts below 1 falls back to the default of 2.
func NewEngine(backend Generator, maxAttempts int) *Engine {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	return &Engine{backend: backend, maxAttempts: maxAttempts}
}

// attemptState tracks the retry loop. Two states keep the loop explicit
// and make adjusting the attempt budget a one-line change.
type attemptState int

const (
	stateAttempting attemptState = iota
	stateExhausted
)

// Analyze produces a fully populated Analysis for the request. Every
// attempt runs the raw model text through parse → Normalize → Enforce,
// and the first result the quality gate accepts is returned. When all
// attempts are rejected, the deterministic fallback is enforced and
// returned — a normal return, not an error.
//
// Only backend transport failures surface as errors; the calling layer
// owns retry-after and user messaging for those. Malformed model output
// never does: an unparseable response degrades to an empty object and
// from there to defaults.
func (e *Engine) Analyze(ctx context.Context, req types.AnalysisRequest) (types.Analysis, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return types.Analysis{}, fmt.Errorf("rendering prompt: %w", err)
	}

	state := stateAttempting
	attempt := 0
	for state == stateAttempting {
		raw, err := e.backend.Generate(ctx, prompt, temperatureFor(attempt))
		if err != nil {
			return types.Analysis{}, fmt.Errorf("generation attempt %d: %w", attempt+1, err)
		}

		a := Enforce(Normalize(parseObject(raw), req.QuestionText), req)
		if !IsWeak(a) {
			return a, nil
		}

		attempt++
		if attempt >= e.maxAttempts {
			state = stateExhausted
		}
	}

	return Enforce(Fallback(req), req), nil
}

func temperatureFor(attempt int) float32 {
	if attempt < len(attemptTemperatures) {
		return attemptTemperatures[attempt]
	}
	return attemptTemperatures[len(attemptTemperatures)-1]
}

// parseObject decodes raw model text as JSON, tolerating Markdown code
// fences. A parse failure yields an empty object: Normalize turns that
// into full defaults, so bad syntax never aborts the pipeline.
func parseObject(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &v); err != nil {
		return map[string]any{}
	}
	return v
}

// stripCodeFences removes a surrounding ```json ... ``` wrapper, which
// models add despite every instruction not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
