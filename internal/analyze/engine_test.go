// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// scriptedGenerator returns canned responses in order and records the
// temperature of each call.
type scriptedGenerator struct {
	responses    []string
	err          error
	calls        int
	temperatures []float32
}

func (g *scriptedGenerator) Generate(_ context.Context, _ string, temperature float32) (string, error) {
	g.calls++
	g.temperatures = append(g.temperatures, temperature)
	if g.err != nil {
		return "", g.err
	}
	resp := g.responses[len(g.temperatures)-1]
	return resp, nil
}

// strongResponse is a generator payload that clears the quality gate.
func strongResponse(t *testing.T, answer string) string {
	t.Helper()
	a := substantiveAnalysis()
	a.CorrectAnswer = types.OptionLetter(answer)
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshaling fixture: %v", err)
	}
	return string(data)
}

func TestAnalyzeAcceptsFirstAttempt(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{strongResponse(t, "B")}}
	engine := NewEngine(gen, 2)

	a, err := engine.Analyze(context.Background(), testRequest(types.OptionB))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1 (no second attempt after acceptance)", gen.calls)
	}
	if a.CorrectAnswer != types.OptionB {
		t.Errorf("correct answer = %q, want B", a.CorrectAnswer)
	}
}

func TestAnalyzeRetriesAtHigherTemperature(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		`{}`, // rejected by the quality gate
		strongResponse(t, "A"),
	}}
	engine := NewEngine(gen, 2)

	_, err := engine.Analyze(context.Background(), testRequest(types.OptionA))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("calls = %d, want 2", gen.calls)
	}
	if gen.temperatures[1] <= gen.temperatures[0] {
		t.Errorf("second attempt temperature %v not higher than first %v",
			gen.temperatures[1], gen.temperatures[0])
	}
}

func TestAnalyzeFallsBackWhenExhausted(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{}`, `not json at all`}}
	engine := NewEngine(gen, 2)

	a, err := engine.Analyze(context.Background(), testRequest(types.OptionD))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("calls = %d, want 2", gen.calls)
	}

	// The fallback is a normal return carrying the official answer, not
	// the fallback template's own literal.
	if a.CorrectAnswer != types.OptionD {
		t.Errorf("correct answer = %q, want official D", a.CorrectAnswer)
	}
	if a.Strategy.AIVerdict.Recommendation != types.RecommendSkip {
		t.Errorf("fallback recommendation = %q, want skip", a.Strategy.AIVerdict.Recommendation)
	}
	if len(a.Statements) == 0 {
		t.Error("fallback has no statements")
	}
}

func TestAnalyzeOverridesGeneratorAnswer(t *testing.T) {
	// A high-quality response claiming the wrong option still comes
	// back stamped with the official answer.
	gen := &scriptedGenerator{responses: []string{strongResponse(t, "D")}}
	engine := NewEngine(gen, 2)

	a, err := engine.Analyze(context.Background(), testRequest(types.OptionA))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.CorrectAnswer != types.OptionA {
		t.Errorf("correct answer = %q, want official A", a.CorrectAnswer)
	}
}

func TestAnalyzePropagatesTransportErrors(t *testing.T) {
	backendErr := errors.New("connection refused")
	gen := &scriptedGenerator{err: backendErr}
	engine := NewEngine(gen, 2)

	_, err := engine.Analyze(context.Background(), testRequest(types.OptionA))
	if !errors.Is(err, backendErr) {
		t.Errorf("err = %v, want wrapped backend error", err)
	}
	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on transport failure)", gen.calls)
	}
}

func TestAnalyzeAbsorbsCodeFences(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		"```json\n" + strongResponse(t, "C") + "\n```",
	}}
	engine := NewEngine(gen, 2)

	a, err := engine.Analyze(context.Background(), testRequest(types.OptionC))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1 (fenced JSON should parse)", gen.calls)
	}
	if len(a.Statements) == 0 {
		t.Error("fenced response degraded to defaults")
	}
}

func TestParseObjectGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", "``` broken"} {
		v := parseObject(raw)
		if _, ok := v.(map[string]any); !ok {
			t.Errorf("parseObject(%q) = %T, want empty object", raw, v)
		}
	}
}

func TestTemperatureForClampsToLast(t *testing.T) {
	last := attemptTemperatures[len(attemptTemperatures)-1]
	if got := temperatureFor(10); got != last {
		t.Errorf("temperatureFor(10) = %v, want %v", got, last)
	}
}
