// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"math"
	"strings"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Defaults applied when the generator omits or mangles a field.
const (
	defaultBriefTitle = "Topic Brief"
	defaultConfidence = 60
)

var validVerdicts = map[types.Verdict]bool{
	types.VerdictCorrect:   true,
	types.VerdictIncorrect: true,
	types.VerdictUnknown:   true,
}

var validDifficulties = map[types.DifficultyLevel]bool{
	types.DifficultyEasy:     true,
	types.DifficultyModerate: true,
	types.DifficultyHard:     true,
}

var validRecommendations = map[types.Recommendation]bool{
	types.RecommendAttempt: true,
	types.RecommendSkip:    true,
}

// Normalize converts an arbitrary decoded JSON value into a fully typed
// Analysis. It never fails, whatever the shape of raw: nil, arrays,
// primitives, and deeply malformed objects all degrade to defaults
// field by field. This is the load-bearing property of the whole
// pipeline — a parse failure upstream hands in an empty object and
// still gets a schema-valid record back.
//
// questionText feeds the source classifier; it is not otherwise
// consulted. The correct answer is carried through as-is when valid and
// left empty otherwise; Enforce injects the authoritative letter either
// way. Implements: prd002-normalization (R1-R3);
//
//	docs/ARCHITECTURE § Normalizer.
func Normalize(raw any, questionText string) types.Analysis {
	obj := asObject(raw)

	return types.Analysis{
		CorrectAnswer: normalizeLetter(obj["correct_answer"]),
		TopicBrief:    normalizeTopicBrief(obj["topic_brief"]),
		Statements:    normalizeStatements(obj["statements"], questionText),
		Strategy:      normalizeStrategy(obj["strategy"]),
	}
}

// normalizeLetter keeps a valid option letter (case-insensitively) and
// drops anything else. The post-processor overwrites this field
// regardless, so no default is invented here.
func normalizeLetter(v any) types.OptionLetter {
	s := strings.ToUpper(asTrimmedString(v, ""))
	if types.ValidOptionLetter(s) {
		return types.OptionLetter(s)
	}
	return ""
}

// normalizeTopicBrief tolerates the three shapes the generator has
// historically produced for topic_brief: an object, a bare array of
// bullet strings, and a single string treated as one bullet.
func normalizeTopicBrief(v any) types.TopicBrief {
	tb := types.TopicBrief{Title: defaultBriefTitle, Bullets: []string{}}

	switch val := v.(type) {
	case map[string]any:
		tb.Title = asTrimmedString(val["title"], defaultBriefTitle)
		tb.Bullets = asStringList(val["bullets"])
	case []any:
		tb.Bullets = asStringList(val)
	case string:
		if s := strings.TrimSpace(val); s != "" {
			tb.Bullets = []string{s}
		}
	}

	return tb
}

func normalizeStatements(v any, questionText string) []types.StatementBlock {
	items := asList(v)
	out := make([]types.StatementBlock, 0, len(items))

	for i, it := range items {
		obj := asObject(it)

		// A statement id must be a positive finite number; Roman
		// numerals, nulls, and the rest get the 1-based position.
		id := i + 1
		if n, ok := asNumber(obj["id"]); ok && n > 0 {
			id = int(n)
		}

		verdict := types.Verdict(strings.ToLower(asTrimmedString(obj["verdict"], "")))
		if !validVerdicts[verdict] {
			verdict = types.VerdictUnknown
		}

		out = append(out, types.StatementBlock{
			ID:      id,
			Verdict: verdict,
			Facts:   normalizeFacts(obj["facts"], questionText),
		})
	}

	return out
}

// normalizeFacts drops entries with empty fact text rather than
// defaulting them; a fact with nothing to say carries no value.
func normalizeFacts(v any, questionText string) []types.Fact {
	items := asList(v)
	out := make([]types.Fact, 0, len(items))

	for _, it := range items {
		obj := asObject(it)

		text := asTrimmedString(obj["fact"], "")
		if text == "" {
			continue
		}

		out = append(out, types.Fact{
			Fact:    text,
			Example: asTrimmedString(obj["example"], ""),
			Source:  SanitizeSource(obj["source"], questionText, text),
		})
	}

	return out
}

func normalizeStrategy(v any) types.Strategy {
	obj := asObject(v)
	diff := asObject(obj["difficulty"])
	verdict := asObject(obj["ai_verdict"])

	level := types.DifficultyLevel(strings.ToLower(asTrimmedString(diff["level"], "")))
	if !validDifficulties[level] {
		level = types.DifficultyModerate
	}

	rec := types.Recommendation(strings.ToLower(asTrimmedString(verdict["recommendation"], "")))
	if !validRecommendations[rec] {
		rec = types.RecommendAttempt
	}

	return types.Strategy{
		Difficulty: types.Difficulty{
			Level: level,
			Why:   asStringList(diff["why"]),
		},
		ExamStrategy:     asStringList(obj["exam_strategy"]),
		LogicalDeduction: asStringList(obj["logical_deduction"]),
		AIVerdict: types.AIVerdict{
			Recommendation: rec,
			Rationale:      asTrimmedString(verdict["rationale"], ""),
			Confidence:     normalizeConfidence(verdict["confidence"]),
		},
	}
}

// normalizeConfidence clamps a numeric confidence to [0,100] and
// defaults everything else to 60.
func normalizeConfidence(v any) int {
	n, ok := asNumber(v)
	if !ok {
		return defaultConfidence
	}
	return clampInt(int(math.Round(n)), 0, 100)
}
