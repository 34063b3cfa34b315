// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Quality gate. A schema-valid analysis can still be useless — two
// vague bullets and a "matches the key concept" fact satisfy every type
// constraint. IsWeak detects that textual genericness so the engine can
// retry. It cannot verify factual accuracy, only that shape and
// phrasing resemble substantive content. Implements: prd004-quality-gate;
//
//	docs/ARCHITECTURE § Quality Gate.

// genericBriefPhrases flag a topic-brief bullet as template filler.
var genericBriefPhrases = []string{
	"important topic for the exam",
	"key concept of the subject",
	"general overview",
	"refer to standard sources",
	"this topic is important",
}

// genericFactPhrases flag a fact as template filler rather than
// evidence.
var genericFactPhrases = []string{
	"matches the key concept",
	"other options contradict",
	"as per the source",
	"based on general knowledge",
	"is related to the topic",
}

// minRationaleLen is the shortest verdict rationale accepted as
// substantive.
const minRationaleLen = 10

// IsWeak reports whether a post-processed analysis is too generic or
// incomplete to return to the caller. Any single failing check rejects.
func IsWeak(a types.Analysis) bool {
	if len(a.TopicBrief.Bullets) < 2 || allGeneric(a.TopicBrief.Bullets, genericBriefPhrases) {
		return true
	}
	if len(a.Statements) == 0 {
		return true
	}
	if !hasSubstantiveStatement(a.Statements) {
		return true
	}
	if len(a.Strategy.ExamStrategy) < 2 {
		return true
	}
	if len(a.Strategy.LogicalDeduction) < 2 {
		return true
	}
	if len(a.Strategy.Difficulty.Why) == 0 {
		return true
	}
	if len(strings.TrimSpace(a.Strategy.AIVerdict.Rationale)) < minRationaleLen {
		return true
	}
	return false
}

// hasSubstantiveStatement reports whether at least one statement backs
// itself with two or more non-generic facts.
func hasSubstantiveStatement(statements []types.StatementBlock) bool {
	for _, st := range statements {
		substantive := 0
		for _, f := range st.Facts {
			if !containsAny(f.Fact, genericFactPhrases) {
				substantive++
			}
		}
		if substantive >= 2 {
			return true
		}
	}
	return false
}

// allGeneric reports whether every item in the list matches template
// phrasing. A single original line is enough to pass.
func allGeneric(items []string, phrases []string) bool {
	for _, it := range items {
		if !containsAny(it, phrases) {
			return false
		}
	}
	return true
}

func containsAny(s string, phrases []string) bool {
	lower := strings.ToLower(s)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
