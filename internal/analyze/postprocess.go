// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Enforce applies the cross-field invariants the normalizer alone
// cannot guarantee and returns the corrected analysis. It is
// idempotent, and every analysis leaving the pipeline passes through it
// — including the deterministic fallback.
//
// The one hard business invariant lives here: CorrectAnswer is always
// overwritten with the request's official answer, even when the
// generator's output looked internally consistent but disagreed with
// the official key. Implements: prd002-normalization (R4);
//
//	docs/ARCHITECTURE § Post-Processor.
func Enforce(a types.Analysis, req types.AnalysisRequest) types.Analysis {
	a.CorrectAnswer = req.OfficialAnswer

	if strings.TrimSpace(a.TopicBrief.Title) == "" {
		a.TopicBrief.Title = defaultBriefTitle
	}
	if a.TopicBrief.Bullets == nil {
		a.TopicBrief.Bullets = []string{}
	}

	if a.Statements == nil {
		a.Statements = []types.StatementBlock{}
	}
	for i := range a.Statements {
		st := &a.Statements[i]
		if st.ID <= 0 {
			st.ID = i + 1
		}
		if !validVerdicts[st.Verdict] {
			st.Verdict = types.VerdictUnknown
		}
		if st.Facts == nil {
			st.Facts = []types.Fact{}
		}
	}

	if !validDifficulties[a.Strategy.Difficulty.Level] {
		a.Strategy.Difficulty.Level = types.DifficultyModerate
	}
	if a.Strategy.Difficulty.Why == nil {
		a.Strategy.Difficulty.Why = []string{}
	}
	if a.Strategy.ExamStrategy == nil {
		a.Strategy.ExamStrategy = []string{}
	}
	if a.Strategy.LogicalDeduction == nil {
		a.Strategy.LogicalDeduction = []string{}
	}
	if !validRecommendations[a.Strategy.AIVerdict.Recommendation] {
		a.Strategy.AIVerdict.Recommendation = types.RecommendAttempt
	}
	a.Strategy.AIVerdict.Confidence = clampInt(a.Strategy.AIVerdict.Confidence, 0, 100)

	return a
}
