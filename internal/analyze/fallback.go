// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import "github.com/mindgrove/answer-engine/pkg/types"

// Fallback builds the hand-authored analysis returned when every
// generation attempt is rejected by the quality gate. Returning it is a
// normal outcome, not an error: the caller always receives a
// schema-valid record. The caller must still run the result through
// Enforce — the CorrectAnswer below is a template literal, and the
// official answer is injected there.
func Fallback(req types.AnalysisRequest) types.Analysis {
	return types.Analysis{
		CorrectAnswer: types.OptionA,
		TopicBrief: types.TopicBrief{
			Title: defaultBriefTitle,
			Bullets: []string{
				"Automated analysis could not produce a reliable breakdown for this question.",
				"Verify the concept against NCERT or another standard source before revising.",
			},
		},
		Statements: []types.StatementBlock{
			{
				ID:      1,
				Verdict: types.VerdictUnknown,
				Facts: []types.Fact{
					{
						Fact: "A detailed factual breakdown was not available for this question.",
						Source: types.SourceRef{
							Name:    types.SourceStandardBook,
							Pointer: canonicalPointers[types.SourceStandardBook],
						},
					},
				},
			},
		},
		Strategy: types.Strategy{
			Difficulty: types.Difficulty{
				Level: types.DifficultyModerate,
				Why:   []string{"Insufficient signal to grade this question automatically."},
			},
			ExamStrategy: []string{
				"Re-read the question stem and eliminate options that contradict it directly.",
				"Flag the question and return to it after the confident attempts.",
			},
			LogicalDeduction: []string{
				"Compare each option against the stem for internal contradictions.",
				"Prefer options consistent with standard textbook treatment of the topic.",
			},
			AIVerdict: types.AIVerdict{
				Recommendation: types.RecommendSkip,
				Rationale:      "Automated analysis was inconclusive; attempt only if the topic is familiar.",
				Confidence:     40,
			},
		},
	}
}
