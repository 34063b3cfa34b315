// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"bytes"
	"text/template"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// analysisPromptTmpl is the prompt sent to the generative backend for
// one question. It spells out the exact JSON contract and pins the
// correct_answer field to the official answer. The pin is a hint, not
// the safety mechanism: Enforce overwrites the field regardless of what
// the model returns. Per prd001-generation R2.1-R2.3.
var analysisPromptTmpl = template.Must(template.New("analysis").Parse(`You are an exam-preparation analyst for Indian competitive exams. Analyze the following multiple-choice question and produce a structured answer analysis.

Question:
{{.QuestionText}}

Options:
A) {{.Options.A}}
B) {{.Options.B}}
C) {{.Options.C}}
D) {{.Options.D}}

The officially correct option is {{.OfficialAnswer}}. The "correct_answer" field in your response MUST be exactly "{{.OfficialAnswer}}". Do not argue for a different option.

Produce:
- topic_brief: a short title and 2-4 concrete bullets on the topic the question tests. Avoid filler like "important topic for the exam".
- statements: one block per sub-statement of the question (or one block for the whole question), each with a numeric 1-based "id", a "verdict" of "correct", "incorrect", or "unknown", and 2-3 "facts". Every fact needs a specific "fact" text, an optional "example", and a "source".
- Each source has a "name" that is exactly one of: "NCERT", "Tamil Nadu Board", "Standard book", "PIB", "Govt website", "International org", "The Hindu", "Indian Express", "Other"; a "pointer" locating the fact within the source (chapter, report, article); and optionally a "url" for web sources.
- strategy: "difficulty" with "level" ("easy", "moderate", or "hard") and "why" bullets; "exam_strategy" with at least 2 actionable items; "logical_deduction" with at least 2 elimination steps; "ai_verdict" with "recommendation" ("attempt" or "skip"), a "rationale", and an integer "confidence" from 0 to 100.

Respond with a single JSON object exactly matching this shape. Do not include any text outside the JSON object.

Example response:
{"correct_answer": "{{.OfficialAnswer}}", "topic_brief": {"title": "Monetary Policy Committee", "bullets": ["Six-member body chaired by the RBI Governor", "Sets the policy repo rate under the RBI Act, 1934"]}, "statements": [{"id": 1, "verdict": "correct", "facts": [{"fact": "The MPC was constituted in 2016 under Section 45ZB of the RBI Act.", "example": "First meeting held in October 2016.", "source": {"name": "Govt website", "pointer": "RBI • Monetary Policy Framework", "url": "https://rbi.org.in"}}]}], "strategy": {"difficulty": {"level": "moderate", "why": ["Requires recall of a specific statutory provision"]}, "exam_strategy": ["Anchor on the statutory body composition", "Eliminate options that misstate the chair"], "logical_deduction": ["Option B contradicts the six-member composition", "Option D confuses the MPC with the FSDC"], "ai_verdict": {"recommendation": "attempt", "rationale": "Composition of the MPC is standard static material.", "confidence": 78}}}`))

// BuildPrompt renders the generation prompt for a request. The output
// is deterministic for identical input, and missing options render as
// empty strings rather than disappearing from the option list.
func BuildPrompt(req types.AnalysisRequest) (string, error) {
	var buf bytes.Buffer
	if err := analysisPromptTmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
