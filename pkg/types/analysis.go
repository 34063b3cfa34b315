// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package types defines the shared data contracts of the answer-engine
// pipeline: the inbound question request, the outbound analysis record,
// and the configuration structs consumed by each stage.
// Implements: prd001-generation, prd002-normalization (data model);
//
//	docs/ARCHITECTURE § Data Model.
package types

// Verdict classifies whether a sub-statement of the question is true,
// false, or undetermined. Per prd002-normalization R2.2.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictUnknown   Verdict = "unknown"
)

// SourceName is the closed set of provenance categories a fact may cite.
// Per prd003-source-classification R1.1.
type SourceName string

const (
	SourceNCERT            SourceName = "NCERT"
	SourceTamilNaduBoard   SourceName = "Tamil Nadu Board"
	SourceStandardBook     SourceName = "Standard book"
	SourcePIB              SourceName = "PIB"
	SourceGovtWebsite      SourceName = "Govt website"
	SourceInternationalOrg SourceName = "International org"
	SourceTheHindu         SourceName = "The Hindu"
	SourceIndianExpress    SourceName = "Indian Express"
	SourceOther            SourceName = "Other"
)

// DifficultyLevel grades a question for the strategy block.
type DifficultyLevel string

const (
	DifficultyEasy     DifficultyLevel = "easy"
	DifficultyModerate DifficultyLevel = "moderate"
	DifficultyHard     DifficultyLevel = "hard"
)

// Recommendation is the strategy verdict on whether to attempt the
// question under exam conditions.
type Recommendation string

const (
	RecommendAttempt Recommendation = "attempt"
	RecommendSkip    Recommendation = "skip"
)

// SourceRef is a provenance citation attached to a fact. Pointer is
// never empty: when the generated pointer is missing or generic, a
// canonical per-category pointer is synthesized. URL is retained only
// for linkable categories (PIB, Govt website, International org,
// The Hindu, Indian Express).
type SourceRef struct {
	Name    SourceName `json:"name" yaml:"name"`
	Pointer string     `json:"pointer" yaml:"pointer"`
	URL     string     `json:"url,omitempty" yaml:"url,omitempty"`
}

// Fact is a single piece of supporting evidence within a statement block.
type Fact struct {
	// Fact is the evidence text. Facts with empty text are dropped
	// during normalization, never defaulted.
	Fact string `json:"fact" yaml:"fact"`

	// Example is an optional illustration of the fact.
	Example string `json:"example,omitempty" yaml:"example,omitempty"`

	// Source cites where the fact can be verified.
	Source SourceRef `json:"source" yaml:"source"`
}

// StatementBlock analyzes one sub-statement of the question.
type StatementBlock struct {
	// ID is the 1-based statement number. When the generated id is
	// missing or not a positive finite number, the statement's position
	// in the sequence is assigned instead (prd002-normalization R2.1).
	ID int `json:"id" yaml:"id"`

	// Verdict classifies the statement; defaults to unknown.
	Verdict Verdict `json:"verdict" yaml:"verdict"`

	// Facts lists supporting evidence, possibly empty.
	Facts []Fact `json:"facts" yaml:"facts"`
}

// TopicBrief summarizes the topic the question tests.
type TopicBrief struct {
	Title   string   `json:"title" yaml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets"`
}

// Difficulty grades the question and justifies the grade.
type Difficulty struct {
	Level DifficultyLevel `json:"level" yaml:"level"`
	Why   []string        `json:"why" yaml:"why"`
}

// AIVerdict is the model's attempt/skip recommendation with a clamped
// confidence score.
type AIVerdict struct {
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
	Rationale      string         `json:"rationale" yaml:"rationale"`

	// Confidence is an integer in [0,100]; out-of-range values are
	// clamped and non-numeric values default to 60.
	Confidence int `json:"confidence" yaml:"confidence"`
}

// Strategy is the exam-strategy block of an analysis. All fields are
// always present; empty sequences are empty, never nil in serialized
// output.
type Strategy struct {
	Difficulty       Difficulty `json:"difficulty" yaml:"difficulty"`
	ExamStrategy     []string   `json:"exam_strategy" yaml:"exam_strategy"`
	LogicalDeduction []string   `json:"logical_deduction" yaml:"logical_deduction"`
	AIVerdict        AIVerdict  `json:"ai_verdict" yaml:"ai_verdict"`
}

// Analysis is the single entity the pipeline produces: a fully
// populated, invariant-respecting record for one question.
//
// The one hard business invariant: CorrectAnswer always equals the
// request's OfficialAnswer, regardless of what the generator claimed.
type Analysis struct {
	CorrectAnswer OptionLetter     `json:"correct_answer" yaml:"correct_answer"`
	TopicBrief    TopicBrief       `json:"topic_brief" yaml:"topic_brief"`
	Statements    []StatementBlock `json:"statements" yaml:"statements"`
	Strategy      Strategy         `json:"strategy" yaml:"strategy"`
}
