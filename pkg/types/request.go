// Copyright Mindgrove Labs, 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// OptionLetter identifies one of the four answer options of a
// multiple-choice question.
type OptionLetter string

const (
	OptionA OptionLetter = "A"
	OptionB OptionLetter = "B"
	OptionC OptionLetter = "C"
	OptionD OptionLetter = "D"
)

// ValidOptionLetter reports whether s (after trimming and upper-casing)
// is one of A, B, C, or D.
func ValidOptionLetter(s string) bool {
	switch OptionLetter(strings.ToUpper(strings.TrimSpace(s))) {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Options holds the four option texts of a question. Any of them may be
// empty; the prompt renders missing options as empty strings rather than
// omitting them.
type Options struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
	C string `json:"c" yaml:"c"`
	D string `json:"d" yaml:"d"`
}

// Get returns the option text for the given letter, or "" for an
// unrecognized letter.
func (o Options) Get(letter OptionLetter) string {
	switch letter {
	case OptionA:
		return o.A
	case OptionB:
		return o.B
	case OptionC:
		return o.C
	case OptionD:
		return o.D
	}
	return ""
}

// AnalysisRequest is the inbound contract of the analysis pipeline:
// a question, its options, and the authoritative correct option.
// Per prd001-generation R1.1. Constructed once per request and never
// mutated by the pipeline.
type AnalysisRequest struct {
	// QuestionText is the full question statement.
	QuestionText string `json:"question_text" yaml:"question_text"`

	// Options holds the four option texts. Any may be empty.
	Options Options `json:"options" yaml:"options"`

	// OfficialAnswer is the authoritative correct option letter. The
	// generator's own claim never overrides it (prd002-normalization R4.1).
	OfficialAnswer OptionLetter `json:"official_answer" yaml:"official_answer"`
}

// Validate checks that the request carries a question and a usable
// official answer letter.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.QuestionText) == "" {
		return fmt.Errorf("question text is empty")
	}
	if !ValidOptionLetter(string(r.OfficialAnswer)) {
		return fmt.Errorf("official answer %q is not one of A, B, C, D", r.OfficialAnswer)
	}
	return nil
}
