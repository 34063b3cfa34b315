// Copyright Mindgrove Labs, 2026. All rights reserved.

package analyze

import (
	"strings"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Source classification. Generators frequently mislabel provenance or
// emit filler pointers ("chapter on topic"), so raw source objects pass
// through two steps: pointer cleanup, then keyword reclassification
// when the raw name is outside the closed set or the pointer is too
// generic to trust. Implements: prd003-source-classification (R1-R4);
//
//	docs/ARCHITECTURE § Source Classifier.

// validSourceNames is the closed set of provenance categories (R1.1).
var validSourceNames = map[types.SourceName]bool{
	types.SourceNCERT:            true,
	types.SourceTamilNaduBoard:   true,
	types.SourceStandardBook:     true,
	types.SourcePIB:              true,
	types.SourceGovtWebsite:      true,
	types.SourceInternationalOrg: true,
	types.SourceTheHindu:         true,
	types.SourceIndianExpress:    true,
	types.SourceOther:            true,
}

// linkableSources lists the categories for which an external URL may be
// shown (R4.1). URLs supplied for any other category are dropped.
var linkableSources = map[types.SourceName]bool{
	types.SourcePIB:              true,
	types.SourceGovtWebsite:      true,
	types.SourceInternationalOrg: true,
	types.SourceTheHindu:         true,
	types.SourceIndianExpress:    true,
}

// pointerPlaceholders are filler tokens stripped from raw pointer text
// before judging it (R2.1).
var pointerPlaceholders = []string{
	"n/a", "na", "tbd", "none", "unknown", "not available", "not applicable",
}

// genericPointerPhrases mark a pointer as boilerplate rather than a
// real citation locator (R2.2).
var genericPointerPhrases = []string{
	"general reference",
	"chapter on",
	"relevant chapter",
	"standard text",
	"refer to",
	"as mentioned",
	"various sources",
}

// sourceClusters maps keyword clusters in the question+fact text to a
// provenance category (R3.1). Order matters: newspapers and PIB are
// checked before the broader government cluster so that, e.g., a PIB
// release about a ministry lands in PIB. The keyword lists are tuned
// for one exam/language domain; treat them as replaceable data.
var sourceClusters = []struct {
	name     types.SourceName
	keywords []string
}{
	{types.SourceTheHindu, []string{"the hindu"}},
	{types.SourceIndianExpress, []string{"indian express"}},
	{types.SourcePIB, []string{"pib", "press information bureau", "press release"}},
	{types.SourceGovtWebsite, []string{
		"ministry", "gazette", "notification", "government of india",
		"niti aayog", "census", "rbi", "sebi", "lok sabha", "rajya sabha",
		"scheme", "yojana",
	}},
	{types.SourceInternationalOrg, []string{
		"unfccc", "who", "world bank", "united nations", "unesco", "unicef",
		"imf", "wto", "ipcc", "unep", "wef",
	}},
	{types.SourceNCERT, []string{"ncert"}},
	{types.SourceTamilNaduBoard, []string{"tamil nadu", "samacheer"}},
}

// canonicalPointers is the synthesized pointer text per category, used
// whenever the cleaned pointer is still empty or generic (R3.3).
var canonicalPointers = map[types.SourceName]string{
	types.SourceNCERT:            "NCERT • Relevant chapter",
	types.SourceTamilNaduBoard:   "Tamil Nadu Board • Relevant chapter",
	types.SourceStandardBook:     "Standard book • Topic reference",
	types.SourcePIB:              "PIB • Release/Article",
	types.SourceGovtWebsite:      "Govt website • Official page",
	types.SourceInternationalOrg: "International org • Report/Publication",
	types.SourceTheHindu:         "The Hindu • News report",
	types.SourceIndianExpress:    "Indian Express • News report",
	types.SourceOther:            "Other • General reference",
}

// SanitizeSource converts a raw source value of any shape into a valid
// SourceRef. The name always comes from the closed set, the pointer is
// never empty, and the URL survives only for linkable categories.
func SanitizeSource(raw any, questionText, factText string) types.SourceRef {
	obj := asObject(raw)

	name := types.SourceName(asTrimmedString(obj["name"], ""))
	pointer := cleanPointer(asString(obj["pointer"], ""))
	url := asTrimmedString(obj["url"], "")

	// An unknown label or a filler pointer means the raw name cannot be
	// trusted; re-infer the category from the surrounding text (R3.2).
	if !validSourceNames[name] || genericPointer(pointer) {
		name = classifySource(questionText, factText)
	}

	if genericPointer(pointer) {
		pointer = canonicalPointers[name]
	}
	if !linkableSources[name] {
		url = ""
	}

	return types.SourceRef{Name: name, Pointer: pointer, URL: url}
}

// cleanPointer strips placeholder tokens and bullet characters from raw
// pointer text and collapses runs of whitespace.
func cleanPointer(s string) string {
	s = strings.TrimSpace(s)
	for _, tok := range pointerPlaceholders {
		if strings.EqualFold(s, tok) {
			return ""
		}
	}
	s = strings.Trim(s, "•*-–— \t")
	return strings.Join(strings.Fields(s), " ")
}

// genericPointer reports whether a cleaned pointer is too generic to
// keep: empty, shorter than 8 characters, or boilerplate phrasing.
func genericPointer(s string) bool {
	if len(s) < 8 {
		return true
	}
	lower := strings.ToLower(s)
	for _, phrase := range genericPointerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// classifySource scans the combined question and fact text for keyword
// clusters and returns the first matching category. With no match,
// Standard book is the default: for this domain it is more useful to a
// reader than the catch-all Other.
func classifySource(questionText, factText string) types.SourceName {
	text := strings.ToLower(questionText + " " + factText)
	words := wordSet(text)
	for _, cluster := range sourceClusters {
		for _, kw := range cluster.keywords {
			if containsKeyword(text, words, kw) {
				return cluster.name
			}
		}
	}
	return types.SourceStandardBook
}

// containsKeyword matches multi-word keywords by substring and
// single-word keywords by whole word, so "who" does not fire inside
// "whoever".
func containsKeyword(text string, words map[string]bool, kw string) bool {
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(text, kw)
	}
	return words[kw]
}

// wordSet tokenizes lowered text into a lookup set, trimming
// punctuation from token edges.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, f := range strings.Fields(text) {
		if w := strings.Trim(f, ".,;:!?()[]\"'"); w != "" {
			set[w] = true
		}
	}
	return set
}
