// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package questions loads question banks from YAML files for the batch
// command. Implements: prd006-cli (R3); docs/ARCHITECTURE § CLI Surface.
package questions

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mindgrove/answer-engine/pkg/types"
)

// Entry is one question in a bank file.
type Entry struct {
	// ID names the question within the bank; it becomes the output
	// filename for batch runs.
	ID string `yaml:"id"`

	Question string        `yaml:"question"`
	Options  types.Options `yaml:"options"`
	Answer   string        `yaml:"answer"`
}

// File is the on-disk shape of a question bank.
type File struct {
	Questions []Entry `yaml:"questions"`
}

// Request converts the entry into the pipeline's inbound contract.
func (e Entry) Request() types.AnalysisRequest {
	return types.AnalysisRequest{
		QuestionText:   e.Question,
		Options:        e.Options,
		OfficialAnswer: types.OptionLetter(strings.ToUpper(strings.TrimSpace(e.Answer))),
	}
}

// Load reads and validates a question bank. Every entry must carry an
// id, a question, and a valid answer letter; duplicate ids are
// rejected because they would collide on output filenames.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing question bank %s: %w", path, err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("question bank %s contains no questions", path)
	}

	seen := make(map[string]bool)
	for i, e := range f.Questions {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("question %d: missing id", i+1)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("question %d: duplicate id %q", i+1, e.ID)
		}
		seen[e.ID] = true
		if err := e.Request().Validate(); err != nil {
			return nil, fmt.Errorf("question %q: %w", e.ID, err)
		}
	}

	return &f, nil
}
