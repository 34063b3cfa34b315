// Copyright Mindgrove Labs, 2026. All rights reserved.

package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindgrove/answer-engine/pkg/types"
)

func writeBank(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validBank = `questions:
  - id: polity-001
    question: Which article establishes the Finance Commission?
    options:
      a: Article 110
      b: Article 280
      c: Article 324
      d: Article 356
    answer: b
  - id: geo-002
    question: The Sorrow of Bengal refers to which river?
    options:
      a: Ganga
      b: Damodar
      c: Kosi
      d: Brahmaputra
    answer: B
`

func TestLoadValidBank(t *testing.T) {
	f, err := Load(writeBank(t, validBank))
	require.NoError(t, err)
	require.Len(t, f.Questions, 2)

	req := f.Questions[0].Request()
	assert.Equal(t, "Which article establishes the Finance Commission?", req.QuestionText)
	assert.Equal(t, "Article 280", req.Options.B)
	assert.Equal(t, types.OptionB, req.OfficialAnswer, "lowercase answer letters are uppercased")
	assert.Equal(t, types.OptionB, f.Questions[1].Request().OfficialAnswer)
}

func TestLoadRejectsBadBanks(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "empty bank",
			contents: "questions: []\n",
			wantErr:  "no questions",
		},
		{
			name: "missing id",
			contents: `questions:
  - question: A question?
    options: {a: w, b: x, c: y, d: z}
    answer: A
`,
			wantErr: "missing id",
		},
		{
			name: "duplicate id",
			contents: `questions:
  - id: q1
    question: First?
    options: {a: w, b: x, c: y, d: z}
    answer: A
  - id: q1
    question: Second?
    options: {a: w, b: x, c: y, d: z}
    answer: B
`,
			wantErr: `duplicate id "q1"`,
		},
		{
			name: "invalid answer letter",
			contents: `questions:
  - id: q1
    question: First?
    options: {a: w, b: x, c: y, d: z}
    answer: E
`,
			wantErr: "q1",
		},
		{
			name:     "not yaml",
			contents: "{{{",
			wantErr:  "parsing question bank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeBank(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading question bank")
}
