// Copyright Mindgrove Labs, 2026. All rights reserved.

package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindgrove/answer-engine/internal/httputil"
	"github.com/mindgrove/answer-engine/pkg/types"
)

func init() {
	httputil.BackoffBase = 1 * time.Millisecond
}

// fakeClaude stands in for the Messages API endpoint. The handler sees
// the decoded request body and writes whatever response it wants.
func fakeClaude(t *testing.T, handler func(w http.ResponseWriter, req claudeRequest)) *Claude {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		handler(w, body)
	}))
	t.Cleanup(ts.Close)

	prev := claudeAPIURL
	claudeAPIURL = ts.URL
	t.Cleanup(func() { claudeAPIURL = prev })

	return NewClaude("test-key", "test-model", types.HTTPConfig{})
}

func textResponse(w http.ResponseWriter, blocks ...claudeContent) {
	json.NewEncoder(w).Encode(claudeResponse{Content: blocks})
}

func TestClaudeGenerate(t *testing.T) {
	c := fakeClaude(t, func(w http.ResponseWriter, req claudeRequest) {
		assert.Equal(t, "test-model", req.Model)
		assert.InDelta(t, 0.4, req.Temperature, 1e-6)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "analyze this", req.Messages[0].Content)

		textResponse(w,
			claudeContent{Type: "text", Text: `{"correct_`},
			claudeContent{Type: "thinking", Text: "ignored"},
			claudeContent{Type: "text", Text: `answer":"B"}`},
		)
	})

	out, err := c.Generate(context.Background(), "analyze this", 0.4)
	require.NoError(t, err)
	assert.Equal(t, `{"correct_answer":"B"}`, out, "text blocks concatenate, other block types are skipped")
}

func TestClaudeGenerateRetriesRateLimit(t *testing.T) {
	var calls int32
	c := fakeClaude(t, func(w http.ResponseWriter, _ claudeRequest) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		textResponse(w, claudeContent{Type: "text", Text: "ok"})
	})

	out, err := c.Generate(context.Background(), "prompt", 0.9)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClaudeGenerateErrorStatus(t *testing.T) {
	c := fakeClaude(t, func(w http.ResponseWriter, _ claudeRequest) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad model"}`))
	})

	_, err := c.Generate(context.Background(), "prompt", 0.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "bad model")
}

func TestClaudeGenerateNoTextContent(t *testing.T) {
	c := fakeClaude(t, func(w http.ResponseWriter, _ claudeRequest) {
		textResponse(w, claudeContent{Type: "thinking", Text: "no answer"})
	})

	_, err := c.Generate(context.Background(), "prompt", 0.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestClaudeGenerateEmptyKey(t *testing.T) {
	c := NewClaude("", "", types.HTTPConfig{})
	_, err := c.Generate(context.Background(), "prompt", 0.4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewClaudeDefaults(t *testing.T) {
	c := NewClaude("k", "  ", types.HTTPConfig{})
	assert.Equal(t, defaultClaudeModel, c.model)
	assert.Equal(t, 120*time.Second, c.client.Timeout)

	c = NewClaude("k", "custom", types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "ua/1"})
	assert.Equal(t, "custom", c.model)
	assert.Equal(t, 5*time.Second, c.client.Timeout)
	assert.Equal(t, "ua/1", c.userAgent)
}
