// Copyright Mindgrove Labs, 2026. All rights reserved.

package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindgrove/answer-engine/internal/httputil"
	"github.com/mindgrove/answer-engine/pkg/types"
)

const defaultClaudeModel = "claude-sonnet-4-5-20250929"

// claudeAPIURL is the Claude Messages API endpoint. Package-level var
// for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// Claude generates analyses through the Claude Messages API over plain
// HTTP. 429 responses are retried at this layer via httputil; all other
// failures surface to the caller.
type Claude struct {
	apiKey    string
	model     string
	userAgent string
	client    *http.Client
}

// NewClaude builds a Claude backend with the given HTTP settings. An
// empty model selects the default.
func NewClaude(apiKey, model string, httpCfg types.HTTPConfig) *Claude {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultClaudeModel
	}
	timeout := httpCfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Claude{
		apiKey:    strings.TrimSpace(apiKey),
		model:     model,
		userAgent: httpCfg.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float32         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the conversation.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// claudeContent is a content block in the response.
type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate sends the prompt and returns the concatenated text blocks of
// the response.
func (c *Claude) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("claude: API key is empty")
	}

	body, err := json.Marshal(claudeRequest{
		Model:       c.model,
		MaxTokens:   4096,
		Temperature: temperature,
		Messages:    []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("claude: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("claude: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 0)
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("claude: API returned %d: %s", resp.StatusCode, string(errBody))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("claude: decoding response: %w", err)
	}

	var sb strings.Builder
	for _, block := range cResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude: no text content in response")
	}
	return sb.String(), nil
}
