package types

import "time"

// HTTPConfig holds shared HTTP settings for backends that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "answer-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Provider identifies the generative backend.
// Per prd001-generation R5.1.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
)

// AIConfig holds settings for the generative backend.
type AIConfig struct {
	// Provider selects the backend: gemini or claude (default gemini).
	Provider Provider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemini-2.0-flash",
	// "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the backend.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxAttempts is the number of generation attempts before falling
	// back to the deterministic analysis (default 2).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// CacheConfig holds settings for the local analysis cache.
// Per prd005-cache R1.1.
type CacheConfig struct {
	// Dir is the base directory for the cache (contains index/answers.db).
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns the cache off entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// EngineConfig groups all stage configurations for the engine.
type EngineConfig struct {
	AI    AIConfig    `json:"ai" yaml:"ai"`
	HTTP  HTTPConfig  `json:"http" yaml:"http"`
	Cache CacheConfig `json:"cache" yaml:"cache"`
}
