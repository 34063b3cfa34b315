// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package main is the entry point for the answer-engine CLI.
// Implements: prd006-cli (CLI surface);
//
//	docs/ARCHITECTURE § CLI Surface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindgrove/answer-engine/internal/secrets"
	"github.com/mindgrove/answer-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for the answer-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "answer-engine",
	Short: "Structured answer analyses for multiple-choice questions",
	Long: `answer-engine turns a multiple-choice question and its official answer
into a structured analysis: a topic brief, per-statement verdicts with
sourced facts, and an exam strategy. A generative model drafts the
analysis; the engine normalizes, validates, and quality-gates it so the
caller always receives a schema-valid record.

Use analyze for a single question, batch for a YAML question bank, and
cache to inspect the local result cache.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./answer-engine.yaml or ~/.config/answer-engine/config.yaml)")
	rootCmd.PersistentFlags().String("provider", "", "generative backend: gemini or claude")
	rootCmd.PersistentFlags().String("model", "", "model identifier for the backend")
	rootCmd.PersistentFlags().String("api-key", "", "API key for the backend (overrides .secrets/)")
	rootCmd.PersistentFlags().String("cache-dir", "", "base directory for the analysis cache")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the analysis cache")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("answer-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "answer-engine"))
		}
	}

	viper.SetEnvPrefix("ANSWER_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the effective configuration from config file,
// environment, flags, and loaded secrets. Flags win over config values.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	cfg := types.EngineConfig{
		AI: types.AIConfig{
			Provider:    types.Provider(viper.GetString("ai.provider")),
			Model:       viper.GetString("ai.model"),
			APIKey:      viper.GetString("ai.api_key"),
			MaxAttempts: viper.GetInt("ai.max_attempts"),
		},
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Cache: types.CacheConfig{
			Dir:      viper.GetString("cache.dir"),
			Disabled: viper.GetBool("cache.disabled"),
		},
	}

	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		cfg.AI.Provider = types.Provider(v)
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.AI.Model = v
	}
	if v, _ := cmd.Flags().GetString("api-key"); v != "" {
		cfg.AI.APIKey = v
	}
	if v, _ := cmd.Flags().GetString("cache-dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v, _ := cmd.Flags().GetBool("no-cache"); v {
		cfg.Cache.Disabled = true
	}

	secretKey := secrets.KeyGemini
	if cfg.AI.Provider == types.ProviderClaude {
		secretKey = secrets.KeyClaude
	}
	cfg.AI.APIKey = loadedSecrets.Get(secretKey, cfg.AI.APIKey)

	if cfg.HTTP.UserAgent == "" {
		cfg.HTTP.UserAgent = "answer-engine/" + version
	}
	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP.Timeout = 120 * time.Second
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
