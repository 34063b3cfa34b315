// Copyright Mindgrove Labs, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/mindgrove/answer-engine/internal/analyze"
	"github.com/mindgrove/answer-engine/internal/generator"
	"github.com/mindgrove/answer-engine/internal/store"
	"github.com/mindgrove/answer-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single multiple-choice question",
	Long: `Analyze sends one question through the generation pipeline and prints
the normalized analysis as YAML (or JSON with --json). The question is
given via flags or a YAML file (--file); the official answer letter is
mandatory and always wins over whatever the model claims.

Cached results are returned without a model call unless --no-cache is
set.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	cfg := engineConfig(cmd)

	result, cached, err := analyzeOne(context.Background(), cfg, req)
	if err != nil {
		return err
	}
	if cached {
		fmt.Fprintln(os.Stderr, "cache hit")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printAnalysis(result, jsonOutput)
}

// requestFromFlags builds the request from --file when given, otherwise
// from the individual question flags. Flags do not override file fields.
func requestFromFlags(cmd *cobra.Command) (types.AnalysisRequest, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return types.AnalysisRequest{}, fmt.Errorf("reading question file: %w", err)
		}
		var req types.AnalysisRequest
		if err := yaml.Unmarshal(data, &req); err != nil {
			return types.AnalysisRequest{}, fmt.Errorf("parsing question file %s: %w", path, err)
		}
		req.OfficialAnswer = types.OptionLetter(strings.ToUpper(strings.TrimSpace(string(req.OfficialAnswer))))
		return req, nil
	}

	question, _ := cmd.Flags().GetString("question")
	answer, _ := cmd.Flags().GetString("answer")

	req := types.AnalysisRequest{
		QuestionText:   question,
		OfficialAnswer: types.OptionLetter(strings.ToUpper(strings.TrimSpace(answer))),
	}
	req.Options.A, _ = cmd.Flags().GetString("option-a")
	req.Options.B, _ = cmd.Flags().GetString("option-b")
	req.Options.C, _ = cmd.Flags().GetString("option-c")
	req.Options.D, _ = cmd.Flags().GetString("option-d")
	return req, nil
}

// analyzeOne runs a single request through cache lookup, the generation
// pipeline, and cache write-back. The second return reports a cache hit.
func analyzeOne(ctx context.Context, cfg types.EngineConfig, req types.AnalysisRequest) (types.Analysis, bool, error) {
	var cache *store.Cache
	if !cfg.Cache.Disabled {
		c, err := store.Open(cfg.Cache)
		if err != nil {
			return types.Analysis{}, false, err
		}
		defer c.Close()
		cache = c

		if a, ok, err := cache.Get(ctx, req); err != nil {
			return types.Analysis{}, false, err
		} else if ok {
			return a, true, nil
		}
	}

	backend, err := generator.New(cfg)
	if err != nil {
		return types.Analysis{}, false, err
	}

	engine := analyze.NewEngine(backend, cfg.AI.MaxAttempts)
	a, err := engine.Analyze(ctx, req)
	if err != nil {
		return types.Analysis{}, false, err
	}

	if cache != nil {
		if err := cache.Put(ctx, req, a, cfg.AI.Model); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not cache analysis: %v\n", err)
		}
	}

	return a, false, nil
}

func printAnalysis(a types.Analysis, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	analyzeCmd.Flags().String("file", "", "YAML file holding the question, options, and official answer")
	analyzeCmd.Flags().String("question", "", "question text")
	analyzeCmd.Flags().String("option-a", "", "text of option A")
	analyzeCmd.Flags().String("option-b", "", "text of option B")
	analyzeCmd.Flags().String("option-c", "", "text of option C")
	analyzeCmd.Flags().String("option-d", "", "text of option D")
	analyzeCmd.Flags().String("answer", "", "official correct option letter: A, B, C, or D")
	analyzeCmd.Flags().Bool("json", false, "output the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
