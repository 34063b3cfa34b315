// Copyright Mindgrove Labs, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/mindgrove/answer-engine/internal/analyze"
	"github.com/mindgrove/answer-engine/internal/generator"
	"github.com/mindgrove/answer-engine/internal/questions"
	"github.com/mindgrove/answer-engine/internal/store"
	"github.com/mindgrove/answer-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [bank.yaml]",
	Short: "Analyze every question in a YAML question bank",
	Long: `Batch reads a question bank and analyzes each entry sequentially,
writing one YAML analysis file per question to the output directory.
Cached questions are skipped; a failed question does not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// BatchSummary holds counts from a batch analysis run.
type BatchSummary struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// Total returns the number of questions processed.
func (s BatchSummary) Total() int {
	return s.Analyzed + s.Skipped + s.Failed
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")

	bank, err := questions.Load(args[0])
	if err != nil {
		return err
	}

	cfg := engineConfig(cmd)

	summary, err := analyzeBank(context.Background(), cfg, bank, outDir, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("%d analyzed, %d skipped, %d failed (%d total)\n",
		summary.Analyzed, summary.Skipped, summary.Failed, summary.Total())
	if summary.Failed > 0 {
		return fmt.Errorf("%d question(s) failed", summary.Failed)
	}
	return nil
}

// analyzeBank runs every bank entry through the pipeline, writing one
// analysis file per question and progress lines to w. The backend and
// cache are opened once for the whole run.
func analyzeBank(ctx context.Context, cfg types.EngineConfig, bank *questions.File, outDir string, w io.Writer) (BatchSummary, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var cache *store.Cache
	if !cfg.Cache.Disabled {
		c, err := store.Open(cfg.Cache)
		if err != nil {
			return BatchSummary{}, err
		}
		defer c.Close()
		cache = c
	}

	backend, err := generator.New(cfg)
	if err != nil {
		return BatchSummary{}, err
	}
	engine := analyze.NewEngine(backend, cfg.AI.MaxAttempts)

	var summary BatchSummary
	for _, entry := range bank.Questions {
		req := entry.Request()
		outPath := filepath.Join(outDir, entry.ID+"-analysis.yaml")

		if cache != nil {
			if a, ok, err := cache.Get(ctx, req); err == nil && ok {
				if err := writeAnalysis(outPath, a); err != nil {
					fmt.Fprintf(w, "failed   %s: %v\n", entry.ID, err)
					summary.Failed++
					continue
				}
				fmt.Fprintf(w, "skipped  %s (cached)\n", entry.ID)
				summary.Skipped++
				continue
			}
		}

		fmt.Fprintf(w, "analyzing %s\n", entry.ID)

		a, err := engine.Analyze(ctx, req)
		if err != nil {
			fmt.Fprintf(w, "failed   %s: %v\n", entry.ID, err)
			summary.Failed++
			continue
		}

		if err := writeAnalysis(outPath, a); err != nil {
			fmt.Fprintf(w, "failed   %s: write error: %v\n", entry.ID, err)
			summary.Failed++
			continue
		}

		if cache != nil {
			if err := cache.Put(ctx, req, a, cfg.AI.Model); err != nil {
				fmt.Fprintf(w, "warning: could not cache %s: %v\n", entry.ID, err)
			}
		}

		fmt.Fprintf(w, "analyzed %s\n", entry.ID)
		summary.Analyzed++
	}

	return summary, nil
}

func writeAnalysis(path string, a types.Analysis) error {
	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func init() {
	batchCmd.Flags().String("out-dir", "analyses", "directory for analysis output files")

	rootCmd.AddCommand(batchCmd)
}
