// Copyright Mindgrove Labs, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindgrove/answer-engine/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local analysis cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print entry count and age range of the analysis cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := engineConfig(cmd)
		c, err := store.Open(cfg.Cache)
		if err != nil {
			return err
		}
		defer c.Close()

		s, err := c.Stats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Entries: %d\n", s.Entries)
		if s.Entries > 0 {
			fmt.Printf("Oldest:  %s\n", s.Oldest)
			fmt.Printf("Newest:  %s\n", s.Newest)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := engineConfig(cmd)
		c, err := store.Open(cfg.Cache)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	rootCmd.AddCommand(cacheCmd)
}
