// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or purge the summary and abstract cache",
}

// --- stats subcommand ---

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count cached summaries and abstracts",
	RunE:  runCacheStats,
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, abstracts, err := store.Counts(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Cache:      %s\n", cfg.Cache.Path)
	fmt.Printf("Summaries:  %d\n", summaries)
	fmt.Printf("Abstracts:  %d\n", abstracts)
	return nil
}

// --- purge subcommand ---

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete cache entries",
	Long: `Purge deletes cached summaries and abstracts. With --older-than only
entries older than the given duration (for example 720h) are removed.`,
	RunE: runCachePurge,
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan < 0 {
		return fmt.Errorf("--older-than must not be negative")
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Purge(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	log.Info("cache purged", "path", cfg.Cache.Path, "deleted", n, "older_than", olderThan)
	return nil
}

func init() {
	cachePurgeCmd.Flags().Duration("older-than", time.Duration(0), "only delete entries older than this")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
