// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/cache"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/fetch"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill missing abstracts by scraping each paper's link",
	Long: `Enrich visits the link of every record that has no abstract, extracts the
abstract from the page, and writes the completed corpus as CSV. Requests are
rate limited and run concurrently. Fetched abstracts (including failures)
are cached so later runs only visit new links.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}

	f := fetch.New(cfg.Fetch)
	f.Progress = log.Writer()
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			log.Warn("abstract cache unavailable", "path", cfg.Cache.Path, "error", err)
		} else {
			defer store.Close()
			f.Cache = store
		}
	}

	res, err := f.Enrich(cmd.Context(), c)
	if err != nil {
		return err
	}
	log.Info("enrichment finished",
		"attempted", res.Attempted,
		"filled", res.Filled,
		"cache_hits", res.CacheHits)

	outPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outPath, func(w io.Writer) error {
		return corpus.WriteCSV(w, res.Corpus.Columns, res.Corpus.Records)
	})
}

func init() {
	enrichCmd.Flags().StringP("output", "o", "", "path for the enriched CSV, or - for stdout")
	enrichCmd.Flags().Bool("no-cache", false, "bypass the abstract cache")
	enrichCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(enrichCmd)
}
