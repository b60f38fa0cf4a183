// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/cache"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/search"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [query]",
	Short: "Summarize the papers matching a query",
	Long: `Summarize joins the abstracts of the first matching papers (or their titles
when no abstracts are available) and asks the Groq chat API for a short
bullet summary. Without an API key, or when the API fails, the first
sentences of the text are used instead. Hosted summaries are cached in the
SQLite cache database.`,
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	out := search.Run(c, search.QueryFromConfig(query, cfg.Search), cfg.Search.MaxResults)
	if len(out.Results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	var store summarize.Store
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		s, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			log.Warn("summary cache unavailable", "path", cfg.Cache.Path, "error", err)
		} else {
			defer s.Close()
			store = s
		}
	}
	if cfg.Summary.APIKey == "" {
		log.Info("no Groq API key configured; using offline summaries")
	}

	s := summarize.NewCached(cfg.Summary, store, log.Writer())
	text := summarize.SummaryText(out.Results, query)
	summary, err := s.Summarize(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("summarizing: %w", err)
	}
	fmt.Println(summary)
	return nil
}

func init() {
	summarizeCmd.Flags().Bool("no-cache", false, "bypass the summary cache")

	rootCmd.AddCommand(summarizeCmd)
}
