// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus for matching papers",
	Long: `Search matches the query as a case-insensitive substring against the
title, abstract, and keywords of every corpus record. Results keep corpus
order. An empty query matches every record.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}

	q := search.QueryFromConfig(strings.Join(args, " "), cfg.Search)
	if cmd.Flags().Changed("from") {
		q.YearFrom, _ = cmd.Flags().GetInt("from")
	}
	if cmd.Flags().Changed("to") {
		q.YearTo, _ = cmd.Flags().GetInt("to")
	}
	maxResults := cfg.Search.MaxResults
	if cmd.Flags().Changed("max-results") {
		maxResults, _ = cmd.Flags().GetInt("max-results")
	}

	out := search.Run(c, q, maxResults)
	log.Debug("search finished", "query", q.Text, "matched", out.Matched, "returned", len(out.Results))

	if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
		return corpus.WriteCSV(os.Stdout, c.Columns, out.Results)
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(out, os.Stdout)
	}
	search.FormatTable(out, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", 10, "maximum number of results to return (0 for all)")
	searchCmd.Flags().Int("from", 0, "earliest publication year")
	searchCmd.Flags().Int("to", 0, "latest publication year")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("csv", false, "output results as CSV with the corpus columns")
	searchCmd.MarkFlagsMutuallyExclusive("json", "csv")

	rootCmd.AddCommand(searchCmd)
}
