// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/pipeline"
)

var statsCmd = &cobra.Command{
	Use:   "stats [query]",
	Short: "Show corpus statistics, and graph statistics for a query",
	Long: `Stats prints the corpus summary shown in the dashboard header: total
papers, distinct author fields, and distinct years. With a query it also
builds the knowledge graph and reports its node, edge, and component counts.`,
	RunE: runStats,
}

type statsOutput struct {
	Corpus corpus.Stats `json:"corpus"`
	Query  string       `json:"query,omitempty"`
	Graph  *graph.Stats `json:"graph,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	out := statsOutput{Corpus: c.ComputeStats()}

	if len(args) > 0 {
		out.Query = strings.Join(args, " ")
		res, err := pipeline.Run(c, out.Query, cfg)
		if err != nil {
			return err
		}
		out.Graph = &res.Stats
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	s := out.Corpus
	fmt.Printf("Total papers:    %d\n", s.Total)
	if s.HasAuthors {
		fmt.Printf("Unique authors:  %d\n", s.UniqueAuthors)
	}
	if s.HasYears {
		fmt.Printf("Years covered:   %d", s.UniqueYears)
		if n := len(s.Years); n > 0 {
			fmt.Printf(" (%d-%d)", s.Years[0], s.Years[n-1])
		}
		fmt.Println()
	}

	if g := out.Graph; g != nil {
		fmt.Printf("\nGraph for %q\n", out.Query)
		if g.Placeholder {
			fmt.Println("  no matching papers")
			return nil
		}
		fmt.Printf("  Papers:            %d\n", g.Papers)
		fmt.Printf("  Authors:           %d\n", g.Authors)
		fmt.Printf("  Authorship edges:  %d\n", g.Authorship)
		fmt.Printf("  Similarity edges:  %d\n", g.Similarity)
		fmt.Printf("  Components:        %d (%d isolated)\n", g.Components, g.Isolated)
		fmt.Printf("  Degree:            max %d, mean %.2f\n", g.MaxDegree, g.MeanDegree)
		if g.TopAuthor != "" {
			fmt.Printf("  Most prolific:     %s (%d papers)\n", g.TopAuthor, g.TopAuthorCnt)
		}
	}
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}
