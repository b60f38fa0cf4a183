// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/render"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/search"
)

var chartsCmd = &cobra.Command{
	Use:   "charts [query]",
	Short: "Compute the network, impact, and timeline figures for a query",
	Long: `Charts selects the papers matching the query and writes the figure data
for the dashboard as JSON: the author-paper network, the research impact
scatter, and the publication timeline. Figures with too little data carry
a message instead of traces.`,
	RunE: runCharts,
}

func runCharts(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	out := search.Run(c, search.QueryFromConfig(query, cfg.Search), 0)
	charts := render.BuildCharts(out.Results, query)

	outPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outPath, func(w io.Writer) error {
		return render.WriteChartsJSON(w, charts)
	})
}

func init() {
	chartsCmd.Flags().StringP("output", "o", "-", "output path, or - for stdout")

	rootCmd.AddCommand(chartsCmd)
}
