// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/pipeline"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/render"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph [query]",
	Short: "Build and render the knowledge graph for a query",
	Long: `Graph selects the papers matching the query, links them to their authors
and to each other, lays the graph out, and writes it in the chosen format:

  html  interactive vis-network page (default)
  svg   static vector snapshot
  png   static raster snapshot
  json  nodes, edges, and positions
  yaml  nodes, edges, and positions

The format is taken from --format, or from the --output extension. Without
--output the file goes to <output_dir>/<query>.<format>; use - for stdout.
Snapshots are laid out with the spring embedding unless --layout is given.
An empty selection renders a single placeholder node.`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if cmd.Flags().Changed("variant") {
		v, _ := cmd.Flags().GetString("variant")
		switch types.GraphVariant(v) {
		case types.VariantInteractive, types.VariantSimplified:
			cfg.Graph = types.DefaultGraphConfig(types.GraphVariant(v))
		default:
			return fmt.Errorf("unknown variant %q (want interactive or simplified)", v)
		}
	}
	if cmd.Flags().Changed("layout") {
		name, _ := cmd.Flags().GetString("layout")
		alg, err := layout.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		cfg.Layout.Algorithm = alg
	}
	if cmd.Flags().Changed("seed") {
		cfg.Layout.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("max-papers") {
		cfg.Graph.MaxPapers, _ = cmd.Flags().GetInt("max-papers")
	}

	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")
	format, err := render.ParseFormat(formatName, outPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = filepath.Join(cfg.Render.OutputDir, slug(query)+"."+string(format))
	}

	c, err := loadCorpus()
	if err != nil {
		return err
	}
	res, err := pipeline.Run(c, query, cfg)
	if err != nil {
		return err
	}
	if format == render.FormatSVG || format == render.FormatPNG {
		res.Layout = snapshotLayout(res, cfg.Layout, cmd.Flags().Changed("layout"))
	}
	logFallback(res.Layout)
	if res.Empty() {
		log.Info("no papers matched; rendering placeholder", "query", query)
	}

	err = writeOutput(outPath, func(w io.Writer) error {
		return writeGraph(w, format, res)
	})
	if err != nil {
		return err
	}

	s := res.Stats
	log.Info("graph written",
		"path", outPath,
		"format", format,
		"matched", res.Matched,
		"papers", s.Papers,
		"authors", s.Authors,
		"authorship_edges", s.Authorship,
		"similarity_edges", s.Similarity,
		"components", s.Components)
	return nil
}

// snapshotLayout returns the layout for a static snapshot. Snapshots use
// the spring embedding unless an algorithm was chosen on the command line.
func snapshotLayout(res pipeline.Result, lc types.LayoutConfig, explicit bool) layout.Result {
	if explicit || res.Layout.Algorithm == types.LayoutSpring {
		return res.Layout
	}
	opts := layout.OptionsFromConfig(lc)
	opts.Algorithm = types.LayoutSpring
	return layout.Run(res.Graph, opts)
}

func logFallback(r layout.Result) {
	switch {
	case r.Fallback == nil:
	case errors.Is(r.Fallback, layout.ErrUnexpected):
		log.Error("layout failed unexpectedly; using random placement", "algorithm", r.Algorithm, "error", r.Fallback)
	default:
		log.Warn("layout fell back to random placement", "algorithm", r.Algorithm, "error", r.Fallback)
	}
}

func writeGraph(w io.Writer, format render.Format, res pipeline.Result) error {
	snap := render.SnapshotOptions{
		Title:  "Knowledge Graph: " + render.TitleCase(res.Query),
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
	}
	switch format {
	case render.FormatSVG:
		return render.WriteSVG(w, res.Graph, res.Layout.Layout, snap)
	case render.FormatPNG:
		return render.WritePNG(w, res.Graph, res.Layout.Layout, snap)
	case render.FormatJSON:
		return render.WriteJSON(w, render.NewExport(res.Query, res.Graph, res.Layout))
	case render.FormatYAML:
		return render.WriteYAML(w, render.NewExport(res.Query, res.Graph, res.Layout))
	default:
		return render.WriteHTML(w, res.Graph, render.PageOptions{
			Query:   res.Query,
			Physics: layout.DefaultPhysics(),
			Layout:  res.Layout.Layout,
		})
	}
}

// writeOutput runs write against path, or stdout when path is "-".
// Parent directories are created as needed.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// slug turns a query into a file name stem.
func slug(query string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(query)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	s := strings.TrimSuffix(b.String(), "_")
	if s == "" {
		return "all_papers"
	}
	return "knowledge_graph_" + s
}

func init() {
	graphCmd.Flags().String("variant", "interactive", "graph preset: interactive or simplified")
	graphCmd.Flags().String("layout", "force_directed", "layout algorithm: force_directed, spring, or isomap")
	graphCmd.Flags().Uint64("seed", 42, "layout seed")
	graphCmd.Flags().Int("max-papers", 20, "maximum number of papers in the graph")
	graphCmd.Flags().StringP("format", "f", "", "output format: html, svg, png, json, yaml")
	graphCmd.Flags().StringP("output", "o", "", "output path, or - for stdout")

	rootCmd.AddCommand(graphCmd)
}
