// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one query end to end: select records, assemble
// the graph, annotate it, and lay it out. Each run builds its own graph
// and layout; nothing is shared between runs.
package pipeline

import (
	"fmt"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/encode"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/search"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// Result is the output of one run.
type Result struct {
	Query   string
	Matched int
	Records []types.Record
	Graph   *graph.Graph
	Layout  layout.Result
	Stats   graph.Stats
}

// Empty reports whether the selection was empty and the graph is the
// placeholder.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

// Run executes the pipeline for query over c. The only error is
// corpus.ErrUnsupportedSchema; an empty selection yields the placeholder
// graph, and layout failures are recovered inside the layout engine.
func Run(c *corpus.Corpus, query string, cfg types.PipelineConfig) (Result, error) {
	if c == nil || !c.Has(corpus.ColTitle) {
		return Result{}, fmt.Errorf("running pipeline: %w", corpus.ErrUnsupportedSchema)
	}

	gcfg := cfg.Graph
	if gcfg.Variant == "" {
		gcfg = types.DefaultGraphConfig(types.VariantInteractive)
	}

	q := search.QueryFromConfig(query, cfg.Search)
	if len(gcfg.Fields) > 0 {
		q.Fields = gcfg.Fields
	}
	// Select already returns copies; the graph never aliases corpus rows.
	out := search.Run(c, q, gcfg.MaxPapers)

	g := graph.Build(out.Results, graph.OptionsFromConfig(gcfg))
	encode.Annotate(g, encode.StyleFor(gcfg.Variant))
	res := layout.Run(g, layout.OptionsFromConfig(cfg.Layout))

	return Result{
		Query:   query,
		Matched: out.Matched,
		Records: out.Results,
		Graph:   g,
		Layout:  res,
		Stats:   g.ComputeStats(),
	}, nil
}
