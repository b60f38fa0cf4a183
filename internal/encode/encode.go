// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package encode derives node sizes and colors and edge widths from
// citation counts, collaboration degree, and node kind. Annotate changes
// attributes in place and never reorders nodes or edges.
package encode

import (
	"math"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// Palette colors.
const (
	ColorPaper       = "#FF6B6B"
	ColorAuthor      = "#4ECDC4"
	ColorAuthorship  = "#CCCCCC"
	ColorSimilarity  = "#E8E8E8"
	ColorLexical     = "#DDDDDD"
	ColorPlaceholder = "#FF6B6B"
	ColorAccent      = "#6BE6C1"
)

// PaperSizing selects how paper node sizes are computed.
type PaperSizing int

const (
	// PaperLinear sizes papers as base + min(citations/10, cap).
	PaperLinear PaperSizing = iota

	// PaperRelative sizes papers as base + citations/max*span, relative to
	// the most cited paper in the graph.
	PaperRelative
)

// AuthorSizing selects how author node sizes are computed.
type AuthorSizing int

const (
	// AuthorByPapers sizes authors as base + paperCount*weight.
	AuthorByPapers AuthorSizing = iota

	// AuthorByDegree sizes authors as base + degree*weight.
	AuthorByDegree
)

// Style holds the presentation constants for one view.
type Style struct {
	PaperSizing PaperSizing
	PaperBase   float64
	PaperCap    float64
	PaperSpan   float64

	AuthorSizing AuthorSizing
	AuthorBase   float64
	AuthorWeight float64

	PlaceholderSize float64

	PaperColor       string
	AuthorColor      string
	PlaceholderColor string

	AuthorshipColor string
	AuthorshipWidth float64
	SimilarityColor string
	SimilarityWidth float64

	// ScaleSimilarity widens similarity edges by their shared count.
	ScaleSimilarity bool
}

// InteractiveStyle is used for the full author/paper graph.
func InteractiveStyle() Style {
	return Style{
		PaperSizing:      PaperLinear,
		PaperBase:        15,
		PaperCap:         30,
		AuthorSizing:     AuthorByPapers,
		AuthorBase:       12,
		AuthorWeight:     5,
		PlaceholderSize:  30,
		PaperColor:       ColorPaper,
		AuthorColor:      ColorAuthor,
		PlaceholderColor: ColorPlaceholder,
		AuthorshipColor:  ColorAuthorship,
		AuthorshipWidth:  1,
		SimilarityColor:  ColorSimilarity,
		SimilarityWidth:  0.5,
	}
}

// SimplifiedStyle is used for the paper-only graph.
func SimplifiedStyle() Style {
	s := InteractiveStyle()
	s.PaperCap = 25
	s.SimilarityColor = ColorLexical
	s.SimilarityWidth = 1
	return s
}

// NetworkStyle is used for the statistical author/paper network chart.
func NetworkStyle() Style {
	s := InteractiveStyle()
	s.PaperSizing = PaperRelative
	s.PaperBase = 25
	s.PaperSpan = 40
	s.AuthorSizing = AuthorByDegree
	s.AuthorBase = 10
	s.AuthorWeight = 3
	s.SimilarityColor = "#DDDDDD"
	s.AuthorshipColor = "#DDDDDD"
	s.AuthorshipWidth = 0.8
	s.SimilarityWidth = 0.8
	return s
}

// StyleFor returns the preset matching a graph variant.
func StyleFor(v types.GraphVariant) Style {
	if v == types.VariantSimplified {
		return SimplifiedStyle()
	}
	return InteractiveStyle()
}

// Annotate sets size and color on every node and color and width on every
// edge of g.
func Annotate(g *graph.Graph, s Style) {
	maxCites := 0
	for _, n := range g.Nodes {
		if n.Kind == graph.KindPaper && n.Citations > maxCites {
			maxCites = n.Citations
		}
	}

	var degree map[string]int
	if s.AuthorSizing == AuthorByDegree {
		degree = make(map[string]int)
		for _, e := range g.Edges {
			degree[e.From]++
			degree[e.To]++
		}
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		switch n.Kind {
		case graph.KindPaper:
			n.Size = s.paperSize(n.Citations, maxCites)
			n.Color = s.PaperColor
		case graph.KindAuthor:
			w := n.PaperCount
			if s.AuthorSizing == AuthorByDegree {
				w = degree[n.ID]
			}
			n.Size = s.AuthorBase + float64(w)*s.AuthorWeight
			n.Color = s.AuthorColor
		case graph.KindPlaceholder:
			n.Size = s.PlaceholderSize
			n.Color = s.PlaceholderColor
		}
	}

	for i := range g.Edges {
		e := &g.Edges[i]
		switch e.Kind {
		case graph.EdgeAuthorship:
			e.Color = s.AuthorshipColor
			e.Width = s.AuthorshipWidth
		case graph.EdgeSimilarity:
			e.Color = s.SimilarityColor
			e.Width = s.SimilarityWidth
			if s.ScaleSimilarity && e.Shared > 1 {
				e.Width = s.SimilarityWidth * float64(e.Shared)
			}
		}
	}
}

// PaperSize returns the size of a paper with the given citation count
// under the linear rule.
func (s Style) PaperSize(citations int) float64 {
	return s.paperSize(citations, 0)
}

func (s Style) paperSize(citations, maxCites int) float64 {
	if citations < 0 {
		citations = 0
	}
	if s.PaperSizing == PaperRelative {
		if maxCites <= 0 {
			maxCites = 1
		}
		return s.PaperBase + float64(citations)/float64(maxCites)*s.PaperSpan
	}
	return s.PaperBase + math.Min(float64(citations)/10, s.PaperCap)
}
