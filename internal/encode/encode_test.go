package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

func TestPaperSize(t *testing.T) {
	tests := []struct {
		name      string
		style     Style
		citations int
		want      float64
	}{
		{"zero", InteractiveStyle(), 0, 15},
		{"linear", InteractiveStyle(), 55, 20.5},
		{"interactive cap", InteractiveStyle(), 1000, 45},
		{"simplified cap", SimplifiedStyle(), 1000, 40},
		{"negative treated as zero", InteractiveStyle(), -5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.PaperSize(tt.citations); got != tt.want {
				t.Errorf("PaperSize(%d) = %v, want %v", tt.citations, got, tt.want)
			}
		})
	}
}

func scenario() *graph.Graph {
	return graph.Build([]types.Record{
		{Row: 0, Title: "Microgravity Bone Loss", Authors: "Smith, Jones", Citations: types.IntPtr(10)},
		{Row: 1, Title: "Microgravity Plant Growth", Authors: "Jones, Lee"},
	}, graph.DefaultOptions())
}

func TestAnnotateInteractive(t *testing.T) {
	g := scenario()
	before := g.NodeIDs()
	Annotate(g, InteractiveStyle())

	assert.Equal(t, before, g.NodeIDs(), "annotation must not reorder nodes")

	p0, _ := g.Node(graph.PaperID(0))
	assert.Equal(t, 16.0, p0.Size)
	assert.Equal(t, ColorPaper, p0.Color)

	p1, _ := g.Node(graph.PaperID(1))
	assert.Equal(t, 15.0, p1.Size, "missing citations count as zero")

	for _, n := range g.Nodes {
		if n.Kind != graph.KindAuthor {
			continue
		}
		assert.Equal(t, ColorAuthor, n.Color)
		assert.Equal(t, 12+5*float64(n.PaperCount), n.Size)
	}

	for _, e := range g.Edges {
		switch e.Kind {
		case graph.EdgeAuthorship:
			assert.Equal(t, ColorAuthorship, e.Color)
		case graph.EdgeSimilarity:
			assert.Equal(t, ColorSimilarity, e.Color)
			assert.Equal(t, 0.5, e.Width)
		}
	}
}

func TestAnnotatePlaceholder(t *testing.T) {
	g := graph.Build(nil, graph.DefaultOptions())
	Annotate(g, InteractiveStyle())
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, 30.0, g.Nodes[0].Size)
	assert.Equal(t, ColorPlaceholder, g.Nodes[0].Color)
}

func TestAnnotateNetworkStyle(t *testing.T) {
	g := graph.Build([]types.Record{
		{Row: 0, Title: "A", Authors: "Smith, Jones", Citations: types.IntPtr(100)},
		{Row: 1, Title: "B", Authors: "Jones", Citations: types.IntPtr(50)},
	}, graph.DefaultOptions())
	Annotate(g, NetworkStyle())

	p0, _ := g.Node(graph.PaperID(0))
	p1, _ := g.Node(graph.PaperID(1))
	assert.Equal(t, 65.0, p0.Size)
	assert.Equal(t, 45.0, p1.Size)

	for _, n := range g.Nodes {
		if n.Kind == graph.KindAuthor {
			assert.Equal(t, 10+3*float64(g.Degree(n.ID)), n.Size)
		}
	}
}

func TestAnnotateScaleSimilarity(t *testing.T) {
	g := graph.Build([]types.Record{
		{Row: 0, Title: "A", Authors: "Smith, Jones"},
		{Row: 1, Title: "B", Authors: "Smith, Jones"},
	}, graph.DefaultOptions())
	s := InteractiveStyle()
	s.ScaleSimilarity = true
	Annotate(g, s)

	for _, e := range g.Edges {
		if e.Kind == graph.EdgeSimilarity {
			assert.Equal(t, 2, e.Shared)
			assert.Equal(t, 1.0, e.Width)
		}
	}
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, 25.0, StyleFor(types.VariantSimplified).PaperCap)
	assert.Equal(t, 30.0, StyleFor(types.VariantInteractive).PaperCap)
	assert.Equal(t, 30.0, StyleFor("unknown").PaperCap)
}
