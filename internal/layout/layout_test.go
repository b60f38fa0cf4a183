package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

func connected() *graph.Graph {
	return graph.Build([]types.Record{
		{Row: 0, Title: "Microgravity Bone Loss", Authors: "Smith, Jones"},
		{Row: 1, Title: "Microgravity Plant Growth", Authors: "Jones, Lee"},
		{Row: 2, Title: "Lee on Radiation", Authors: "Lee"},
	}, graph.DefaultOptions())
}

func disconnected() *graph.Graph {
	return graph.Build([]types.Record{
		{Row: 0, Title: "A", Authors: "Smith"},
		{Row: 1, Title: "B", Authors: "Lee"},
	}, graph.DefaultOptions())
}

func assertComplete(t *testing.T, g *graph.Graph, l Layout) {
	t.Helper()
	require.Len(t, l, len(g.Nodes))
	for _, n := range g.Nodes {
		p, ok := l[n.ID]
		require.True(t, ok, "node %s missing", n.ID)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "node %s is NaN", n.ID)
	}
}

func TestSpringDeterministic(t *testing.T) {
	g := connected()
	opts := DefaultOptions()
	opts.Algorithm = types.LayoutSpring

	a := Compute(g, opts)
	b := Compute(g, opts)
	assertComplete(t, g, a)
	assert.Equal(t, a, b, "same graph and seed must give identical coordinates")

	opts.Seed = 7
	c := Compute(g, opts)
	assert.NotEqual(t, a, c, "a different seed should move nodes")
}

func TestSpringRescaled(t *testing.T) {
	l, err := Spring(connected(), 1.5, 50, 42)
	require.NoError(t, err)
	lim := 0.0
	for _, p := range l {
		lim = math.Max(lim, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	assert.InDelta(t, 1.0, lim, 1e-9)
}

func TestForceDirectedDeterministic(t *testing.T) {
	g := connected()
	a := Run(g, DefaultOptions())
	b := Run(g, DefaultOptions())

	require.NoError(t, a.Fallback)
	assertComplete(t, g, a.Layout)
	assert.Equal(t, a.Layout, b.Layout)
	assert.Equal(t, types.LayoutForceDirected, a.Algorithm)
}

func TestSingleNodeFallsBack(t *testing.T) {
	g := graph.Build(nil, graph.DefaultOptions())

	_, err := ForceDirected(g, 200, 42)
	require.True(t, errors.Is(err, ErrNonConvergence), "got %v", err)

	r := Run(g, DefaultOptions())
	require.Error(t, r.Fallback)
	assertComplete(t, g, r.Layout)
	assert.Equal(t, Random(g, 42), r.Layout)
}

func TestIsomap(t *testing.T) {
	g := connected()
	l, err := Isomap(g)
	require.NoError(t, err)
	assertComplete(t, g, l)

	_, err = Isomap(disconnected())
	assert.True(t, errors.Is(err, ErrNonConvergence), "disconnected graphs cannot be embedded, got %v", err)
}

func TestIsomapDisconnectedFallsBack(t *testing.T) {
	g := disconnected()
	opts := DefaultOptions()
	opts.Algorithm = types.LayoutIsomap

	r := Run(g, opts)
	assert.Error(t, r.Fallback)
	assertComplete(t, g, r.Layout)
	assert.Equal(t, Random(g, opts.Seed), r.Layout)
}

func TestCheck(t *testing.T) {
	g := disconnected()
	l := Random(g, 1)
	require.NoError(t, check(g, l))

	delete(l, g.Nodes[0].ID)
	assert.ErrorIs(t, check(g, l), ErrNonConvergence)

	l = Random(g, 1)
	l[g.Nodes[1].ID] = Point{X: math.Inf(1)}
	assert.ErrorIs(t, check(g, l), ErrNonConvergence)
}

func TestEmptyGraph(t *testing.T) {
	r := Run(graph.New(), DefaultOptions())
	assert.Empty(t, r.Layout)
	assert.NoError(t, r.Fallback)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    types.LayoutAlgorithm
		wantErr bool
	}{
		{"spring", types.LayoutSpring, false},
		{" Force_Directed ", types.LayoutForceDirected, false},
		{"isomap", types.LayoutIsomap, false},
		{"circular", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionsFromConfigDefaults(t *testing.T) {
	o := OptionsFromConfig(types.LayoutConfig{Seed: 3})
	assert.Equal(t, types.LayoutForceDirected, o.Algorithm)
	assert.Equal(t, uint64(3), o.Seed)
	assert.Equal(t, 200, o.Iterations)
	assert.Equal(t, 50, o.SpringIterations)
	assert.Equal(t, 1.5, o.SpringK)
}

func TestBounds(t *testing.T) {
	l := Layout{"a": {X: -1, Y: 2}, "b": {X: 3, Y: -4}}
	lo, hi := l.Bounds()
	assert.Equal(t, Point{X: -1, Y: -4}, lo)
	assert.Equal(t, Point{X: 3, Y: 2}, hi)
}

// hubRecords gives n papers where every third has its own author and the
// rest share one prolific author, so the shared papers form a clique.
func hubRecords(n int) []types.Record {
	records := make([]types.Record, n)
	for i := range records {
		authors := "Same"
		if i%3 == 0 {
			authors = fmt.Sprintf("Solo%d", i)
		}
		records[i] = types.Record{Row: i, Title: fmt.Sprintf("Paper %d", i), Authors: authors}
	}
	return records
}

func TestRunDenseHubGraphs(t *testing.T) {
	tests := []struct {
		papers, nodes, edges int
	}{
		{17, 24, 72},
		{19, 27, 85},
		{20, 28, 98},
	}
	for _, tt := range tests {
		for _, alg := range Algorithms {
			t.Run(fmt.Sprintf("%d papers %s", tt.papers, alg), func(t *testing.T) {
				g := graph.Build(hubRecords(tt.papers), graph.DefaultOptions())
				require.Len(t, g.Nodes, tt.nodes)
				require.Len(t, g.Edges, tt.edges)

				opts := DefaultOptions()
				opts.Algorithm = alg
				r := Run(g, opts)
				assertComplete(t, g, r.Layout)
				for id, p := range r.Layout {
					assert.True(t, finite(p.X) && finite(p.Y), "node %s at (%v, %v)", id, p.X, p.Y)
				}
				if r.Fallback != nil {
					assert.ErrorIs(t, r.Fallback, ErrNonConvergence)
				}
			})
		}
	}
}

func TestStoreDiverged(t *testing.T) {
	tests := []struct {
		name string
		s    store
		ok   bool
	}{
		{"finite", store{1: {X: 0.5, Y: -3}}, true},
		{"nan", store{1: {X: math.NaN(), Y: 0}}, false},
		{"inf", store{1: {X: 0, Y: math.Inf(-1)}}, false},
		{"too far", store{1: {X: 2 * maxExtent, Y: 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.diverged()
			if (err == nil) != tt.ok {
				t.Errorf("diverged() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestFallbackRecordsUnexpectedErrors(t *testing.T) {
	g := connected()
	opts := DefaultOptions()

	r := fallback(g, opts, errors.New("boom"))
	assertComplete(t, g, r.Layout)
	assert.ErrorIs(t, r.Fallback, ErrUnexpected)
	assert.False(t, errors.Is(r.Fallback, ErrNonConvergence))
	assert.Contains(t, r.Fallback.Error(), "boom")

	r = fallback(g, opts, fmt.Errorf("%w: stuck", ErrNonConvergence))
	assert.ErrorIs(t, r.Fallback, ErrNonConvergence)
	assert.False(t, errors.Is(r.Fallback, ErrUnexpected))
	assert.Equal(t, Random(g, opts.Seed), r.Layout)
}

func TestComputeAlwaysPlacesEveryNode(t *testing.T) {
	names := []string{"Smith", "Jones", "Lee", "Kim", "Garcia", "Chen"}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		records := make([]types.Record, n)
		for i := range records {
			k := rapid.IntRange(1, 5).Draw(t, "authors")
			authors := make([]string, k)
			for j := range authors {
				authors[j] = rapid.SampledFrom(names).Draw(t, "author")
			}
			records[i] = types.Record{
				Row:     i,
				Title:   "paper",
				Authors: strings.Join(authors, ", "),
			}
		}
		g := graph.Build(records, graph.DefaultOptions())
		opts := DefaultOptions()
		opts.Seed = rapid.Uint64().Draw(t, "seed")

		for _, alg := range Algorithms {
			opts.Algorithm = alg
			l := Compute(g, opts)
			if len(l) != len(g.Nodes) {
				t.Fatalf("%s: placed %d of %d nodes", alg, len(l), len(g.Nodes))
			}
			for id, p := range l {
				if !finite(p.X) || !finite(p.Y) {
					t.Fatalf("%s: node %s at (%v, %v)", alg, id, p.X, p.Y)
				}
			}
		}
	})
}
