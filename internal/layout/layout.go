// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes 2-D coordinates for graph nodes. The primary
// algorithm is tried first; if it fails the engine falls back to a seeded
// uniform-random placement. Every algorithm is deterministic for a given
// graph and seed.
package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// ErrNonConvergence is returned by an algorithm that could not place every
// node at a finite coordinate.
var ErrNonConvergence = errors.New("layout did not converge")

// ErrUnexpected marks a fallback caused by anything other than
// non-convergence.
var ErrUnexpected = errors.New("unexpected layout failure")

// Point is a 2-D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Layout maps node IDs to coordinates.
type Layout map[string]Point

// Bounds returns the bounding box of the layout. An empty layout has a
// zero box.
func (l Layout) Bounds() (min, max Point) {
	first := true
	for _, p := range l {
		if first {
			min, max = p, p
			first = false
			continue
		}
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min, max
}

// Options selects and parameterizes the layout algorithm.
type Options struct {
	Algorithm        types.LayoutAlgorithm
	Seed             uint64
	Iterations       int
	SpringIterations int
	SpringK          float64
}

// DefaultOptions returns the reference parameters.
func DefaultOptions() Options {
	return OptionsFromConfig(types.DefaultLayoutConfig())
}

// OptionsFromConfig maps a layout configuration onto options. Zero values
// fall back to the defaults.
func OptionsFromConfig(cfg types.LayoutConfig) Options {
	def := types.DefaultLayoutConfig()
	o := Options{
		Algorithm:        cfg.Algorithm,
		Seed:             cfg.Seed,
		Iterations:       cfg.Iterations,
		SpringIterations: cfg.SpringIterations,
		SpringK:          cfg.SpringK,
	}
	if o.Algorithm == "" {
		o.Algorithm = def.Algorithm
	}
	if o.Iterations <= 0 {
		o.Iterations = def.Iterations
	}
	if o.SpringIterations <= 0 {
		o.SpringIterations = def.SpringIterations
	}
	if o.SpringK <= 0 {
		o.SpringK = def.SpringK
	}
	return o
}

// Algorithms lists the supported algorithm names.
var Algorithms = []types.LayoutAlgorithm{types.LayoutForceDirected, types.LayoutSpring, types.LayoutIsomap}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(s string) (types.LayoutAlgorithm, error) {
	a := types.LayoutAlgorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown layout algorithm %q (want force_directed, spring, or isomap)", s)
}

// Result is a computed layout plus how it was produced.
type Result struct {
	Layout    Layout
	Algorithm types.LayoutAlgorithm

	// Fallback holds the primary algorithm's failure when the random
	// fallback was used, and is nil otherwise.
	Fallback error
}

// Compute lays out g and always returns a coordinate for every node.
func Compute(g *graph.Graph, opts Options) Layout {
	return Run(g, opts).Layout
}

// Run lays out g with the primary algorithm and falls back to a seeded
// random layout when the primary fails. Run never fails: the failure is
// recorded in Result.Fallback. Errors other than ErrNonConvergence are
// wrapped in ErrUnexpected so callers can report them louder.
func Run(g *graph.Graph, opts Options) Result {
	opts = OptionsFromConfig(types.LayoutConfig{
		Algorithm:        opts.Algorithm,
		Seed:             opts.Seed,
		Iterations:       opts.Iterations,
		SpringIterations: opts.SpringIterations,
		SpringK:          opts.SpringK,
	})
	if len(g.Nodes) == 0 {
		return Result{Layout: Layout{}, Algorithm: opts.Algorithm}
	}

	var (
		l   Layout
		err error
	)
	switch opts.Algorithm {
	case types.LayoutSpring:
		l, err = Spring(g, opts.SpringK, opts.SpringIterations, opts.Seed)
	case types.LayoutIsomap:
		l, err = Isomap(g)
	default:
		l, err = ForceDirected(g, opts.Iterations, opts.Seed)
	}
	if err == nil {
		return Result{Layout: l, Algorithm: opts.Algorithm}
	}
	return fallback(g, opts, err)
}

// fallback places g at random and records why the primary failed.
func fallback(g *graph.Graph, opts Options, err error) Result {
	if !errors.Is(err, ErrNonConvergence) {
		err = fmt.Errorf("%w: layout %s: %w", ErrUnexpected, opts.Algorithm, err)
	}
	return Result{Layout: Random(g, opts.Seed), Algorithm: opts.Algorithm, Fallback: err}
}

// Random places every node uniformly in the unit square using seed.
func Random(g *graph.Graph, seed uint64) Layout {
	rnd := rand.New(rand.NewPCG(seed, seed))
	l := make(Layout, len(g.Nodes))
	for _, n := range g.Nodes {
		l[n.ID] = Point{X: rnd.Float64(), Y: rnd.Float64()}
	}
	return l
}

// check verifies every node has a finite coordinate.
func check(g *graph.Graph, l Layout) error {
	for _, n := range g.Nodes {
		p, ok := l[n.ID]
		if !ok {
			return fmt.Errorf("%w: node %s was not placed", ErrNonConvergence, n.ID)
		}
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: node %s at non-finite coordinate", ErrNonConvergence, n.ID)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// orderedGraph yields nodes in ID order so gonum layouts are reproducible.
type orderedGraph struct {
	gonum.Graph
}

func (g orderedGraph) Nodes() gonum.Nodes {
	return ordered(g.Graph.Nodes())
}

func (g orderedGraph) From(id int64) gonum.Nodes {
	return ordered(g.Graph.From(id))
}

func ordered(it gonum.Nodes) gonum.Nodes {
	n := gonum.NodesOf(it)
	sort.Slice(n, func(i, j int) bool { return n[i].ID() < n[j].ID() })
	return iterator.NewOrderedNodes(n)
}
