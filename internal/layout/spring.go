// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
)

// minDistance keeps coincident nodes from producing infinite forces.
const minDistance = 0.01

// Spring computes a Fruchterman-Reingold embedding with optimal distance
// k. Nodes start at seeded uniform-random positions, move for the given
// number of iterations under a linearly cooling temperature, and are
// finally centered and scaled into [-1, 1].
func Spring(g *graph.Graph, k float64, iterations int, seed uint64) (Layout, error) {
	n := len(g.Nodes)
	rnd := rand.New(rand.NewPCG(seed, seed))

	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Vec{X: rnd.Float64(), Y: rnd.Float64()}
	}
	if n == 1 {
		return Layout{g.Nodes[0].ID: {}}, nil
	}

	t := g.Topology()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := range g.Nodes {
		for j := i + 1; j < n; j++ {
			if t.G.HasEdgeBetween(int64(i), int64(j)) {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}

	temp := 0.1 * spread(pos)
	cool := temp / float64(iterations+1)
	disp := make([]r2.Vec, n)

	for it := 0; it < iterations; it++ {
		for i := range pos {
			var d r2.Vec
			for j := range pos {
				if i == j {
					continue
				}
				delta := r2.Sub(pos[i], pos[j])
				dist := math.Max(r2.Norm(delta), minDistance)
				f := k * k / (dist * dist)
				if adj[i][j] {
					f -= dist / k
				}
				d = r2.Add(d, r2.Scale(f, delta))
			}
			disp[i] = d
		}
		for i, d := range disp {
			length := math.Max(r2.Norm(d), minDistance)
			pos[i] = r2.Add(pos[i], r2.Scale(temp/length, d))
		}
		temp -= cool
	}

	rescale(pos)

	l := make(Layout, n)
	for i, node := range g.Nodes {
		l[node.ID] = Point{X: pos[i].X, Y: pos[i].Y}
	}
	if err := check(g, l); err != nil {
		return nil, err
	}
	return l, nil
}

// spread returns the larger of the x and y extents of pos.
func spread(pos []r2.Vec) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

// rescale centers pos on the origin and scales the largest absolute
// coordinate to 1.
func rescale(pos []r2.Vec) {
	var mean r2.Vec
	for _, p := range pos {
		mean = r2.Add(mean, p)
	}
	mean = r2.Scale(1/float64(len(pos)), mean)

	lim := 0.0
	for i := range pos {
		pos[i] = r2.Sub(pos[i], mean)
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i] = r2.Scale(1/lim, pos[i])
	}
}
