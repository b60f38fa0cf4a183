// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"
	"math"
	"math/rand/v2"

	gonumlayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
)

// Physics holds the Barnes-Hut simulation constants handed to the
// interactive widget, which runs its own stabilization in the browser.
type Physics struct {
	GravitationalConstant float64 `json:"gravitationalConstant" yaml:"gravitational_constant"`
	CentralGravity        float64 `json:"centralGravity" yaml:"central_gravity"`
	SpringLength          float64 `json:"springLength" yaml:"spring_length"`
	SpringConstant        float64 `json:"springConstant" yaml:"spring_constant"`
	Damping               float64 `json:"damping" yaml:"damping"`
	AvoidOverlap          float64 `json:"avoidOverlap" yaml:"avoid_overlap"`
	MinVelocity           float64 `json:"minVelocity" yaml:"min_velocity"`
	Iterations            int     `json:"iterations" yaml:"iterations"`
}

// DefaultPhysics returns the reference widget constants.
func DefaultPhysics() Physics {
	return Physics{
		GravitationalConstant: -8000,
		CentralGravity:        0.3,
		SpringLength:          150,
		SpringConstant:        0.04,
		Damping:               0.09,
		AvoidOverlap:          0.1,
		MinVelocity:           0.75,
		Iterations:            200,
	}
}

// Eades parameters for the server-side force simulation. Repulsion is
// divided by the square root of the node count so dense hubs stay stable.
const (
	eadesRepulsion = 1
	eadesRate      = 0.01
	eadesTheta     = 0.2

	// maxExtent bounds any coordinate during the simulation. Beyond it the
	// run is treated as diverged.
	maxExtent = 1e4
)

// store records only the coordinates an algorithm actually wrote, so
// unplaced nodes can be told apart from nodes placed at the origin.
type store map[int64]r2.Vec

func (s store) IsInitialized() bool            { return len(s) != 0 }
func (s store) SetCoord2(id int64, pos r2.Vec) { s[id] = pos }
func (s store) Coord2(id int64) r2.Vec         { return s[id] }

// collect converts a gonum coordinate store into a Layout keyed by node ID
// and validates it.
func collect(g *graph.Graph, t *graph.Topology, s store) (Layout, error) {
	l := make(Layout, len(s))
	for id, c := range s {
		if nid, ok := t.ID(id); ok {
			l[nid] = Point{X: c.X, Y: c.Y}
		}
	}
	if err := check(g, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ForceDirected runs the Eades spring-electrical model with Barnes-Hut
// repulsion for at most iterations updates. A graph whose forces vanish
// before the first update, such as a single node, is never placed and
// reports ErrNonConvergence.
//
// Positions are checked after every update: the Barnes-Hut tree cannot be
// built over non-finite coordinates, so a diverging run stops with
// ErrNonConvergence before the next update is attempted.
func ForceDirected(g *graph.Graph, iterations int, seed uint64) (Layout, error) {
	t := g.Topology()
	eades := gonumlayout.EadesR2{
		Updates:   iterations,
		Repulsion: eadesRepulsion / math.Sqrt(float64(max(len(g.Nodes), 1))),
		Rate:      eadesRate,
		Theta:     eadesTheta,
		Src:       rand.NewPCG(seed, seed),
	}
	og := orderedGraph{t.G}
	s := make(store)
	for step := 1; eades.Update(og, s); step++ {
		if err := s.diverged(); err != nil {
			return nil, fmt.Errorf("%w: force simulation after %d updates: %v", ErrNonConvergence, step, err)
		}
	}
	return collect(g, t, s)
}

// diverged reports the first coordinate that is non-finite or outside
// maxExtent.
func (s store) diverged() error {
	for id, c := range s {
		if !finite(c.X) || !finite(c.Y) {
			return fmt.Errorf("node %d at non-finite coordinate", id)
		}
		if math.Abs(c.X) > maxExtent || math.Abs(c.Y) > maxExtent {
			return fmt.Errorf("node %d beyond extent %g", id, float64(maxExtent))
		}
	}
	return nil
}

// Isomap places nodes by classical scaling of shortest-path distances.
// It cannot lay out disconnected or single-node graphs.
func Isomap(g *graph.Graph) (Layout, error) {
	t := g.Topology()
	if len(g.Nodes) < 3 {
		return nil, fmt.Errorf("%w: isomap needs at least 3 nodes, have %d", ErrNonConvergence, len(g.Nodes))
	}
	if cc := t.Components(); len(cc) > 1 {
		return nil, fmt.Errorf("%w: isomap needs a connected graph, have %d components", ErrNonConvergence, len(cc))
	}
	s := make(store)
	gonumlayout.IsomapR2{}.Update(orderedGraph{t.G}, s)
	return collect(g, t, s)
}
