// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Topology is a gonum view of a Graph. Gonum node IDs are the positions
// of the nodes in Graph.Nodes.
type Topology struct {
	G *simple.UndirectedGraph

	idToNode map[string]int64
	nodeToID map[int64]string
}

// Topology builds the undirected gonum view used by layout and statistics.
// Edge kinds are collapsed: two nodes are adjacent if any edge joins them.
func (g *Graph) Topology() *Topology {
	t := &Topology{
		G:        simple.NewUndirectedGraph(),
		idToNode: make(map[string]int64, len(g.Nodes)),
		nodeToID: make(map[int64]string, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		id := int64(i)
		t.G.AddNode(simple.Node(id))
		t.idToNode[n.ID] = id
		t.nodeToID[id] = n.ID
	}
	for _, e := range g.Edges {
		u, v := t.idToNode[e.From], t.idToNode[e.To]
		if u == v || t.G.HasEdgeBetween(u, v) {
			continue
		}
		t.G.SetEdge(t.G.NewEdge(t.G.Node(u), t.G.Node(v)))
	}
	return t
}

// ID returns the graph node ID for a gonum node ID.
func (t *Topology) ID(n int64) (string, bool) {
	id, ok := t.nodeToID[n]
	return id, ok
}

// NodeID returns the gonum node ID for a graph node ID.
func (t *Topology) NodeID(id string) (int64, bool) {
	n, ok := t.idToNode[id]
	return n, ok
}

// Components returns the connected components as sorted lists of graph
// node IDs, largest first and ties broken by first ID.
func (t *Topology) Components() [][]string {
	var out [][]string
	for _, cc := range topo.ConnectedComponents(t.G) {
		ids := make([]int64, 0, len(cc))
		for _, n := range cc {
			ids = append(ids, n.ID())
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		comp := make([]string, len(ids))
		for i, n := range ids {
			comp[i] = t.nodeToID[n]
		}
		out = append(out, comp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return t.idToNode[out[i][0]] < t.idToNode[out[j][0]]
	})
	return out
}

// Stats describes a built graph.
type Stats struct {
	Papers       int     `json:"papers" yaml:"papers"`
	Authors      int     `json:"authors" yaml:"authors"`
	Authorship   int     `json:"authorship_edges" yaml:"authorship_edges"`
	Similarity   int     `json:"similarity_edges" yaml:"similarity_edges"`
	Components   int     `json:"components" yaml:"components"`
	Isolated     int     `json:"isolated" yaml:"isolated"`
	MaxDegree    int     `json:"max_degree" yaml:"max_degree"`
	MeanDegree   float64 `json:"mean_degree" yaml:"mean_degree"`
	Placeholder  bool    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	TopAuthor    string  `json:"top_author,omitempty" yaml:"top_author,omitempty"`
	TopAuthorCnt int     `json:"top_author_papers,omitempty" yaml:"top_author_papers,omitempty"`
}

// ComputeStats counts nodes and edges by kind and summarizes connectivity.
func (g *Graph) ComputeStats() Stats {
	s := Stats{
		Papers:      g.CountNodes(KindPaper),
		Authors:     g.CountNodes(KindAuthor),
		Authorship:  g.CountEdges(EdgeAuthorship),
		Similarity:  g.CountEdges(EdgeSimilarity),
		Placeholder: g.IsPlaceholder(),
	}

	t := g.Topology()
	s.Components = len(t.Components())

	total := 0
	nodes := t.G.Nodes()
	for nodes.Next() {
		d := t.G.From(nodes.Node().ID()).Len()
		total += d
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if n := t.G.Nodes().Len(); n > 0 {
		s.MeanDegree = float64(total) / float64(n)
	}

	for _, n := range g.Nodes {
		if n.Kind == KindAuthor && n.PaperCount > s.TopAuthorCnt {
			s.TopAuthor = n.Title
			s.TopAuthorCnt = n.PaperCount
		}
	}
	return s
}
