// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph assembles the typed paper/author graph for one query.
// A Graph is built fresh per request, never shared between requests, and
// keeps nodes and edges in insertion order so every build of the same
// records yields the same sequence.
package graph

import (
	"fmt"
	"sort"
)

// NodeKind is the category of a node.
type NodeKind string

const (
	KindPaper       NodeKind = "paper"
	KindAuthor      NodeKind = "author"
	KindPlaceholder NodeKind = "placeholder"
)

// EdgeKind is the category of an edge.
type EdgeKind string

const (
	// EdgeAuthorship links an author to a paper they are credited on.
	EdgeAuthorship EdgeKind = "authorship"

	// EdgeSimilarity links two related papers.
	EdgeSimilarity EdgeKind = "similarity"
)

// PlaceholderID is the node ID used when the selection is empty.
const PlaceholderID = "placeholder"

// PlaceholderLabel is shown when no paper matched the query.
const PlaceholderLabel = "No papers found for this query"

// Node is a graph vertex. Paper fields are empty on author nodes and
// vice versa. Size and Color are set by the visual encoder.
type Node struct {
	ID    string   `json:"id" yaml:"id"`
	Kind  NodeKind `json:"kind" yaml:"kind"`
	Label string   `json:"label" yaml:"label"`

	// Title is the untruncated paper title or author name.
	Title string `json:"title" yaml:"title"`

	Row       int    `json:"row,omitempty" yaml:"row,omitempty"`
	Year      *int   `json:"year,omitempty" yaml:"year,omitempty"`
	Citations int    `json:"citations,omitempty" yaml:"citations,omitempty"`
	Authors   string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`

	// PaperCount is the number of papers an author is attached to.
	PaperCount int `json:"paper_count,omitempty" yaml:"paper_count,omitempty"`

	Size  float64 `json:"size" yaml:"size"`
	Color string  `json:"color" yaml:"color"`
}

// Edge is an undirected, typed relation. From and To are stored in
// insertion order; edge identity ignores direction.
type Edge struct {
	From string   `json:"from" yaml:"from"`
	To   string   `json:"to" yaml:"to"`
	Kind EdgeKind `json:"kind" yaml:"kind"`

	// Shared is the size of the author or token intersection behind a
	// similarity edge.
	Shared int `json:"shared,omitempty" yaml:"shared,omitempty"`

	Width float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

type edgeKey struct {
	a, b string
	kind EdgeKind
}

func keyFor(from, to string, kind EdgeKind) edgeKey {
	if from > to {
		from, to = to, from
	}
	return edgeKey{a: from, b: to, kind: kind}
}

// Graph is an undirected multi-kind graph with stable node IDs.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`

	index map[string]int
	edges map[edgeKey]bool
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		edges: make(map[edgeKey]bool),
	}
}

// AddNode inserts n unless a node with the same ID exists. It reports
// whether the node was added.
func (g *Graph) AddNode(n Node) bool {
	if _, ok := g.index[n.ID]; ok {
		return false
	}
	g.index[n.ID] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return true
}

// AddEdge inserts an edge of the given kind between two existing nodes.
// Self-loops, unknown endpoints, and repeats of an existing (pair, kind)
// are no-ops. It reports whether the edge was added.
func (g *Graph) AddEdge(e Edge) bool {
	if e.From == e.To {
		return false
	}
	if !g.Has(e.From) || !g.Has(e.To) {
		return false
	}
	k := keyFor(e.From, e.To, e.Kind)
	if g.edges[k] {
		return false
	}
	g.edges[k] = true
	g.Edges = append(g.Edges, e)
	return true
}

// Has reports whether a node with id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether an edge of kind joins a and b in either direction.
func (g *Graph) HasEdge(a, b string, kind EdgeKind) bool {
	return g.edges[keyFor(a, b, kind)]
}

// Node returns a pointer to the node with id so callers can annotate it.
func (g *Graph) Node(id string) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// NodeIDs returns node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Degree returns the number of edges of any kind incident to id.
func (g *Graph) Degree(id string) int {
	d := 0
	for _, e := range g.Edges {
		if e.From == id || e.To == id {
			d++
		}
	}
	return d
}

// CountNodes returns how many nodes have the given kind.
func (g *Graph) CountNodes(kind NodeKind) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Kind == kind {
			n++
		}
	}
	return n
}

// CountEdges returns how many edges have the given kind.
func (g *Graph) CountEdges(kind EdgeKind) int {
	n := 0
	for _, e := range g.Edges {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// IsPlaceholder reports whether g is the single-node empty-selection graph.
func (g *Graph) IsPlaceholder() bool {
	return len(g.Nodes) == 1 && g.Nodes[0].Kind == KindPlaceholder
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, n := range g.Nodes {
		if n.Year != nil {
			y := *n.Year
			n.Year = &y
		}
		c.AddNode(n)
	}
	for _, e := range g.Edges {
		c.AddEdge(e)
	}
	return c
}

// Reindex rebuilds the lookup tables after Nodes or Edges were populated
// directly, as happens when a graph is decoded from JSON or YAML.
func (g *Graph) Reindex() error {
	nodes, edges := g.Nodes, g.Edges
	g.Nodes, g.Edges = nil, nil
	g.index = make(map[string]int, len(nodes))
	g.edges = make(map[edgeKey]bool, len(edges))
	for _, n := range nodes {
		if !g.AddNode(n) {
			return fmt.Errorf("duplicate node %q", n.ID)
		}
	}
	for _, e := range edges {
		if !g.AddEdge(e) {
			return fmt.Errorf("invalid or duplicate %s edge %s-%s", e.Kind, e.From, e.To)
		}
	}
	return nil
}

// Signature returns an order-insensitive description of the node and edge
// sets, for comparing two builds.
func (g *Graph) Signature() (nodes, edges []string) {
	for _, n := range g.Nodes {
		nodes = append(nodes, string(n.Kind)+":"+n.ID)
	}
	for k := range g.edges {
		edges = append(edges, fmt.Sprintf("%s:%s|%s", k.kind, k.a, k.b))
	}
	sort.Strings(nodes)
	sort.Strings(edges)
	return nodes, edges
}
