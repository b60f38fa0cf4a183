// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// ExportNode is a graph node with its laid-out position.
type ExportNode struct {
	graph.Node `yaml:",inline"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
}

// Export is the serialized form of one pipeline run.
type Export struct {
	Query     string                `json:"query" yaml:"query"`
	Algorithm types.LayoutAlgorithm `json:"algorithm" yaml:"algorithm"`
	Fallback  string                `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Stats     graph.Stats           `json:"stats" yaml:"stats"`
	Nodes     []ExportNode          `json:"nodes" yaml:"nodes"`
	Edges     []graph.Edge          `json:"edges" yaml:"edges"`
}

// NewExport pairs each node of g with its position in res.
func NewExport(query string, g *graph.Graph, res layout.Result) Export {
	e := Export{
		Query:     query,
		Algorithm: res.Algorithm,
		Stats:     g.ComputeStats(),
		Nodes:     make([]ExportNode, len(g.Nodes)),
		Edges:     g.Edges,
	}
	if res.Fallback != nil {
		e.Fallback = res.Fallback.Error()
	}
	for i, n := range g.Nodes {
		p := res.Layout[n.ID]
		e.Nodes[i] = ExportNode{Node: n, X: p.X, Y: p.Y}
	}
	return e
}

// Graph rebuilds the graph from an export, restoring its lookup indexes.
func (e Export) Graph() (*graph.Graph, error) {
	g := &graph.Graph{Nodes: make([]graph.Node, len(e.Nodes)), Edges: e.Edges}
	for i, n := range e.Nodes {
		g.Nodes[i] = n.Node
	}
	if err := g.Reindex(); err != nil {
		return nil, fmt.Errorf("rebuilding graph: %w", err)
	}
	return g, nil
}

// WriteJSON writes e as indented JSON.
func WriteJSON(w io.Writer, e Export) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteYAML writes e as YAML.
func WriteYAML(w io.Writer, e Export) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadJSON decodes an export written by WriteJSON.
func ReadJSON(r io.Reader) (Export, error) {
	var e Export
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return Export{}, fmt.Errorf("decoding JSON: %w", err)
	}
	return e, nil
}

// ReadYAML decodes an export written by WriteYAML.
func ReadYAML(r io.Reader) (Export, error) {
	var e Export
	if err := yaml.NewDecoder(r).Decode(&e); err != nil {
		return Export{}, fmt.Errorf("decoding YAML: %w", err)
	}
	return e, nil
}
