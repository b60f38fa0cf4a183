// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
)

// VisNetworkURL is the widget script loaded by the interactive page.
const VisNetworkURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"

// positionScale maps unit layout coordinates to widget pixels.
const positionScale = 400

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Knowledge Graph: {{.Query}}</title>
<script src="{{.Script}}"></script>
<style>
body { margin: 0; padding: 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif; background-color: #F8F9FA; }
.header { text-align: center; margin-bottom: 20px; padding: 15px; background: white; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.header h2 { margin: 0; color: #333; font-size: 22px; }
.legend { display: flex; justify-content: center; gap: 30px; margin-top: 10px; font-size: 14px; color: #666; }
.legend-item { display: flex; align-items: center; gap: 8px; }
.legend-dot { width: 12px; height: 12px; border-radius: 50%; }
#mynetwork { width: 100%; height: {{.Height}}px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); background: white; }
</style>
</head>
<body>
<div class="header">
<h2>Knowledge Graph: {{.Heading}}</h2>
<div class="legend">
{{- range .Legend}}
<div class="legend-item"><div class="legend-dot" style="background-color: {{.Color}};"></div><span>{{.Label}}</span></div>
{{- end}}
</div>
</div>
<div id="mynetwork"></div>
<script>
var nodes = new vis.DataSet({{.Nodes}});
var edges = new vis.DataSet({{.Edges}});
var options = {{.Options}};
new vis.Network(document.getElementById("mynetwork"), {nodes: nodes, edges: edges}, options);
</script>
</body>
</html>
`))

// PageOptions configures the interactive page.
type PageOptions struct {
	Query   string
	Physics layout.Physics
	Height  int

	// Layout seeds the widget's initial node positions. Optional.
	Layout layout.Layout
}

type legendItem struct {
	Color string
	Label string
}

type visNode struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Title string   `json:"title"`
	Size  float64  `json:"size"`
	Color string   `json:"color"`
	Shape string   `json:"shape"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

type visEdge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// WriteHTML writes a standalone vis-network page for g.
func WriteHTML(w io.Writer, g *graph.Graph, opts PageOptions) error {
	if opts.Height <= 0 {
		opts.Height = 600
	}

	nodes, err := json.Marshal(visNodes(g, opts.Layout))
	if err != nil {
		return fmt.Errorf("marshaling nodes: %w", err)
	}
	edges, err := json.Marshal(visEdges(g))
	if err != nil {
		return fmt.Errorf("marshaling edges: %w", err)
	}
	options, err := json.Marshal(widgetOptions(opts.Physics))
	if err != nil {
		return fmt.Errorf("marshaling options: %w", err)
	}

	data := struct {
		Query, Heading, Script string
		Height                 int
		Legend                 []legendItem
		Nodes, Edges, Options  template.JS
	}{
		Query:   opts.Query,
		Heading: TitleCase(opts.Query),
		Script:  VisNetworkURL,
		Height:  opts.Height,
		Legend:  legend(),
		// go-json escapes <, > and & so the payload cannot close the script.
		Nodes:   template.JS(nodes),
		Edges:   template.JS(edges),
		Options: template.JS(options),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func visNodes(g *graph.Graph, l layout.Layout) []visNode {
	out := make([]visNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		v := visNode{
			ID:    n.ID,
			Label: n.Label,
			Title: hoverText(n),
			Size:  n.Size,
			Color: n.Color,
			Shape: "dot",
		}
		if p, ok := l[n.ID]; ok {
			x, y := p.X*positionScale, p.Y*positionScale
			v.X, v.Y = &x, &y
		}
		out = append(out, v)
	}
	return out
}

func visEdges(g *graph.Graph) []visEdge {
	out := make([]visEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, visEdge{From: e.From, To: e.To, Color: e.Color, Width: e.Width})
	}
	return out
}

func hoverText(n graph.Node) string {
	switch n.Kind {
	case graph.KindPaper:
		year := "N/A"
		if n.Year != nil {
			year = strconv.Itoa(*n.Year)
		}
		text := fmt.Sprintf("%s\nYear: %s\nCitations: %d", n.Title, year, n.Citations)
		if n.Authors != "" {
			text += "\nAuthors: " + truncate(n.Authors, 100)
		}
		return text
	case graph.KindAuthor:
		return fmt.Sprintf("Author: %s\nPapers: %d", n.Title, n.PaperCount)
	default:
		return n.Label
	}
}

func widgetOptions(p layout.Physics) map[string]any {
	return map[string]any{
		"physics": map[string]any{
			"enabled": true,
			"barnesHut": map[string]any{
				"gravitationalConstant": p.GravitationalConstant,
				"centralGravity":        p.CentralGravity,
				"springLength":          p.SpringLength,
				"springConstant":        p.SpringConstant,
				"damping":               p.Damping,
				"avoidOverlap":          p.AvoidOverlap,
			},
			"minVelocity": p.MinVelocity,
			"stabilization": map[string]any{
				"enabled":    true,
				"iterations": p.Iterations,
			},
		},
		"interaction": map[string]any{"hover": true, "navigationButtons": true, "keyboard": true},
		"nodes":       map[string]any{"font": map[string]any{"size": 12}},
		"edges":       map[string]any{"smooth": map[string]any{"type": "continuous"}},
	}
}
