// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/authors"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/encode"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// Chart limits.
const (
	NetworkMaxPapers = 15
	ImpactMaxPapers  = 20
	NetworkLabelLen  = 40
	ImpactTitleLen   = 60

	// NoAbstractFocus is the focus score given to papers without an
	// abstract.
	NoAbstractFocus = 2.5
	maxFocus        = 5.0
)

// Figure is a renderer-neutral chart description: traces plus titles.
// A figure with no traces carries its explanation in Message.
type Figure struct {
	Title      string  `json:"title"`
	XTitle     string  `json:"x_title,omitempty"`
	YTitle     string  `json:"y_title,omitempty"`
	Y2Title    string  `json:"y2_title,omitempty"`
	Traces     []Trace `json:"traces"`
	Message    string  `json:"message,omitempty"`
	Annotation string  `json:"annotation,omitempty"`
}

// Trace is one series. X and Y hold nil entries as line breaks between
// edge segments.
type Trace struct {
	Name      string     `json:"name"`
	Mode      string     `json:"mode"`
	X         []*float64 `json:"x"`
	Y         []*float64 `json:"y"`
	Sizes     []float64  `json:"sizes,omitempty"`
	Color     string     `json:"color"`
	Width     float64    `json:"width,omitempty"`
	Text      []string   `json:"text,omitempty"`
	HoverText []string   `json:"hover_text,omitempty"`
	Axis      string     `json:"axis,omitempty"`
}

func num(f float64) *float64 { return &f }

// NetworkChart builds the author/paper network figure for the first
// NetworkMaxPapers records that list authors. Papers carry up to five
// authors and no paper-to-paper edges.
func NetworkChart(records []types.Record, query string) Figure {
	fig := Figure{Title: fmt.Sprintf("Author-Paper Network: %s Studies", TitleCase(query))}

	var withAuthors []types.Record
	for _, r := range records {
		if len(withAuthors) == NetworkMaxPapers {
			break
		}
		if len(authors.Normalize(r.Authors)) > 0 {
			withAuthors = append(withAuthors, r)
		}
	}
	if len(withAuthors) == 0 {
		fig.Message = "No data available for network visualization"
		return fig
	}

	g := graph.Build(withAuthors, graph.Options{
		Policy:     authors.NetworkPolicy(),
		Similarity: types.SimilarityNone,
		LabelLen:   NetworkLabelLen,
	})
	encode.Annotate(g, encode.NetworkStyle())

	opts := layout.DefaultOptions()
	opts.Algorithm = types.LayoutSpring
	pos := layout.Compute(g, opts)

	edges := Trace{Name: "Connections", Mode: "lines", Color: encode.NetworkStyle().AuthorshipColor, Width: 0.8}
	for _, e := range g.Edges {
		a, b := pos[e.From], pos[e.To]
		edges.X = append(edges.X, num(a.X), num(b.X), nil)
		edges.Y = append(edges.Y, num(a.Y), num(b.Y), nil)
	}

	authorTrace := Trace{Name: "Authors", Mode: "markers+text", Color: encode.ColorAuthor}
	paperTrace := Trace{Name: "Papers", Mode: "markers", Color: encode.ColorPaper}
	for _, n := range g.Nodes {
		p := pos[n.ID]
		switch n.Kind {
		case graph.KindAuthor:
			authorTrace.X = append(authorTrace.X, num(p.X))
			authorTrace.Y = append(authorTrace.Y, num(p.Y))
			authorTrace.Sizes = append(authorTrace.Sizes, n.Size)
			authorTrace.Text = append(authorTrace.Text, n.Label)
			authorTrace.HoverText = append(authorTrace.HoverText,
				fmt.Sprintf("Author: %s\nCollaborations: %d", n.Label, g.Degree(n.ID)))
		case graph.KindPaper:
			paperTrace.X = append(paperTrace.X, num(p.X))
			paperTrace.Y = append(paperTrace.Y, num(p.Y))
			paperTrace.Sizes = append(paperTrace.Sizes, n.Size)
			year := "N/A"
			if n.Year != nil {
				year = fmt.Sprint(*n.Year)
			}
			paperTrace.Text = append(paperTrace.Text, truncate(n.Title, NetworkLabelLen+3))
			paperTrace.HoverText = append(paperTrace.HoverText,
				fmt.Sprintf("%s\nYear: %s\nCitations: %d", n.Title, year, n.Citations))
		}
	}

	fig.Traces = []Trace{edges, authorTrace, paperTrace}
	return fig
}

// FocusScore rates how strongly abstract is about query: one plus half a
// point per occurrence of each query term, capped at five. Papers without
// an abstract score NoAbstractFocus.
func FocusScore(abstract, query string) float64 {
	if strings.TrimSpace(abstract) == "" {
		return NoAbstractFocus
	}
	lower := strings.ToLower(abstract)
	matches := 0
	for _, term := range strings.Fields(strings.ToLower(query)) {
		matches += strings.Count(lower, term)
	}
	return min(1+float64(matches)*0.5, maxFocus)
}

// AuthorCount counts authors for bubble sizing. Commas and semicolons
// both separate names; a record with no authors counts as one.
func AuthorCount(raw string) int {
	n := 0
	for _, part := range strings.Split(strings.ReplaceAll(raw, ";", ","), ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return max(n, 1)
}

// Median returns the median of xs; the mean of the middle pair when the
// count is even.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// ImpactChart plots focus score against citations for the first
// ImpactMaxPapers records, split at the median citation count.
func ImpactChart(records []types.Record, query string) Figure {
	q := TitleCase(query)
	fig := Figure{
		Title:      fmt.Sprintf("Research Impact Analysis: %s Studies", q),
		XTitle:     "Research Focus Score (Query Relevance)",
		YTitle:     "Impact (Citations)",
		Annotation: "Bubble size = Number of authors",
	}
	if len(records) < 2 {
		fig.Message = "Insufficient data for impact analysis"
		fig.Annotation = ""
		return fig
	}
	if len(records) > ImpactMaxPapers {
		records = records[:ImpactMaxPapers]
	}

	cites := make([]float64, len(records))
	for i, r := range records {
		cites[i] = float64(r.CitationCount())
	}
	median := Median(cites)

	high := Trace{Name: "High Impact Cluster", Mode: "markers", Color: encode.ColorPaper}
	low := Trace{Name: "Emerging Research", Mode: "markers", Color: encode.ColorAuthor}
	for _, r := range records {
		focus := FocusScore(r.Abstract, query)
		n := AuthorCount(r.Authors)
		t := &low
		if float64(r.CitationCount()) >= median {
			t = &high
		}
		t.X = append(t.X, num(focus))
		t.Y = append(t.Y, num(float64(r.CitationCount())))
		t.Sizes = append(t.Sizes, float64(n*8+15))
		t.Text = append(t.Text, truncate(r.Title, ImpactTitleLen+3))
		t.HoverText = append(t.HoverText, fmt.Sprintf("%s\nCitations: %d\nFocus Score: %.1f\nYear: %s\nAuthors: %d",
			r.Title, r.CitationCount(), focus, r.YearLabel(), n))
	}
	for _, t := range []Trace{high, low} {
		if len(t.X) > 0 {
			fig.Traces = append(fig.Traces, t)
		}
	}
	return fig
}

// YearCount is one timeline bucket.
type YearCount struct {
	Year       int `json:"year"`
	Count      int `json:"count"`
	Cumulative int `json:"cumulative"`
}

// Timeline counts records per year in ascending order with a running
// total. Records without a year are skipped.
func Timeline(records []types.Record) []YearCount {
	counts := map[int]int{}
	for _, r := range records {
		if r.Year != nil {
			counts[*r.Year]++
		}
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearCount, len(years))
	total := 0
	for i, y := range years {
		total += counts[y]
		out[i] = YearCount{Year: y, Count: counts[y], Cumulative: total}
	}
	return out
}

// TimelineChart plots publications per year as bars and the cumulative
// total as a line on a second axis.
func TimelineChart(records []types.Record, query string) Figure {
	fig := Figure{
		Title:   fmt.Sprintf("Publication Timeline: %s Research", TitleCase(query)),
		XTitle:  "Year",
		YTitle:  "Publications per Year",
		Y2Title: "Cumulative Publications",
	}
	if len(records) == 0 {
		fig.Message = "No timeline data available"
		return fig
	}

	bars := Trace{Name: "Publications per Year", Mode: "bar", Color: encode.ColorAccent}
	line := Trace{Name: "Cumulative Publications", Mode: "lines+markers", Color: encode.ColorPaper, Width: 3, Axis: "y2"}
	for _, yc := range Timeline(records) {
		x := float64(yc.Year)
		bars.X = append(bars.X, num(x))
		bars.Y = append(bars.Y, num(float64(yc.Count)))
		line.X = append(line.X, num(x))
		line.Y = append(line.Y, num(float64(yc.Cumulative)))
	}
	fig.Traces = []Trace{bars, line}
	return fig
}

// Charts bundles the three figures for one query.
type Charts struct {
	Query    string `json:"query"`
	Network  Figure `json:"network"`
	Impact   Figure `json:"impact"`
	Timeline Figure `json:"timeline"`
}

// BuildCharts computes every figure for records.
func BuildCharts(records []types.Record, query string) Charts {
	return Charts{
		Query:    query,
		Network:  NetworkChart(records, query),
		Impact:   ImpactChart(records, query),
		Timeline: TimelineChart(records, query),
	}
}

// WriteChartsJSON writes c as indented JSON.
func WriteChartsJSON(w io.Writer, c Charts) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling charts: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
