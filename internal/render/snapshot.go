// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image/color"
	"image/png"
	"io"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/encode"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
)

// SnapshotOptions configures a static snapshot.
type SnapshotOptions struct {
	Title  string
	Width  int
	Height int
}

const (
	padding      = 40.0
	headerHeight = 70.0
	labelRunes   = 28
)

var (
	colorBackdrop = color.RGBA{0xf8, 0xf9, 0xfa, 0xff}
	colorHeaderBG = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText     = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorStroke   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// placed is a node in canvas coordinates.
type placed struct {
	graph.Node
	X, Y, R float64
}

type scene struct {
	Title         string
	Width, Height int
	Nodes         []placed
	Edges         []graph.Edge
	pos           map[string]placed
	NodeCount     int
	EdgeCount     int
}

func newScene(g *graph.Graph, l layout.Layout, opts SnapshotOptions) scene {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Title == "" {
		opts.Title = "Knowledge Graph"
	}
	s := scene{
		Title:     opts.Title,
		Width:     opts.Width,
		Height:    opts.Height,
		Edges:     g.Edges,
		pos:       make(map[string]placed, len(g.Nodes)),
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}

	lo, hi := l.Bounds()
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	areaW := float64(opts.Width) - 2*padding
	areaH := float64(opts.Height) - 2*padding - headerHeight

	for _, n := range g.Nodes {
		p := l[n.ID]
		x, y := 0.5, 0.5
		if spanX > 0 {
			x = (p.X - lo.X) / spanX
		}
		if spanY > 0 {
			y = (p.Y - lo.Y) / spanY
		}
		r := n.Size / 2
		if r < 3 {
			r = 3
		}
		pn := placed{Node: n, X: padding + x*areaW, Y: padding + headerHeight + y*areaH, R: r}
		s.Nodes = append(s.Nodes, pn)
		s.pos[n.ID] = pn
	}
	return s
}

// WriteSVG renders g at the positions in l as SVG.
func WriteSVG(w io.Writer, g *graph.Graph, l layout.Layout, opts SnapshotOptions) error {
	s := newScene(g, l, opts)

	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	canvas.Rect(0, 0, s.Width, s.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Roundrect(16, 16, s.Width-32, int(headerHeight-16), 8, 8, fmt.Sprintf("fill:%s", css(colorHeaderBG)))
	canvas.Text(32, 42, s.Title, fmt.Sprintf("fill:%s;font-size:18px;font-family:sans-serif;font-weight:bold", css(colorText)))
	canvas.Text(32, 62, summaryLine(s), fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", css(colorSubtle)))
	drawLegendSVG(canvas, s)

	for _, e := range s.Edges {
		from, to := s.pos[e.From], s.pos[e.To]
		width := e.Width
		if width <= 0 {
			width = 1
		}
		canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y),
			fmt.Sprintf("stroke:%s;stroke-width:%.1f", e.Color, width))
	}
	for _, n := range s.Nodes {
		canvas.Circle(int(n.X), int(n.Y), int(n.R),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2;fill-opacity:0.85", n.Color, css(colorStroke)))
		canvas.Text(int(n.X), int(n.Y-n.R-4), truncate(firstLine(n.Label), labelRunes),
			fmt.Sprintf("fill:%s;font-size:10px;font-family:sans-serif;text-anchor:middle", css(colorText)))
	}
	canvas.End()
	return nil
}

// WritePNG renders g at the positions in l as PNG.
func WritePNG(w io.Writer, g *graph.Graph, l layout.Layout, opts SnapshotOptions) error {
	s := newScene(g, l, opts)

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorHeaderBG)
	dc.DrawRoundedRectangle(16, 16, float64(s.Width)-32, headerHeight-16, 8)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorText)
	dc.DrawStringAnchored(s.Title, 32, 36, 0, 0.5)
	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(summaryLine(s), 32, 56, 0, 0.5)
	drawLegend(dc, s)

	for _, e := range s.Edges {
		from, to := s.pos[e.From], s.pos[e.To]
		width := e.Width
		if width <= 0 {
			width = 1
		}
		dc.SetColor(parseHex(e.Color))
		dc.SetLineWidth(width)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		dc.Stroke()
	}
	for _, n := range s.Nodes {
		dc.SetColor(parseHex(n.Color))
		dc.DrawCircle(n.X, n.Y, n.R)
		dc.Fill()
		dc.SetColor(colorStroke)
		dc.SetLineWidth(2)
		dc.DrawCircle(n.X, n.Y, n.R)
		dc.Stroke()
		dc.SetColor(colorText)
		dc.DrawStringAnchored(truncate(firstLine(n.Label), labelRunes), n.X, n.Y-n.R-8, 0.5, 0.5)
	}

	if err := png.Encode(w, dc.Image()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func summaryLine(s scene) string {
	return fmt.Sprintf("nodes: %d  edges: %d", s.NodeCount, s.EdgeCount)
}

func drawLegend(dc *gg.Context, s scene) {
	x := float64(s.Width) - 200
	for i, item := range legend() {
		y := 34 + float64(i)*18
		dc.SetColor(parseHex(item.Color))
		dc.DrawCircle(x, y, 6)
		dc.Fill()
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(item.Label, x+12, y, 0, 0.5)
	}
}

func drawLegendSVG(canvas *svg.SVG, s scene) {
	x := s.Width - 200
	for i, item := range legend() {
		y := 34 + i*18
		canvas.Circle(x, y, 6, fmt.Sprintf("fill:%s", item.Color))
		canvas.Text(x+12, y+4, item.Label, fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", css(colorSubtle)))
	}
}

func legend() []legendItem {
	return []legendItem{
		{Color: encode.ColorPaper, Label: "Research Papers"},
		{Color: encode.ColorAuthor, Label: "Authors"},
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
