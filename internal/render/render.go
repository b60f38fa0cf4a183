// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns an annotated graph and its layout into output
// artifacts: an interactive HTML page, static SVG and PNG snapshots,
// chart traces, and JSON or YAML exports. Renderers only read the graph;
// they never change node IDs, sizes, or colors.
package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"unicode"
)

// Format names an output artifact.
type Format string

const (
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported graph formats.
var Formats = []Format{FormatHTML, FormatSVG, FormatPNG, FormatJSON, FormatYAML}

// ParseFormat validates a format name. An empty name is inferred from the
// extension of path, defaulting to HTML.
func ParseFormat(name, path string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if name == "yml" {
			name = "yaml"
		}
		if name == "" || name == "htm" {
			name = string(FormatHTML)
		}
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want html, svg, png, json, or yaml)", name)
}

// TitleCase upper-cases the first letter of every run of letters and
// lower-cases the rest: "bone LOSS in-orbit" becomes "Bone Loss In-Orbit".
func TitleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// parseHex converts "#RRGGBB" to a color. Malformed input yields gray.
func parseHex(s string) color.RGBA {
	c := color.RGBA{0x99, 0x99, 0x99, 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{0x99, 0x99, 0x99, 0xff}
	}
	return c
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
