//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleQueries are rendered by Samples.
var sampleQueries = []string{"bone", "plant", "radiation", "microgravity"}

// Samples builds the CLI and renders the knowledge graph for each sample
// query as an interactive page and a PNG snapshot under output/samples.
// Set BIOORBIT_CORPUS_PATH to point at a corpus other than the default.
func Samples() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	dir := filepath.Join("output", "samples")
	for _, q := range sampleQueries {
		for _, ext := range []string{"html", "png"} {
			out := filepath.Join(dir, q+"."+ext)
			if err := sh.RunV(bin, "graph", q, "--output", out); err != nil {
				return fmt.Errorf("rendering %q: %w", q, err)
			}
		}
	}
	return nil
}

// Layouts renders one query with every layout algorithm as SVG so the
// placements can be compared side by side.
func Layouts(query string) error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	for _, alg := range []string{"force_directed", "spring", "isomap"} {
		out := filepath.Join("output", "layouts", alg+".svg")
		if err := sh.RunV(bin, "graph", query, "--layout", alg, "--output", out); err != nil {
			return fmt.Errorf("layout %s: %w", alg, err)
		}
	}
	return nil
}
