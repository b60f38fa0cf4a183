package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/layout"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/pipeline"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

const graphCSV = `Title,Authors,Year,Citations
Bone loss in microgravity,"Smith, Jones",2015,40
Bone marrow adaptation,"Jones, Lee",2018,12
Bone density recovery,Lee,2020,5
`

func runSample(t *testing.T, alg types.LayoutAlgorithm) pipeline.Result {
	t.Helper()
	c, err := corpus.Read(strings.NewReader(graphCSV))
	require.NoError(t, err)
	pc := types.DefaultPipelineConfig()
	pc.Layout.Algorithm = alg
	res, err := pipeline.Run(c, "bone", pc)
	require.NoError(t, err)
	return res
}

func TestSnapshotLayoutUsesSpring(t *testing.T) {
	res := runSample(t, types.LayoutForceDirected)
	require.Equal(t, types.LayoutForceDirected, res.Layout.Algorithm)

	got := snapshotLayout(res, types.DefaultLayoutConfig(), false)
	want, err := layout.Spring(res.Graph, 1.5, 50, 42)
	require.NoError(t, err)

	assert.Equal(t, types.LayoutSpring, got.Algorithm)
	assert.NoError(t, got.Fallback)
	assert.Equal(t, want, got.Layout)
}

func TestSnapshotLayoutKeepsExplicitAlgorithm(t *testing.T) {
	res := runSample(t, types.LayoutIsomap)

	got := snapshotLayout(res, types.DefaultLayoutConfig(), true)
	assert.Equal(t, res.Layout, got)
}
