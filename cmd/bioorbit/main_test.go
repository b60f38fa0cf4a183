package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "")
	v := viper.New()
	setDefaults(v)
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	v := newTestViper(t)
	require.NoError(t, readConfig(v, ""))

	got, err := loadConfig(v)
	require.NoError(t, err)

	want := types.DefaultPipelineConfig()
	assert.Equal(t, want.Graph, got.Graph)
	assert.Equal(t, want.Layout, got.Layout)
	assert.Equal(t, want.Summary.Timeout, got.Summary.Timeout)
	assert.Equal(t, want.Fetch, got.Fetch)
	assert.Equal(t, want.Cache.Path, got.Cache.Path)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bioorbit.yaml")
	yaml := `graph:
  variant: simplified
  max_papers: 7
summary:
  timeout: 5s
layout:
  algorithm: isomap
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("BIOORBIT_LAYOUT_ALGORITHM", "spring")
	t.Setenv("BIOORBIT_SUMMARY_API_KEY", "from-env")

	v := newTestViper(t)
	require.NoError(t, readConfig(v, path))
	got, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, types.VariantSimplified, got.Graph.Variant)
	assert.Equal(t, 7, got.Graph.MaxPapers)
	assert.Equal(t, 5*time.Second, got.Summary.Timeout)
	assert.Equal(t, types.LayoutSpring, got.Layout.Algorithm, "environment overrides file")
	assert.Equal(t, "from-env", got.Summary.APIKey)
}

func TestReadConfigMissingExplicitFile(t *testing.T) {
	v := newTestViper(t)
	assert.Error(t, readConfig(v, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		query, want string
	}{
		{"bone", "knowledge_graph_bone"},
		{"  Bone Loss!  ", "knowledge_graph_bone_loss"},
		{"plant/root growth", "knowledge_graph_plant_root_growth"},
		{"", "all_papers"},
		{"???", "all_papers"},
	}
	for _, tt := range tests {
		if got := slug(tt.query); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestWriteOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
