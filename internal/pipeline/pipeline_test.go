package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/graph"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

const sampleCSV = `Title,Authors,Year,Citations,Abstract,Link
Bone loss in microgravity,"Smith, Jones",2015,40,Bone density falls in orbit.,https://example.org/1
Bone marrow adaptation,"Jones, Lee",2018,,Marrow changes in spaceflight.,https://example.org/2
Plant growth in orbit,Garcia,2020,5,Roots orient without gravity.,https://example.org/3
`

func loadSample(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	return c
}

func TestRunScenario(t *testing.T) {
	res, err := Run(loadSample(t), "bone", types.DefaultPipelineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Matched != 2 || len(res.Records) != 2 {
		t.Fatalf("matched %d, records %d, want 2 and 2", res.Matched, len(res.Records))
	}
	s := res.Stats
	if s.Papers != 2 || s.Authors != 3 || s.Authorship != 4 || s.Similarity != 1 {
		t.Errorf("stats = %+v, want 2 papers, 3 authors, 4 authorship, 1 similarity", s)
	}
	for _, n := range res.Graph.Nodes {
		if _, ok := res.Layout.Layout[n.ID]; !ok {
			t.Errorf("node %s has no position", n.ID)
		}
		if n.Size == 0 || n.Color == "" {
			t.Errorf("node %s not annotated: %+v", n.ID, n)
		}
	}
}

func TestRunEmptySelection(t *testing.T) {
	res, err := Run(loadSample(t), "zebrafish", types.DefaultPipelineConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Empty() || !res.Graph.IsPlaceholder() {
		t.Fatalf("expected placeholder graph, got %d nodes", len(res.Graph.Nodes))
	}
	if len(res.Graph.Edges) != 0 {
		t.Errorf("placeholder graph has %d edges", len(res.Graph.Edges))
	}
	if _, ok := res.Layout.Layout[graph.PlaceholderID]; !ok {
		t.Error("placeholder not laid out")
	}
}

func TestRunUnsupportedSchema(t *testing.T) {
	for _, c := range []*corpus.Corpus{nil, {Columns: []string{"authors"}}} {
		_, err := Run(c, "bone", types.DefaultPipelineConfig())
		if !errors.Is(err, corpus.ErrUnsupportedSchema) {
			t.Errorf("err = %v, want ErrUnsupportedSchema", err)
		}
	}
}

func TestRunDoesNotAliasCorpus(t *testing.T) {
	c := loadSample(t)
	res, err := Run(c, "bone", types.DefaultPipelineConfig())
	if err != nil {
		t.Fatal(err)
	}
	res.Records[0].Title = "changed"
	*res.Records[0].Year = 1900
	if c.Records[0].Title != "Bone loss in microgravity" || *c.Records[0].Year != 2015 {
		t.Errorf("corpus record mutated through result: %+v", c.Records[0])
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := types.DefaultPipelineConfig()
	for _, alg := range []types.LayoutAlgorithm{types.LayoutForceDirected, types.LayoutSpring, types.LayoutIsomap} {
		cfg.Layout.Algorithm = alg
		a, _ := Run(loadSample(t), "bone", cfg)
		b, _ := Run(loadSample(t), "bone", cfg)
		if !reflect.DeepEqual(a.Graph.Nodes, b.Graph.Nodes) || !reflect.DeepEqual(a.Graph.Edges, b.Graph.Edges) {
			t.Errorf("%s: graphs differ between runs", alg)
		}
		if !reflect.DeepEqual(a.Layout.Layout, b.Layout.Layout) {
			t.Errorf("%s: layouts differ between runs", alg)
		}
	}
}

func TestRunSimplified(t *testing.T) {
	cfg := types.DefaultPipelineConfig()
	cfg.Graph = types.DefaultGraphConfig(types.VariantSimplified)

	res, err := Run(loadSample(t), "in", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.Authors != 0 {
		t.Errorf("simplified graph has %d author nodes", res.Stats.Authors)
	}
	// No two titles share two tokens.
	if res.Stats.Similarity != 0 {
		t.Errorf("similarity edges = %d, want 0", res.Stats.Similarity)
	}
}

func TestRunMaxPapers(t *testing.T) {
	cfg := types.DefaultPipelineConfig()
	cfg.Graph.MaxPapers = 1
	res, err := Run(loadSample(t), "bone", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched != 2 || len(res.Records) != 1 {
		t.Errorf("matched %d, kept %d, want 2 and 1", res.Matched, len(res.Records))
	}
}
