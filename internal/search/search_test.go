package search

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

func testCorpus() *corpus.Corpus {
	return corpus.New(
		[]string{corpus.ColAuthors, corpus.ColYear, corpus.ColCitations, corpus.ColAbstract},
		[]types.Record{
			{Title: "Microgravity Bone Loss", Authors: "Smith, Jones", Year: types.IntPtr(2015), Citations: types.IntPtr(10)},
			{Title: "Plant Growth in Orbit", Abstract: "Effects of MICROGRAVITY on roots", Year: types.IntPtr(2018)},
			{Title: "Radiation and Stem Cells", Keywords: "microgravity"},
			{Title: "Microgravity Muscle Atrophy"},
		},
	)
}

// --- Query ---

func TestQueryIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty", Query{}, true},
		{"whitespace", Query{Text: "  "}, true},
		{"text", Query{Text: "bone"}, false},
		{"year only is empty", Query{YearFrom: 2000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Select ---

func TestSelectMatchesConfiguredFields(t *testing.T) {
	got := Select(testCorpus(), Query{Text: "microgravity"}, 20)

	// Row 2 matches only through keywords, which this corpus does not carry.
	wantRows := []int{0, 1, 3}
	if len(got) != len(wantRows) {
		t.Fatalf("len = %d, want %d", len(got), len(wantRows))
	}
	for i, r := range got {
		if r.Row != wantRows[i] {
			t.Errorf("result %d row = %d, want %d", i, r.Row, wantRows[i])
		}
	}
}

func TestSelectTitleOnly(t *testing.T) {
	got := Select(testCorpus(), Query{Text: "microgravity", Fields: []string{"title"}}, 20)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestSelectTruncatesInRowOrder(t *testing.T) {
	out := Run(testCorpus(), Query{Text: "microgravity"}, 2)
	if len(out.Results) != 2 {
		t.Fatalf("len = %d, want 2", len(out.Results))
	}
	if out.Matched != 3 {
		t.Errorf("Matched = %d, want 3", out.Matched)
	}
	if out.Results[0].Row != 0 || out.Results[1].Row != 1 {
		t.Errorf("rows = %d,%d, want 0,1", out.Results[0].Row, out.Results[1].Row)
	}
}

func TestSelectNoMatchIsEmpty(t *testing.T) {
	got := Select(testCorpus(), Query{Text: "zebrafish"}, 20)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if got := Select(nil, Query{Text: "x"}, 20); len(got) != 0 {
		t.Errorf("nil corpus returned %d records", len(got))
	}
}

func TestSelectYearRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"no bounds", 0, 0, 3},
		{"from 2016", 2016, 0, 1},
		{"to 2016", 0, 2016, 1},
		{"closed range", 2015, 2018, 2},
		{"empty range", 2019, 2020, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(testCorpus(), Query{Text: "microgravity", YearFrom: tt.from, YearTo: tt.to}, 0)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSelectReturnsCopies(t *testing.T) {
	c := testCorpus()
	got := Select(c, Query{Text: "bone"}, 1)
	*got[0].Year = 1900
	if *c.Records[0].Year != 2015 {
		t.Errorf("selection aliases corpus records")
	}
}

func TestSelectProperties(t *testing.T) {
	words := []string{"bone", "plant", "microgravity", "radiation", "cell", "Bone", "ROOT"}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		records := make([]types.Record, n)
		for i := range records {
			records[i] = types.Record{
				Title:    strings.Join(rapid.SliceOfN(rapid.SampledFrom(words), 0, 4).Draw(t, "title"), " "),
				Abstract: strings.Join(rapid.SliceOfN(rapid.SampledFrom(words), 0, 4).Draw(t, "abstract"), " "),
			}
		}
		c := corpus.New([]string{corpus.ColAbstract}, records)
		query := rapid.SampledFrom(words).Draw(t, "query")
		maxCount := rapid.IntRange(1, 25).Draw(t, "max")

		got := Select(c, Query{Text: query}, maxCount)
		if len(got) > maxCount {
			t.Fatalf("len = %d exceeds max %d", len(got), maxCount)
		}
		needle := strings.ToLower(query)
		last := -1
		for _, r := range got {
			if !strings.Contains(strings.ToLower(r.Title), needle) &&
				!strings.Contains(strings.ToLower(r.Abstract), needle) {
				t.Fatalf("row %d does not match %q", r.Row, query)
			}
			if r.Row <= last {
				t.Fatalf("rows out of order: %d after %d", r.Row, last)
			}
			last = r.Row
		}
	})
}

// --- Formatting ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Run(testCorpus(), Query{Text: "microgravity"}, 2), &buf)
	s := buf.String()

	for _, want := range []string{"Microgravity Bone Loss", "Smith, Jones", "2015", "2 results (of 3 matches)"} {
		if !strings.Contains(s, want) {
			t.Errorf("table missing %q:\n%s", want, s)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Output{}, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatTableTruncatesWideTitles(t *testing.T) {
	long := strings.Repeat("微", 50)
	var buf bytes.Buffer
	FormatTable(Output{Results: []types.Record{{Title: long}}}, &buf)
	if strings.Contains(buf.String(), long) {
		t.Errorf("title was not truncated")
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(Run(testCorpus(), Query{Text: "bone"}, 5), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	var got []types.Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Microgravity Bone Loss" {
		t.Errorf("got %+v", got)
	}
}
