package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/cache"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"div abstract wins",
			`<p>intro</p><section id="abstract">section text</section><div class="abstract">  Microgravity
			 alters bone. </div>`,
			"Microgravity alters bone.",
		},
		{
			"section abstract",
			`<p>intro</p><section id="abstract"><h2>Abstract</h2> Plants grow.</section>`,
			"Abstract Plants grow.",
		},
		{"first paragraph", `<div><p>First para.</p><p>Second.</p></div>`, "First para."},
		{"nothing", `<div>no paragraphs</div>`, ""},
		{"empty abstract falls through", `<div class="abstract"> </div><p>Para.</p>`, "Para."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Extract(doc))
		})
	}
}

func TestPMCID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.ncbi.nlm.nih.gov/pmc/articles/PMC4136787/", "4136787"},
		{"https://www.ncbi.nlm.nih.gov/pmc/articles/PMC11500582", "11500582"},
		{"https://example.org/paper/1", ""},
		{"https://example.org/PMC/", ""},
		{"https://example.org/PMCabc/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PMCID(tt.link); got != tt.want {
			t.Errorf("PMCID(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}

func testServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`<html><body><div class="abstract">Spaceflight changes gene expression.</div></body></html>`))
		case "/plain":
			w.Write([]byte(`<html><body><p>Only a paragraph.</p></body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestFetch(t *testing.T) {
	srv := testServer(t, nil)
	defer srv.Close()

	f := New(types.FetchConfig{})
	ctx := context.Background()

	assert.Equal(t, "Spaceflight changes gene expression.", f.Fetch(ctx, srv.URL+"/ok"))
	assert.Equal(t, "Only a paragraph.", f.Fetch(ctx, srv.URL+"/plain"))
	assert.Empty(t, f.Fetch(ctx, srv.URL+"/missing"))
	assert.Empty(t, f.Fetch(ctx, "ftp://example.org/file"))
	assert.Empty(t, f.Fetch(ctx, "not a url"))
}

func TestFetchClosedServer(t *testing.T) {
	srv := testServer(t, nil)
	url := srv.URL + "/ok"
	srv.Close()
	assert.Empty(t, New(types.FetchConfig{}).Fetch(context.Background(), url))
}

func TestEnrich(t *testing.T) {
	srv := testServer(t, nil)
	defer srv.Close()

	in := corpus.New([]string{corpus.ColTitle, corpus.ColLink}, []types.Record{
		{Title: "A", Link: srv.URL + "/ok"},
		{Title: "B", Link: srv.URL + "/missing"},
		{Title: "C"},
		{Title: "D", Link: srv.URL + "/plain", Abstract: "kept"},
	})

	f := New(types.FetchConfig{Concurrency: 3})
	res, err := f.Enrich(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 1, res.Filled)
	assert.True(t, res.Corpus.Has(corpus.ColAbstract))
	assert.Equal(t, "Spaceflight changes gene expression.", res.Corpus.Records[0].Abstract)
	assert.Empty(t, res.Corpus.Records[1].Abstract)
	assert.Empty(t, res.Corpus.Records[2].Abstract)
	assert.Equal(t, "kept", res.Corpus.Records[3].Abstract)

	// Copy-on-write: the input is untouched.
	assert.Empty(t, in.Records[0].Abstract)
	assert.False(t, in.Has(corpus.ColAbstract))
}

func TestEnrichUsesCache(t *testing.T) {
	var calls int32
	srv := testServer(t, &calls)
	defer srv.Close()

	store, err := cache.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	in := corpus.New([]string{corpus.ColLink}, []types.Record{
		{Title: "A", Link: srv.URL + "/ok"},
		{Title: "B", Link: srv.URL + "/missing"},
	})

	var progress strings.Builder
	f := New(types.FetchConfig{Concurrency: 2})
	f.Cache = store
	f.Progress = &progress

	first, err := f.Enrich(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, first.CacheHits)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	second, err := f.Enrich(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, second.CacheHits)
	assert.Equal(t, 1, second.Filled)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "cached pages are not refetched")
	assert.Contains(t, progress.String(), "fetched 1/2")
}

func TestEnrichCancelled(t *testing.T) {
	srv := testServer(t, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := corpus.New(nil, []types.Record{{Title: "A", Link: srv.URL + "/ok"}})
	_, err := New(types.FetchConfig{}).Enrich(ctx, in)
	assert.ErrorIs(t, err, context.Canceled)
}
