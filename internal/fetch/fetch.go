// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch scrapes abstracts from record links and enriches a corpus
// with them. Fetch failures degrade to an empty abstract; they never abort
// enrichment.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/httputil"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// selectors are tried in order; the first with text wins.
var selectors = []string{"div.abstract", "section#abstract", "p"}

// Cache is the abstract persistence Enrich consults before fetching.
type Cache interface {
	Abstract(ctx context.Context, url string) (string, bool, error)
	PutAbstract(ctx context.Context, url, abstract string) error
}

// Fetcher downloads pages and extracts abstracts.
type Fetcher struct {
	Client      *http.Client
	UserAgent   string
	Concurrency int
	MaxRetries  int
	limiter     *rate.Limiter

	// Cache is optional.
	Cache Cache

	// Progress receives one line per fetched record. Nil discards.
	Progress io.Writer
	mu       sync.Mutex
}

// New builds a Fetcher from cfg. A non-positive RequestsPerSecond disables
// rate limiting.
func New(cfg types.FetchConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	conc := cfg.Concurrency
	if conc <= 0 {
		conc = 1
	}
	return &Fetcher{
		Client:      &http.Client{Timeout: timeout},
		UserAgent:   cfg.UserAgent,
		Concurrency: conc,
		MaxRetries:  1,
		limiter:     rate.NewLimiter(limit, 1),
	}
}

// Fetch returns the abstract found at url, or "" when url is not http(s),
// the request fails, the status is not 200, or no selector matches.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ""
	}
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return ""
		}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := httputil.Get(ctx, client, url, f.UserAgent, f.MaxRetries)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}
	return Extract(doc)
}

// Extract applies the abstract selectors to a parsed page.
func Extract(doc *goquery.Document) string {
	for _, sel := range selectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			if text := cleanText(s.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PMCID extracts the PubMed Central identifier digits from a link such as
// https://www.ncbi.nlm.nih.gov/pmc/articles/PMC4136787/. It returns ""
// when the link has none.
func PMCID(link string) string {
	i := strings.LastIndex(link, "PMC")
	if i < 0 {
		return ""
	}
	id := strings.Trim(link[i+3:], "/")
	if id == "" {
		return ""
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return id
}

// Result summarizes an enrichment run.
type Result struct {
	Corpus    *corpus.Corpus
	Attempted int
	Filled    int
	CacheHits int
}

// Enrich returns a new corpus whose records without an abstract carry the
// abstract scraped from their link. The input corpus is not modified.
// Only context cancellation returns an error.
func (f *Fetcher) Enrich(ctx context.Context, c *corpus.Corpus) (Result, error) {
	records := types.CloneRecords(c.Records)

	var todo []int
	for i, r := range records {
		if strings.TrimSpace(r.Abstract) == "" && r.Link != "" {
			todo = append(todo, i)
		}
	}

	var filled, hits int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(f.Concurrency, 1))
	for n, i := range todo {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			abstract, cached := f.lookup(gctx, records[i].Link)
			if cached {
				atomic.AddInt32(&hits, 1)
			}
			if abstract != "" {
				records[i].Abstract = abstract
				atomic.AddInt32(&filled, 1)
			}
			f.printf("fetched %d/%d: %s\n", n+1, len(todo), records[i].Title)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("enriching corpus: %w", err)
	}

	columns := c.Columns
	if !c.Has(corpus.ColAbstract) {
		columns = append(append([]string(nil), columns...), corpus.ColAbstract)
	}
	return Result{
		Corpus:    corpus.New(columns, records),
		Attempted: len(todo),
		Filled:    int(filled),
		CacheHits: int(hits),
	}, nil
}

func (f *Fetcher) lookup(ctx context.Context, url string) (string, bool) {
	if f.Cache != nil {
		if a, ok, err := f.Cache.Abstract(ctx, url); err == nil && ok {
			return a, true
		} else if err != nil {
			f.warn("reading abstract cache: %v", err)
		}
	}
	a := f.Fetch(ctx, url)
	if f.Cache != nil && ctx.Err() == nil {
		if err := f.Cache.PutAbstract(ctx, url, a); err != nil {
			f.warn("writing abstract cache: %v", err)
		}
	}
	return a, false
}

func (f *Fetcher) warn(format string, args ...any) {
	f.printf("warning: "+format+"\n", args...)
}

func (f *Fetcher) printf(format string, args ...any) {
	if f.Progress == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(f.Progress, format, args...)
}
