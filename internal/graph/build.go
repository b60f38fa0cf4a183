// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/authors"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// Options controls graph assembly.
type Options struct {
	// Policy caps authors per paper and truncates their display names.
	Policy authors.Policy

	// Similarity picks the paper-to-paper edge rule.
	Similarity types.SimilarityMode

	// MinSharedTokens is the lexical threshold (default 2).
	MinSharedTokens int

	// LabelLen truncates paper titles in labels (default 60).
	LabelLen int

	// OmitAuthors leaves author nodes and authorship edges out.
	OmitAuthors bool
}

// DefaultOptions returns the interactive graph options.
func DefaultOptions() Options {
	return OptionsFromConfig(types.DefaultGraphConfig(types.VariantInteractive))
}

// OptionsFromConfig maps a graph configuration onto build options.
func OptionsFromConfig(cfg types.GraphConfig) Options {
	return Options{
		Policy:          authors.Policy{MaxAuthors: cfg.MaxAuthors, MaxNameLen: cfg.MaxNameLen},
		Similarity:      cfg.Similarity,
		MinSharedTokens: cfg.MinSharedTokens,
		LabelLen:        cfg.LabelLen,
		OmitAuthors:     cfg.OmitAuthors,
	}
}

// PaperID returns the node ID for a corpus row.
func PaperID(row int) string {
	return fmt.Sprintf("paper_%d", row)
}

// AuthorID returns the node ID for an author key.
func AuthorID(key string) string {
	return "author_" + key
}

// authorIndex maps each author to the papers they are attached to. It
// lives for one Build call and is passed explicitly between its steps.
type authorIndex struct {
	order  []string
	byKey  map[string]authors.Author
	papers map[string][]string

	// byPaper is the inverse view, derived from papers.
	byPaper map[string]map[string]bool
}

func newAuthorIndex() *authorIndex {
	return &authorIndex{
		byKey:   make(map[string]authors.Author),
		papers:  make(map[string][]string),
		byPaper: make(map[string]map[string]bool),
	}
}

func (ix *authorIndex) attach(a authors.Author, paperID string) {
	if _, ok := ix.byKey[a.Key]; !ok {
		ix.byKey[a.Key] = a
		ix.order = append(ix.order, a.Key)
	}
	if ix.byPaper[paperID] == nil {
		ix.byPaper[paperID] = make(map[string]bool)
	}
	if ix.byPaper[paperID][a.Key] {
		return
	}
	ix.byPaper[paperID][a.Key] = true
	ix.papers[a.Key] = append(ix.papers[a.Key], paperID)
}

// shared counts the authors two papers have in common.
func (ix *authorIndex) shared(p1, p2 string) int {
	a1, a2 := ix.byPaper[p1], ix.byPaper[p2]
	if len(a2) < len(a1) {
		a1, a2 = a2, a1
	}
	n := 0
	for k := range a1 {
		if a2[k] {
			n++
		}
	}
	return n
}

// Build assembles the graph for records. An empty record list yields the
// single placeholder node and no edges.
func Build(records []types.Record, opts Options) *Graph {
	g := New()
	if len(records) == 0 {
		g.AddNode(Node{ID: PlaceholderID, Kind: KindPlaceholder, Label: PlaceholderLabel, Title: PlaceholderLabel})
		return g
	}
	if opts.LabelLen <= 0 {
		opts.LabelLen = 60
	}
	if opts.MinSharedTokens <= 0 {
		opts.MinSharedTokens = 2
	}

	var paperIDs []string
	for _, r := range records {
		id := PaperID(r.Row)
		if g.AddNode(paperNode(r, opts.LabelLen)) {
			paperIDs = append(paperIDs, id)
		}
	}

	ix := newAuthorIndex()
	for _, r := range records {
		for _, a := range opts.Policy.Parse(r.Authors) {
			ix.attach(a, PaperID(r.Row))
		}
	}

	if !opts.OmitAuthors {
		addAuthors(g, ix)
	}

	switch opts.Similarity {
	case types.SimilarityLexical:
		addLexicalSimilarity(g, records, paperIDs, opts.MinSharedTokens)
	case types.SimilarityNone:
	default:
		addAuthorSimilarity(g, ix, paperIDs)
	}
	return g
}

func paperNode(r types.Record, labelLen int) Node {
	title := r.Title
	if utf8.RuneCountInString(title) > labelLen {
		title = string([]rune(title)[:labelLen])
	}
	return Node{
		ID:        PaperID(r.Row),
		Kind:      KindPaper,
		Label:     fmt.Sprintf("%s\n(%s)", title, r.YearLabel()),
		Title:     r.Title,
		Row:       r.Row,
		Year:      r.Clone().Year,
		Citations: r.CitationCount(),
		Authors:   r.Authors,
		Link:      r.Link,
	}
}

// addAuthors creates one node per author with at least one paper, in
// first-seen order, and links it to each of its papers.
func addAuthors(g *Graph, ix *authorIndex) {
	for _, key := range ix.order {
		papers := ix.papers[key]
		if len(papers) == 0 {
			continue
		}
		a := ix.byKey[key]
		id := AuthorID(key)
		g.AddNode(Node{
			ID:         id,
			Kind:       KindAuthor,
			Label:      a.Display,
			Title:      a.Name,
			PaperCount: len(papers),
		})
		for _, p := range papers {
			g.AddEdge(Edge{From: id, To: p, Kind: EdgeAuthorship})
		}
	}
}

// addAuthorSimilarity links every pair of papers sharing an author.
func addAuthorSimilarity(g *Graph, ix *authorIndex, paperIDs []string) {
	for i, p1 := range paperIDs {
		for _, p2 := range paperIDs[i+1:] {
			if n := ix.shared(p1, p2); n > 0 {
				g.AddEdge(Edge{From: p1, To: p2, Kind: EdgeSimilarity, Shared: n})
			}
		}
	}
}

// addLexicalSimilarity links papers whose lowercased title token sets
// overlap in at least minShared tokens.
func addLexicalSimilarity(g *Graph, records []types.Record, paperIDs []string, minShared int) {
	tokens := make(map[string]map[string]bool, len(records))
	for _, r := range records {
		id := PaperID(r.Row)
		if _, ok := tokens[id]; ok {
			continue
		}
		tokens[id] = TitleTokens(r.Title)
	}

	for i, p1 := range paperIDs {
		for _, p2 := range paperIDs[i+1:] {
			n := 0
			for t := range tokens[p1] {
				if tokens[p2][t] {
					n++
				}
			}
			if n >= minShared {
				g.AddEdge(Edge{From: p1, To: p2, Kind: EdgeSimilarity, Shared: n})
			}
		}
	}
}

// TitleTokens returns the set of lowercased whitespace-separated words.
func TitleTokens(title string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		set[w] = true
	}
	return set
}
