// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search selects corpus records relevant to a keyword query and
// formats the selection for the terminal.
package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// DefaultFields are matched when a query names no fields.
var DefaultFields = []string{corpus.ColTitle, corpus.ColAbstract, corpus.ColKeywords}

// Query holds the selection parameters.
type Query struct {
	// Text is matched as a case-insensitive substring.
	Text string

	// Fields lists the record fields to match. Title is always matched;
	// other fields are used only when the corpus carries the column.
	Fields []string

	// YearFrom and YearTo bound the publication year, inclusive. Zero
	// disables a bound. When either bound is set, records without a year
	// are excluded.
	YearFrom int
	YearTo   int
}

// IsEmpty reports whether the query has no search text.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}

// QueryFromConfig builds a query from text and the search configuration.
func QueryFromConfig(text string, cfg types.SearchConfig) Query {
	return Query{Text: text, Fields: cfg.Fields, YearFrom: cfg.YearFrom, YearTo: cfg.YearTo}
}

// Output holds a selection and how many records matched before truncation.
type Output struct {
	Query   string         `json:"query"`
	Matched int            `json:"matched"`
	Results []types.Record `json:"results"`
}

// Select returns up to maxCount records matching q in corpus row order.
// Returned records are copies. A maxCount of zero or less means no cap.
func Select(c *corpus.Corpus, q Query, maxCount int) []types.Record {
	return Run(c, q, maxCount).Results
}

// Run performs the selection and reports the match count.
func Run(c *corpus.Corpus, q Query, maxCount int) Output {
	out := Output{Query: q.Text}
	if c == nil {
		return out
	}

	fields := activeFields(c, q.Fields)
	needle := strings.ToLower(q.Text)

	for _, r := range c.Records {
		if !inYearRange(r, q.YearFrom, q.YearTo) {
			continue
		}
		if !Matches(r, needle, fields) {
			continue
		}
		out.Matched++
		if maxCount <= 0 || len(out.Results) < maxCount {
			out.Results = append(out.Results, r.Clone())
		}
	}
	return out
}

// Matches reports whether any of fields in r contains the lowercased
// needle. Empty field values never match.
func Matches(r types.Record, needle string, fields []string) bool {
	for _, f := range fields {
		v := corpus.Field(r, f)
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// activeFields keeps title plus the requested fields the corpus carries.
func activeFields(c *corpus.Corpus, requested []string) []string {
	if len(requested) == 0 {
		requested = DefaultFields
	}
	fields := []string{corpus.ColTitle}
	for _, f := range requested {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == corpus.ColTitle || !c.Has(f) {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func inYearRange(r types.Record, from, to int) bool {
	if from == 0 && to == 0 {
		return true
	}
	if r.Year == nil {
		return false
	}
	if from != 0 && *r.Year < from {
		return false
	}
	if to != 0 && *r.Year > to {
		return false
	}
	return true
}

// FormatTable writes results as a human-readable table to w. Columns are
// padded by display width so wide characters line up.
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		pad("#", 4), pad("Title", 60), pad("Authors", 24), pad("Year", 4), "Citations")
	fmt.Fprintln(w, strings.Repeat("-", 108))

	for i, r := range out.Results {
		cites := ""
		if r.Citations != nil {
			cites = fmt.Sprintf("%d", *r.Citations)
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			pad(fmt.Sprintf("%d", i+1), 4),
			pad(truncate(r.Title, 60), 60),
			pad(truncate(r.Authors, 24), 24),
			pad(r.YearLabel(), 4),
			cites)
		if r.Link != "" {
			fmt.Fprintf(w, "      %s\n", r.Link)
		}
	}

	fmt.Fprintf(w, "\n%d results", len(out.Results))
	if out.Matched > len(out.Results) {
		fmt.Fprintf(w, " (of %d matches)", out.Matched)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Results)
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
