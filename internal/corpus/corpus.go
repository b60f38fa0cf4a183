// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads the publication corpus from CSV into memory.
// Header names are trimmed and matched case-insensitively. Only the title
// column is mandatory; every other column degrades to absent when missing
// and unparseable numbers degrade to absent values.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// ErrUnsupportedSchema is returned when the corpus has no title column.
var ErrUnsupportedSchema = errors.New("unsupported corpus schema: missing title column")

// Column names recognized by the loader.
const (
	ColTitle     = "title"
	ColAuthors   = "authors"
	ColYear      = "year"
	ColCitations = "citations"
	ColAbstract  = "abstract"
	ColKeywords  = "keywords"
	ColLink      = "link"
)

// KnownColumns lists the recognized columns in export order.
var KnownColumns = []string{ColTitle, ColAuthors, ColYear, ColCitations, ColAbstract, ColKeywords, ColLink}

// Corpus is the in-memory record table. It is read-only once loaded;
// stages that change records build a new Corpus.
type Corpus struct {
	// Columns holds the recognized columns present in the source, lowercased.
	Columns []string

	// Records are in source row order; Records[i].Row == i.
	Records []types.Record
}

// New builds a corpus from records, renumbering rows to match positions.
// The title column is always present.
func New(columns []string, records []types.Record) *Corpus {
	c := &Corpus{Records: make([]types.Record, len(records))}
	for i, r := range records {
		r = r.Clone()
		r.Row = i
		c.Records[i] = r
	}
	seen := map[string]bool{}
	for _, col := range append([]string{ColTitle}, columns...) {
		col = strings.ToLower(strings.TrimSpace(col))
		if !seen[col] {
			seen[col] = true
			c.Columns = append(c.Columns, col)
		}
	}
	return c
}

// Has reports whether the corpus schema carries the named column.
func (c *Corpus) Has(column string) bool {
	column = strings.ToLower(column)
	for _, col := range c.Columns {
		if col == column {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// Load opens path and reads it as CSV.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	return c, nil
}

// Read parses CSV from r. Rows with fewer or more fields than the header
// are accepted; missing cells read as empty.
func Read(r io.Reader) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrUnsupportedSchema
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	if _, ok := index[ColTitle]; !ok {
		return nil, ErrUnsupportedSchema
	}

	var columns []string
	for _, col := range KnownColumns {
		if _, ok := index[col]; ok {
			columns = append(columns, col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []types.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, types.Record{
			Row:       len(records),
			Title:     cell(row, ColTitle),
			Authors:   cell(row, ColAuthors),
			Year:      parseInt(cell(row, ColYear)),
			Citations: parseInt(cell(row, ColCitations)),
			Abstract:  cell(row, ColAbstract),
			Keywords:  cell(row, ColKeywords),
			Link:      cell(row, ColLink),
		})
	}

	return &Corpus{Columns: columns, Records: records}, nil
}

// parseInt accepts integers and float renderings such as "2015.0".
// Anything else, including NaN, is absent.
func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != f || f > 1e15 || f < -1e15 {
		return nil
	}
	n := int(f)
	return &n
}

// WriteCSV writes records with the given columns (in KnownColumns order
// when columns is nil). Absent values are written as empty cells.
func WriteCSV(w io.Writer, columns []string, records []types.Record) error {
	if columns == nil {
		columns = KnownColumns
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, col := range columns {
			row[i] = field(r, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Row, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Field returns the named text field of r, or "" when the record has no
// value for it. Year and citations render as decimal strings.
func Field(r types.Record, column string) string {
	return field(r, strings.ToLower(column))
}

func field(r types.Record, col string) string {
	switch col {
	case ColTitle:
		return r.Title
	case ColAuthors:
		return r.Authors
	case ColYear:
		if r.Year == nil {
			return ""
		}
		return strconv.Itoa(*r.Year)
	case ColCitations:
		if r.Citations == nil {
			return ""
		}
		return strconv.Itoa(*r.Citations)
	case ColAbstract:
		return r.Abstract
	case ColKeywords:
		return r.Keywords
	case ColLink:
		return r.Link
	}
	return ""
}

// Stats summarizes a corpus the way the dashboard header shows it.
type Stats struct {
	Total         int   `json:"total" yaml:"total"`
	UniqueAuthors int   `json:"unique_authors" yaml:"unique_authors"`
	UniqueYears   int   `json:"unique_years" yaml:"unique_years"`
	HasAuthors    bool  `json:"has_authors" yaml:"has_authors"`
	HasYears      bool  `json:"has_years" yaml:"has_years"`
	Years         []int `json:"years,omitempty" yaml:"years,omitempty"`
}

// ComputeStats counts records, distinct author fields, and distinct years.
// Author fields are compared as raw strings.
func (c *Corpus) ComputeStats() Stats {
	s := Stats{
		Total:      len(c.Records),
		HasAuthors: c.Has(ColAuthors),
		HasYears:   c.Has(ColYear),
	}
	authors := map[string]bool{}
	years := map[int]bool{}
	for _, r := range c.Records {
		if r.Authors != "" {
			authors[r.Authors] = true
		}
		if r.Year != nil {
			years[*r.Year] = true
		}
	}
	s.UniqueAuthors = len(authors)
	s.UniqueYears = len(years)
	for y := range years {
		s.Years = append(s.Years, y)
	}
	sort.Ints(s.Years)
	return s
}
