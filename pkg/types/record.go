// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bioorbit pipeline:
// corpus records and the typed configuration for every stage.
package types

import "strconv"

// Record is one row of the publication corpus. Records are read-only inputs;
// their identity is the corpus row index. Optional columns use pointer or
// empty-string absence so a missing value is never confused with a zero.
type Record struct {
	// Row is the zero-based corpus row index. It is the record's identity.
	Row int `json:"row" yaml:"row"`

	// Title is the publication title. It is the only required column.
	Title string `json:"title" yaml:"title"`

	// Authors is the raw, delimiter-separated author field as it appears
	// in the corpus. Empty means absent.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year, nil when absent or unparseable.
	Year *int `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the citation count, nil when absent or unparseable.
	Citations *int `json:"citations,omitempty" yaml:"citations,omitempty"`

	// Abstract is the publication abstract. Empty means absent.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords is the free-text keyword field. Empty means absent.
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Link is the publication URL. Empty means absent.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// CitationCount returns the citation count, treating an absent or negative
// value as zero.
func (r Record) CitationCount() int {
	if r.Citations == nil || *r.Citations < 0 {
		return 0
	}
	return *r.Citations
}

// HasYear reports whether the record carries a publication year.
func (r Record) HasYear() bool {
	return r.Year != nil
}

// YearLabel returns the year as a string, or "N/A" when absent.
func (r Record) YearLabel() string {
	if r.Year == nil {
		return "N/A"
	}
	return strconv.Itoa(*r.Year)
}

// Clone returns a deep copy of the record so callers can hand it to
// concurrent code without sharing the optional integer fields.
func (r Record) Clone() Record {
	c := r
	if r.Year != nil {
		y := *r.Year
		c.Year = &y
	}
	if r.Citations != nil {
		n := *r.Citations
		c.Citations = &n
	}
	return c
}

// CloneRecords deep-copies a record slice.
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// IntPtr returns a pointer to n. It keeps record literals in tests and
// loaders short.
func IntPtr(n int) *int {
	return &n
}
