// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors turns the free-text author field of a corpus record into
// an ordered list of cleaned names. Names are keyed by a hash of the full
// normalized name; truncation is applied only for display.
package authors

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Delimiters is the ordered separator table. The first delimiter present
// anywhere in the raw field is the only one used to split it.
var Delimiters = []string{",", ";", "|"}

// Default policy values for the full graph.
const (
	DefaultMaxAuthors = 3
	DefaultMaxNameLen = 30
	NetworkMaxAuthors = 5
)

// Policy controls how many authors a record contributes and how long a
// display name may be. Zero values disable the corresponding limit.
type Policy struct {
	MaxAuthors int
	MaxNameLen int
}

// DefaultPolicy returns the full-graph policy: 3 authors, 30-rune names.
func DefaultPolicy() Policy {
	return Policy{MaxAuthors: DefaultMaxAuthors, MaxNameLen: DefaultMaxNameLen}
}

// NetworkPolicy returns the policy used by the statistical network view.
func NetworkPolicy() Policy {
	return Policy{MaxAuthors: NetworkMaxAuthors, MaxNameLen: DefaultMaxNameLen}
}

// Normalize splits raw on the first delimiter found and returns the trimmed,
// non-empty pieces in order. An empty field yields an empty list.
//
//	Normalize("A, B; C") == []string{"A", "B; C"}
func Normalize(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	pieces := []string{raw}
	for _, d := range Delimiters {
		if strings.Contains(raw, d) {
			pieces = strings.Split(raw, d)
			break
		}
	}

	names := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Retain applies the policy's author cap to an already normalized list.
func (p Policy) Retain(names []string) []string {
	if p.MaxAuthors > 0 && len(names) > p.MaxAuthors {
		return names[:p.MaxAuthors]
	}
	return names
}

// Display truncates name to the policy's maximum length in runes.
func (p Policy) Display(name string) string {
	if p.MaxNameLen <= 0 || utf8.RuneCountInString(name) <= p.MaxNameLen {
		return name
	}
	return string([]rune(name)[:p.MaxNameLen])
}

// Author is a normalized author name paired with its stable key and the
// truncated form shown on labels.
type Author struct {
	Key     string
	Name    string
	Display string
}

// Parse normalizes raw, applies the author cap, and returns keyed authors.
// Duplicate names within one record collapse to a single entry.
func (p Policy) Parse(raw string) []Author {
	names := p.Retain(Normalize(raw))
	out := make([]Author, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		k := Key(n)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, Author{Key: k, Name: n, Display: p.Display(n)})
	}
	return out
}

// Key returns a stable identifier for the untruncated normalized name. Two
// names that share a display prefix but differ afterwards get distinct keys.
func Key(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:8])
}
