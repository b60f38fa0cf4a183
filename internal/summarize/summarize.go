// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize produces short summaries of search results. An online
// backend calls an OpenAI-compatible chat completions API; an offline
// backend picks leading sentences. Chain tries them in order.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// ErrUnavailable is returned when a backend cannot produce a summary:
// no API key, a network failure, a non-200 reply, or an unusable answer.
var ErrUnavailable = errors.New("summarizer unavailable")

// MinInputLen is the shortest text, in runes, worth summarizing.
const MinInputLen = 50

// Fixed replies.
const (
	InsufficientText = "Insufficient text for summarization."
	NotAvailable     = "Summary not available."
)

// Summarizer turns text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Offline summarizes without network access by keeping the first four
// sentences longer than 30 characters.
type Offline struct{}

// Summarize never fails.
func (Offline) Summarize(_ context.Context, text string) (string, error) {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 30 {
			sentences = append(sentences, s+".")
		}
	}
	if len(sentences) == 0 {
		return NotAvailable, nil
	}
	if len(sentences) > 4 {
		sentences = sentences[:4]
	}
	return strings.Join(sentences, " ") + "...", nil
}

// Chain tries Primary and uses Fallback when Primary fails. Text shorter
// than MinInputLen is answered with InsufficientText without calling
// either backend.
type Chain struct {
	Primary  Summarizer
	Fallback Summarizer

	// Warn receives a line when the primary backend fails. Nil discards.
	Warn io.Writer
}

// Summarize implements Summarizer.
func (c Chain) Summarize(ctx context.Context, text string) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinInputLen {
		return InsufficientText, nil
	}
	if c.Primary != nil {
		out, err := c.Primary.Summarize(ctx, text)
		if err == nil {
			return out, nil
		}
		if c.Warn != nil {
			fmt.Fprintf(c.Warn, "warning: online summarization failed, using offline fallback: %v\n", err)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	fb := c.Fallback
	if fb == nil {
		fb = Offline{}
	}
	return fb.Summarize(ctx, text)
}

// New returns the summarizer for cfg: a Chain over the Groq backend when
// an API key is configured, and the offline backend alone otherwise.
func New(cfg types.SummaryConfig, warn io.Writer) Summarizer {
	if cfg.APIKey == "" {
		return Chain{Fallback: Offline{}, Warn: warn}
	}
	return Chain{Primary: NewGroq(cfg), Fallback: Offline{}, Warn: warn}
}

// NewCached is New with the Groq backend wrapped in store. Only hosted
// summaries are cached; offline answers are recomputed on every call.
func NewCached(cfg types.SummaryConfig, store Store, warn io.Writer) Summarizer {
	if cfg.APIKey == "" || store == nil {
		return New(cfg, warn)
	}
	primary := Cached{Next: NewGroq(cfg), Store: store, Model: cfg.Model, Warn: warn}
	return Chain{Primary: primary, Fallback: Offline{}, Warn: warn}
}

// SummaryText builds the text to summarize for a result set: the first
// five abstracts when any record has one, otherwise a sentence listing up
// to ten titles.
func SummaryText(records []types.Record, query string) string {
	var abstracts []string
	for _, r := range records {
		if a := strings.TrimSpace(r.Abstract); a != "" {
			abstracts = append(abstracts, a)
			if len(abstracts) == 5 {
				break
			}
		}
	}
	if len(abstracts) > 0 {
		return strings.Join(abstracts, " ")
	}

	var titles []string
	for i, r := range records {
		if i == 10 {
			break
		}
		titles = append(titles, r.Title)
	}
	return fmt.Sprintf("Research papers about %s: %s", query, strings.Join(titles, ". "))
}
