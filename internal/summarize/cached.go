// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"io"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/cache"
)

// Store is the persistence a Cached summarizer needs.
type Store interface {
	Summary(ctx context.Context, key string) (string, bool, error)
	PutSummary(ctx context.Context, key, model, summary string) error
}

// Cached wraps a summarizer with a persistent store keyed by model and
// input text. Cache errors are reported on Warn and otherwise ignored.
type Cached struct {
	Next  Summarizer
	Store Store
	Model string
	Warn  io.Writer
}

// Summarize implements Summarizer.
func (c Cached) Summarize(ctx context.Context, text string) (string, error) {
	key := cache.SummaryKey(c.Model, text)
	if out, ok, err := c.Store.Summary(ctx, key); err != nil {
		c.warn("reading summary cache: %v", err)
	} else if ok {
		return out, nil
	}

	out, err := c.Next.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	if out == InsufficientText || out == NotAvailable {
		return out, nil
	}
	if err := c.Store.PutSummary(ctx, key, c.Model, out); err != nil {
		c.warn("writing summary cache: %v", err)
	}
	return out, nil
}

func (c Cached) warn(format string, args ...any) {
	if c.Warn != nil {
		fmt.Fprintf(c.Warn, "warning: "+format+"\n", args...)
	}
}
