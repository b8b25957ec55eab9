// Package scrape fetches company web pages as markdown through a chain of
// scraping backends.
package scrape

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/resilience"
)

// PageObserver is notified once per URL with the winning scraper (or ""
// on failure).
type PageObserver func(source string, success bool)

// Chain tries scrapers in priority order, returning the first success.
// A Chain with no scrapers reports itself unavailable.
type Chain struct {
	scrapers       []Scraper
	maxConcurrency int
	retries        int
	observe        PageObserver
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithMaxConcurrency bounds parallel page fetches in BatchScrape.
func WithMaxConcurrency(n int) ChainOption {
	return func(c *Chain) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// WithPageRetries sets extra attempts per scraper for transient failures.
// Retries share the page timeout.
func WithPageRetries(n int) ChainOption {
	return func(c *Chain) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithPageObserver registers a per-URL outcome callback.
func WithPageObserver(fn PageObserver) ChainOption {
	return func(c *Chain) { c.observe = fn }
}

// NewChain creates a Chain. Nil scrapers are skipped so callers can pass
// optional backends directly.
func NewChain(scrapers []Scraper, opts ...ChainOption) *Chain {
	c := &Chain{maxConcurrency: 8}
	for _, s := range scrapers {
		if s != nil {
			c.scrapers = append(c.scrapers, s)
		}
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// IsAvailable reports whether any backend is configured.
func (c *Chain) IsAvailable() bool {
	return len(c.scrapers) > 0
}

// Names lists the configured backends in priority order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.scrapers))
	for i, s := range c.scrapers {
		names[i] = s.Name()
	}
	return names
}

// Scrape tries each scraper in order for a single URL. A result with no
// markdown counts as a failure.
func (c *Chain) Scrape(ctx context.Context, targetURL string) (*Result, error) {
	var lastErr error
	for _, s := range c.scrapers {
		if !s.Supports(targetURL) {
			continue
		}
		result, err := resilience.DoVal(ctx, resilience.PagePolicy(c.retries), func(ctx context.Context) (*Result, error) {
			return s.Scrape(ctx, targetURL)
		})
		if err == nil && result != nil && strings.TrimSpace(result.Markdown) != "" {
			return result, nil
		}
		if err == nil {
			err = eris.Errorf("%s: empty content", s.Name())
		}
		zap.L().Debug("scrape: scraper failed, trying next",
			zap.String("scraper", s.Name()),
			zap.String("url", targetURL),
			zap.Error(err),
		)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		return nil, eris.Wrap(lastErr, "scrape: all scrapers failed")
	}
	return nil, eris.Errorf("scrape: no suitable scraper for url: %s", targetURL)
}

// BatchScrape fetches urls in parallel, each under its own timeout. It never
// fails as a whole: every URL gets a ScrapeResult and failures are counted.
func (c *Chain) BatchScrape(ctx context.Context, urls []string, timeout time.Duration) model.BatchScrapeResult {
	out := model.BatchScrapeResult{Results: make(map[string]model.ScrapeResult, len(urls))}
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(c.maxConcurrency)

	for _, u := range urls {
		g.Go(func() error {
			pageCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				pageCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			sr := model.ScrapeResult{URL: u}
			result, err := c.Scrape(pageCtx, u)
			if err != nil {
				sr.Error = err.Error()
			} else {
				sr.Success = true
				sr.Markdown = result.Markdown
				sr.Title = result.Title
			}

			if c.observe != nil {
				source := ""
				if result != nil {
					source = result.Source
				}
				c.observe(source, sr.Success)
			}

			mu.Lock()
			out.Results[u] = sr
			if sr.Success {
				out.SuccessCount++
			} else {
				out.FailureCount++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Debug("scrape: batch complete",
		zap.Int("urls", len(urls)),
		zap.Int("succeeded", out.SuccessCount),
		zap.Int("failed", out.FailureCount),
	)
	return out
}
