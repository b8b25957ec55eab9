package scrape

import (
	"context"
	"time"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// Result holds a scraped page with the scraper that produced it.
type Result struct {
	URL        string
	Title      string
	Markdown   string
	StatusCode int
	Source     string // e.g. "firecrawl", "jina", "local_http"
}

// Scraper fetches a single URL and returns its content as markdown.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Result, error)
	Name() string
	Supports(url string) bool
}

// BatchScraper is the batch scrape capability the content fetcher depends on.
// IsAvailable gates all use: when it reports false, callers must not call
// BatchScrape at all.
type BatchScraper interface {
	IsAvailable() bool
	BatchScrape(ctx context.Context, urls []string, timeout time.Duration) model.BatchScrapeResult
}
