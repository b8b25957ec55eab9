package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/internal/resilience"
	"github.com/ammar944/AI-GOS-sub011/pkg/firecrawl"
)

// FirecrawlAdapter wraps a Firecrawl client as a Scraper for single-page scrapes.
type FirecrawlAdapter struct {
	client firecrawl.Client
}

// NewFirecrawlAdapter creates a FirecrawlAdapter from a Firecrawl client.
func NewFirecrawlAdapter(client firecrawl.Client) *FirecrawlAdapter {
	return &FirecrawlAdapter{client: client}
}

// Name implements Scraper.
func (f *FirecrawlAdapter) Name() string { return "firecrawl" }

// Supports implements Scraper. Firecrawl renders JavaScript, so it can
// attempt any URL.
func (f *FirecrawlAdapter) Supports(_ string) bool { return true }

// Scrape fetches a single URL via Firecrawl, passing the remaining context
// budget as the server-side timeout.
func (f *FirecrawlAdapter) Scrape(ctx context.Context, targetURL string) (*Result, error) {
	req := firecrawl.ScrapeRequest{
		URL:             targetURL,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
	}
	if deadline, ok := ctx.Deadline(); ok {
		req.Timeout = int(time.Until(deadline).Milliseconds())
	}

	resp, err := f.client.Scrape(ctx, req)
	if err != nil {
		var apiErr *firecrawl.APIError
		if errors.As(err, &apiErr) {
			return nil, resilience.MarkStatus(err, apiErr.StatusCode)
		}
		return nil, err
	}
	if !resp.Success {
		return nil, eris.Errorf("firecrawl: scrape not successful: %s", resp.Error)
	}
	if code := resp.Data.Metadata.StatusCode; code >= 400 {
		return nil, eris.Errorf("firecrawl: target returned status %d", code)
	}

	pageURL := resp.Data.Metadata.SourceURL
	if pageURL == "" {
		pageURL = targetURL
	}
	return &Result{
		URL:        pageURL,
		Title:      resp.Data.Metadata.Title,
		Markdown:   resp.Data.Markdown,
		StatusCode: resp.Data.Metadata.StatusCode,
		Source:     "firecrawl",
	}, nil
}
