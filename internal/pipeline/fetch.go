package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/scrape"
)

// FetchOptions bounds a content fetch.
type FetchOptions struct {
	Paths         []string
	PageTimeout   time.Duration
	MaxPageChars  int
	MaxTotalChars int
}

// DefaultFetchOptions returns the standard candidate paths and budgets.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		Paths:         []string{"", "/about", "/about-us", "/pricing", "/features", "/products", "/customers", "/case-studies"},
		PageTimeout:   15 * time.Second,
		MaxPageChars:  3000,
		MaxTotalChars: 15000,
	}
}

// FetchResult is the budgeted content gathered for one company.
type FetchResult struct {
	// Available is false when no scraping backend is configured; nothing
	// was fetched.
	Available    bool
	URLs         []string
	Pages        []model.PageContent
	Content      string
	SuccessCount int
	FailureCount int
}

// Empty reports whether no content was retained.
func (r *FetchResult) Empty() bool {
	return r == nil || strings.TrimSpace(r.Content) == ""
}

// ContentFetcher retrieves markdown for a company's candidate pages.
type ContentFetcher struct {
	scraper scrape.BatchScraper
	opts    FetchOptions
}

// NewContentFetcher creates a ContentFetcher. Zero option fields take
// defaults.
func NewContentFetcher(scraper scrape.BatchScraper, opts FetchOptions) *ContentFetcher {
	def := DefaultFetchOptions()
	if len(opts.Paths) == 0 {
		opts.Paths = def.Paths
	}
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = def.PageTimeout
	}
	if opts.MaxPageChars <= 0 {
		opts.MaxPageChars = def.MaxPageChars
	}
	if opts.MaxTotalChars <= 0 {
		opts.MaxTotalChars = def.MaxTotalChars
	}
	return &ContentFetcher{scraper: scraper, opts: opts}
}

// Fetch scrapes every candidate URL under baseURL and aggregates the
// successful pages in candidate order. Per-page failures are counted, not
// returned. An unavailable scraper yields an empty result immediately.
func (f *ContentFetcher) Fetch(ctx context.Context, baseURL string) *FetchResult {
	log := zap.L().With(zap.String("phase", "fetch"), zap.String("url", baseURL))

	if f.scraper == nil || !f.scraper.IsAvailable() {
		log.Info("fetch: scraper unavailable, continuing without site content")
		return &FetchResult{}
	}

	urls := CandidateURLs(baseURL, f.opts.Paths)
	start := time.Now()
	batch := f.scraper.BatchScrape(ctx, urls, f.opts.PageTimeout)

	res := &FetchResult{
		Available:    true,
		URLs:         urls,
		SuccessCount: batch.SuccessCount,
		FailureCount: batch.FailureCount,
	}
	res.Content, res.Pages = aggregate(urls, batch.Results, f.opts.MaxPageChars, f.opts.MaxTotalChars)

	log.Info("fetch: complete",
		zap.Int("candidates", len(urls)),
		zap.Int("succeeded", batch.SuccessCount),
		zap.Int("failed", batch.FailureCount),
		zap.Int("pages_retained", len(res.Pages)),
		zap.Int("chars", utf8.RuneCountInString(res.Content)),
		zap.Duration("duration", time.Since(start)),
	)
	return res
}

// CandidateURLs resolves paths against baseURL and drops duplicates. The
// empty path is baseURL itself; other paths hang off the site root.
func CandidateURLs(baseURL string, paths []string) []string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}
	origin := base.Scheme + "://" + base.Host

	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		raw := origin + p
		if p == "" {
			raw = baseURL
		}
		key := canonicalURL(raw)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, raw)
	}
	return out
}

func canonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}

// pageHeader introduces one page in the aggregated block.
func pageHeader(pageURL, title string) string {
	if title != "" {
		return fmt.Sprintf("### Source: %s (%s)\n", pageURL, title)
	}
	return fmt.Sprintf("### Source: %s\n", pageURL)
}

const pageSeparator = "\n\n"

// minPageBody is the smallest page tail worth keeping once the total
// budget is nearly spent.
const minPageBody = 200

// aggregate concatenates successful pages in urls order. Each page's
// segment (separator, header, and body) is capped at maxPage characters
// and the whole block at maxTotal; the tail of a page is cut to fit. A
// page that no longer fits is skipped and later pages are still tried.
// Characters are Unicode code points after NFC normalization.
func aggregate(urls []string, results map[string]model.ScrapeResult, maxPage, maxTotal int) (string, []model.PageContent) {
	var (
		b         strings.Builder
		pages     []model.PageContent
		remaining = maxTotal
	)
	for _, u := range urls {
		r, ok := results[u]
		if !ok || !r.Success {
			continue
		}
		body := norm.NFC.String(strings.TrimSpace(r.Markdown))
		if body == "" {
			continue
		}

		pageURL := r.URL
		if pageURL == "" {
			pageURL = u
		}
		prefix := pageHeader(pageURL, r.Title)
		if b.Len() > 0 {
			prefix = pageSeparator + prefix
		}

		budget := min(maxPage, remaining) - utf8.RuneCountInString(prefix)
		if budget < min(minPageBody, utf8.RuneCountInString(body)) {
			continue
		}
		kept, truncated := truncateRunes(body, budget)

		b.WriteString(prefix)
		b.WriteString(kept)
		remaining -= utf8.RuneCountInString(prefix) + utf8.RuneCountInString(kept)
		pages = append(pages, model.PageContent{
			URL:       pageURL,
			Title:     r.Title,
			Chars:     utf8.RuneCountInString(kept),
			Truncated: truncated,
		})
	}
	return b.String(), pages
}

// truncateRunes keeps the first n code points of s.
func truncateRunes(s string, n int) (string, bool) {
	if n <= 0 {
		return "", s != ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}
