package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
	scrapemocks "github.com/ammar944/AI-GOS-sub011/internal/scrape/mocks"
)

func TestCandidateURLs(t *testing.T) {
	urls := CandidateURLs("https://stripe.com", DefaultFetchOptions().Paths)
	assert.Equal(t, []string{
		"https://stripe.com",
		"https://stripe.com/about",
		"https://stripe.com/about-us",
		"https://stripe.com/pricing",
		"https://stripe.com/features",
		"https://stripe.com/products",
		"https://stripe.com/customers",
		"https://stripe.com/case-studies",
	}, urls)
}

func TestCandidateURLs_Dedup(t *testing.T) {
	urls := CandidateURLs("https://acme.com/about", []string{"", "/about", "/about/", "/pricing"})
	assert.Equal(t, []string{"https://acme.com/about", "https://acme.com/pricing"}, urls)

	assert.Nil(t, CandidateURLs("not a url", []string{""}))
}

func TestFetch_UnavailableScraperNeverFetches(t *testing.T) {
	scraper := scrapemocks.NewMockBatchScraper(t)
	scraper.EXPECT().IsAvailable().Return(false)

	res := NewContentFetcher(scraper, FetchOptions{}).Fetch(context.Background(), "https://stripe.com")
	assert.False(t, res.Available)
	assert.True(t, res.Empty())
	scraper.AssertNotCalled(t, "BatchScrape", mock.Anything, mock.Anything, mock.Anything)
}

func TestFetch_NilScraper(t *testing.T) {
	res := NewContentFetcher(nil, FetchOptions{}).Fetch(context.Background(), "https://stripe.com")
	assert.False(t, res.Available)
	assert.True(t, res.Empty())
}

func okPage(url, md string) model.ScrapeResult {
	return model.ScrapeResult{Success: true, URL: url, Markdown: md}
}

func TestFetch_AggregatesInCandidateOrder(t *testing.T) {
	scraper := scrapemocks.NewMockBatchScraper(t)
	scraper.EXPECT().IsAvailable().Return(true)
	scraper.EXPECT().BatchScrape(mock.Anything, mock.MatchedBy(func(urls []string) bool { return len(urls) == 8 }), 15*time.Second).
		Return(model.BatchScrapeResult{
			Results: map[string]model.ScrapeResult{
				"https://acme.com/pricing":   okPage("https://acme.com/pricing", "Plans from $10"),
				"https://acme.com":           {Success: true, URL: "https://acme.com", Title: "Acme", Markdown: "# Acme\nWe build anvils."},
				"https://acme.com/about":     {Success: false, Error: "404"},
				"https://acme.com/customers": okPage("", "   "),
			},
			SuccessCount: 3,
			FailureCount: 5,
		})

	res := NewContentFetcher(scraper, FetchOptions{}).Fetch(context.Background(), "https://acme.com")
	assert.True(t, res.Available)
	assert.Equal(t, 3, res.SuccessCount)
	assert.Equal(t, 5, res.FailureCount)
	require.Len(t, res.Pages, 2)
	assert.Equal(t, "https://acme.com", res.Pages[0].URL)
	assert.Equal(t, "https://acme.com/pricing", res.Pages[1].URL)

	home := strings.Index(res.Content, "We build anvils.")
	pricing := strings.Index(res.Content, "Plans from $10")
	assert.True(t, home >= 0 && pricing > home)
	assert.Contains(t, res.Content, "### Source: https://acme.com (Acme)\n")
	assert.NotContains(t, res.Content, "/about")
}

func TestFetch_EnforcesBudgets(t *testing.T) {
	opts := DefaultFetchOptions()
	urls := CandidateURLs("https://big.com", opts.Paths)
	results := map[string]model.ScrapeResult{}
	for _, u := range urls {
		// Multi-byte text so byte and character counts differ.
		results[u] = okPage(u, strings.Repeat("é", 10000))
	}

	scraper := scrapemocks.NewMockBatchScraper(t)
	scraper.EXPECT().IsAvailable().Return(true)
	scraper.EXPECT().BatchScrape(mock.Anything, urls, opts.PageTimeout).
		Return(model.BatchScrapeResult{Results: results, SuccessCount: len(urls)})

	res := NewContentFetcher(scraper, opts).Fetch(context.Background(), "https://big.com")

	assert.LessOrEqual(t, utf8.RuneCountInString(res.Content), 15000)
	assert.Greater(t, utf8.RuneCountInString(res.Content), 14000)
	require.NotEmpty(t, res.Pages)
	for _, p := range res.Pages {
		assert.True(t, p.Truncated)
		assert.LessOrEqual(t, p.Chars, 3000)
	}
	// Each page's share of the block, header included, stays within the
	// per-page cap.
	for _, segment := range strings.Split(res.Content, pageSeparator) {
		assert.LessOrEqual(t, utf8.RuneCountInString(segment), 3000)
	}
	// Higher-priority paths win the budget.
	assert.Equal(t, "https://big.com", res.Pages[0].URL)
	assert.Len(t, res.Pages, 5)
}

func TestAggregate_TruncatesLastPageToRemainingBudget(t *testing.T) {
	urls := []string{"https://a.com", "https://a.com/about"}
	results := map[string]model.ScrapeResult{
		urls[0]: okPage(urls[0], strings.Repeat("a", 700)),
		urls[1]: okPage(urls[1], strings.Repeat("b", 700)),
	}

	content, pages := aggregate(urls, results, 1000, 1000)
	require.Len(t, pages, 2)
	assert.False(t, pages[0].Truncated)
	assert.True(t, pages[1].Truncated)
	assert.Equal(t, 1000, utf8.RuneCountInString(content))
}

func TestAggregate_SkipsPageThatDoesNotFit(t *testing.T) {
	urls := []string{"https://a.com", "https://a.com/about", "https://a.com/pricing"}
	results := map[string]model.ScrapeResult{
		urls[0]: okPage(urls[0], strings.Repeat("a", 800)),
		urls[1]: okPage(urls[1], strings.Repeat("b", 700)),
		urls[2]: okPage(urls[2], "Plans from $10/mo"),
	}

	content, pages := aggregate(urls, results, 1000, 1000)
	require.Len(t, pages, 2)
	assert.Equal(t, "https://a.com", pages[0].URL)
	assert.Equal(t, "https://a.com/pricing", pages[1].URL)
	assert.False(t, pages[1].Truncated)
	assert.NotContains(t, content, "bbb")
	assert.True(t, strings.HasSuffix(content, "Plans from $10/mo"))
	assert.LessOrEqual(t, utf8.RuneCountInString(content), 1000)
}

func TestAggregate_NormalizesToNFC(t *testing.T) {
	urls := []string{"https://a.com"}
	// "e" + combining acute accent composes to a single code point.
	results := map[string]model.ScrapeResult{urls[0]: okPage(urls[0], "Cafe\u0301")}

	content, pages := aggregate(urls, results, 3000, 15000)
	require.Len(t, pages, 1)
	assert.Equal(t, 4, pages[0].Chars)
	assert.True(t, strings.HasSuffix(content, "Caf\u00e9"))
}

func TestTruncateRunes(t *testing.T) {
	s, cut := truncateRunes("héllo", 2)
	assert.Equal(t, "hé", s)
	assert.True(t, cut)

	s, cut = truncateRunes("hi", 5)
	assert.Equal(t, "hi", s)
	assert.False(t, cut)

	s, cut = truncateRunes("hi", 0)
	assert.Equal(t, "", s)
	assert.True(t, cut)
}
