package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/internal/resilience"
	"github.com/ammar944/AI-GOS-sub011/internal/scrape"
	scrapemocks "github.com/ammar944/AI-GOS-sub011/internal/scrape/mocks"
)

// funcScraper adapts a function into a Scraper for concurrency tests.
type funcScraper struct {
	name string
	fn   func(ctx context.Context, url string) (*scrape.Result, error)
}

func (f *funcScraper) Name() string           { return f.name }
func (f *funcScraper) Supports(_ string) bool { return true }
func (f *funcScraper) Scrape(ctx context.Context, url string) (*scrape.Result, error) {
	return f.fn(ctx, url)
}

func page(url, source, markdown string) *scrape.Result {
	return &scrape.Result{URL: url, Title: "Title", Markdown: markdown, StatusCode: 200, Source: source}
}

func TestChain_IsAvailable(t *testing.T) {
	assert.False(t, scrape.NewChain(nil).IsAvailable())
	assert.False(t, scrape.NewChain([]scrape.Scraper{nil, nil}).IsAvailable())

	s := scrapemocks.NewMockScraper(t)
	s.EXPECT().Name().Return("primary")
	c := scrape.NewChain([]scrape.Scraper{nil, s})
	assert.True(t, c.IsAvailable())
	assert.Equal(t, []string{"primary"}, c.Names())
}

func TestChain_Scrape_FirstSuccess(t *testing.T) {
	s1 := scrapemocks.NewMockScraper(t)
	s2 := scrapemocks.NewMockScraper(t)
	s1.EXPECT().Supports("https://acme.com").Return(true)
	s1.EXPECT().Scrape(mock.Anything, "https://acme.com").Return(page("https://acme.com", "primary", "# Acme"), nil)

	result, err := scrape.NewChain([]scrape.Scraper{s1, s2}).Scrape(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "primary", result.Source)
}

func TestChain_Scrape_FallbackOnError(t *testing.T) {
	s1 := scrapemocks.NewMockScraper(t)
	s2 := scrapemocks.NewMockScraper(t)
	s1.EXPECT().Supports(mock.Anything).Return(true)
	s1.EXPECT().Name().Return("primary").Maybe()
	s1.EXPECT().Scrape(mock.Anything, "https://acme.com").Return(nil, errors.New("blocked")).Once()
	s2.EXPECT().Supports(mock.Anything).Return(true)
	s2.EXPECT().Scrape(mock.Anything, "https://acme.com").Return(page("https://acme.com", "fallback", "# Acme"), nil)

	result, err := scrape.NewChain([]scrape.Scraper{s1, s2}).Scrape(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "fallback", result.Source)
}

func TestChain_Scrape_EmptyMarkdownFallsThrough(t *testing.T) {
	s1 := scrapemocks.NewMockScraper(t)
	s2 := scrapemocks.NewMockScraper(t)
	s1.EXPECT().Supports(mock.Anything).Return(true)
	s1.EXPECT().Name().Return("primary")
	s1.EXPECT().Scrape(mock.Anything, mock.Anything).Return(page("https://acme.com", "primary", "   "), nil)
	s2.EXPECT().Supports(mock.Anything).Return(true)
	s2.EXPECT().Scrape(mock.Anything, mock.Anything).Return(page("https://acme.com", "fallback", "content"), nil)

	result, err := scrape.NewChain([]scrape.Scraper{s1, s2}).Scrape(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "fallback", result.Source)
}

func TestChain_Scrape_AllFail(t *testing.T) {
	s1 := scrapemocks.NewMockScraper(t)
	s1.EXPECT().Supports(mock.Anything).Return(true)
	s1.EXPECT().Name().Return("primary")
	s1.EXPECT().Scrape(mock.Anything, mock.Anything).Return(nil, errors.New("nope"))

	_, err := scrape.NewChain([]scrape.Scraper{s1}).Scrape(context.Background(), "https://acme.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all scrapers failed")
}

func TestChain_Scrape_NoSupportingScraper(t *testing.T) {
	s1 := scrapemocks.NewMockScraper(t)
	s1.EXPECT().Supports(mock.Anything).Return(false)

	_, err := scrape.NewChain([]scrape.Scraper{s1}).Scrape(context.Background(), "https://acme.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suitable scraper")
}

func TestChain_Scrape_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	s := &funcScraper{name: "flaky", fn: func(_ context.Context, url string) (*scrape.Result, error) {
		if calls.Add(1) == 1 {
			return nil, resilience.NewTransientError(errors.New("503"), 503)
		}
		return page(url, "flaky", "ok"), nil
	}}

	result, err := scrape.NewChain([]scrape.Scraper{s}, scrape.WithPageRetries(1)).Scrape(context.Background(), "https://acme.com")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Markdown)
	assert.Equal(t, int32(2), calls.Load())
}

func TestChain_BatchScrape_CountsAndIsolatesFailures(t *testing.T) {
	s := &funcScraper{name: "fake", fn: func(_ context.Context, url string) (*scrape.Result, error) {
		if url == "https://acme.com/pricing" {
			return nil, errors.New("404")
		}
		return page(url, "fake", "content for "+url), nil
	}}

	var mu sync.Mutex
	observed := map[bool]int{}
	c := scrape.NewChain([]scrape.Scraper{s}, scrape.WithPageObserver(func(_ string, ok bool) {
		mu.Lock()
		observed[ok]++
		mu.Unlock()
	}))

	urls := []string{"https://acme.com", "https://acme.com/about", "https://acme.com/pricing"}
	res := c.BatchScrape(context.Background(), urls, time.Second)

	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results["https://acme.com/about"].Success)
	assert.Equal(t, "content for https://acme.com/about", res.Results["https://acme.com/about"].Markdown)
	assert.False(t, res.Results["https://acme.com/pricing"].Success)
	assert.NotEmpty(t, res.Results["https://acme.com/pricing"].Error)
	assert.Equal(t, map[bool]int{true: 2, false: 1}, observed)
}

func TestChain_BatchScrape_SlowPageTimesOutAlone(t *testing.T) {
	s := &funcScraper{name: "fake", fn: func(ctx context.Context, url string) (*scrape.Result, error) {
		if url == "https://acme.com/slow" {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return page(url, "fake", "fast"), nil
	}}

	start := time.Now()
	res := scrape.NewChain([]scrape.Scraper{s}).BatchScrape(context.Background(), []string{"https://acme.com", "https://acme.com/slow"}, 50*time.Millisecond)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	assert.False(t, res.Results["https://acme.com/slow"].Success)
}

func TestChain_BatchScrape_BoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	s := &funcScraper{name: "fake", fn: func(_ context.Context, url string) (*scrape.Result, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return page(url, "fake", "x"), nil
	}}

	urls := make([]string, 10)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://acme.com/p%d", i)
	}
	res := scrape.NewChain([]scrape.Scraper{s}, scrape.WithMaxConcurrency(3)).BatchScrape(context.Background(), urls, time.Second)

	assert.Equal(t, 10, res.SuccessCount)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}
