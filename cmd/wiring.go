package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/config"
	"github.com/ammar944/AI-GOS-sub011/internal/cost"
	"github.com/ammar944/AI-GOS-sub011/internal/extract"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
	"github.com/ammar944/AI-GOS-sub011/internal/scrape"
	"github.com/ammar944/AI-GOS-sub011/internal/store"
	anthropicpkg "github.com/ammar944/AI-GOS-sub011/pkg/anthropic"
	"github.com/ammar944/AI-GOS-sub011/pkg/firecrawl"
	"github.com/ammar944/AI-GOS-sub011/pkg/gemini"
	"github.com/ammar944/AI-GOS-sub011/pkg/jina"
	"github.com/ammar944/AI-GOS-sub011/pkg/perplexity"
)

// researchEnv holds the long-lived clients a research run is built from.
// The clients are safe to share; a Researcher is built per run.
type researchEnv struct {
	scraper  *scrape.Chain
	searcher pipeline.Searcher
	streamer extract.ObjectStreamer
	opts     pipeline.Options
	consumer []extract.ConsumerOption
}

// newResearcher builds a single-use Researcher.
func (e *researchEnv) newResearcher() *pipeline.Researcher {
	return pipeline.NewResearcher(e.scraper, e.searcher, e.streamer, e.opts, e.consumer...)
}

// hooks lets serve attach metrics to the scrape chain and the consumer.
type hooks struct {
	page    scrape.PageObserver
	outcome func(extract.Outcome)
}

func initResearch(ctx context.Context, c *config.Config, h hooks) (*researchEnv, error) {
	streamer, err := initStreamer(ctx, c)
	if err != nil {
		return nil, err
	}

	chainOpts := []scrape.ChainOption{
		scrape.WithMaxConcurrency(c.Research.MaxConcurrency),
		scrape.WithPageRetries(c.Research.PageRetries),
	}
	if h.page != nil {
		chainOpts = append(chainOpts, scrape.WithPageObserver(h.page))
	}
	env := &researchEnv{
		scraper:  scrape.NewChain(initScrapers(c), chainOpts...),
		searcher: initSearcher(c),
		streamer: streamer,
		opts: pipeline.Options{
			Model:           modelName(c),
			Temperature:     c.LLM.Temperature,
			MaxOutputTokens: c.LLM.MaxOutputTokens,
			Fetch: pipeline.FetchOptions{
				Paths:         c.Research.CandidatePaths,
				PageTimeout:   c.Research.PageTimeout(),
				MaxPageChars:  c.Research.MaxPageChars,
				MaxTotalChars: c.Research.MaxTotalChars,
			},
			SearchTimeout: c.Research.SearchTimeout(),
		},
	}
	if h.outcome != nil {
		env.consumer = append(env.consumer, extract.WithOutcomeObserver(h.outcome))
	}

	zap.L().Info("research backends ready",
		zap.Strings("scrapers", env.scraper.Names()),
		zap.Bool("search_fallback", env.searcher != nil),
		zap.String("llm_provider", c.LLM.Provider),
		zap.String("model", env.opts.Model),
	)
	return env, nil
}

// initScrapers returns the configured backends in priority order:
// Firecrawl, then Jina Reader, then direct HTTP.
func initScrapers(c *config.Config) []scrape.Scraper {
	var scrapers []scrape.Scraper
	if c.Firecrawl.Key != "" {
		fc := firecrawl.NewClient(c.Firecrawl.Key, firecrawl.WithBaseURL(c.Firecrawl.BaseURL))
		scrapers = append(scrapers, scrape.NewFirecrawlAdapter(fc))
	}
	if c.Jina.Key != "" {
		scrapers = append(scrapers, scrape.NewJinaAdapter(newJinaClient(c)))
	}
	if c.Research.LocalScrape {
		scrapers = append(scrapers, scrape.NewLocalScraper())
	}
	return scrapers
}

// initSearcher prefers Perplexity, then Jina search. Nil disables the
// search fallback.
func initSearcher(c *config.Config) pipeline.Searcher {
	if !c.Research.SearchFallback {
		return nil
	}
	switch {
	case c.Perplexity.Key != "":
		pc := perplexity.NewClient(c.Perplexity.Key,
			perplexity.WithBaseURL(c.Perplexity.BaseURL),
			perplexity.WithModel(c.Perplexity.Model),
		)
		return pipeline.NewPerplexitySearcher(pc, c.Perplexity.Model)
	case c.Jina.Key != "":
		return pipeline.NewJinaSearcher(newJinaClient(c), 5)
	default:
		return nil
	}
}

func newJinaClient(c *config.Config) jina.Client {
	opts := []jina.Option{jina.WithBaseURL(c.Jina.BaseURL)}
	if c.Jina.SearchBaseURL != "" {
		opts = append(opts, jina.WithSearchBaseURL(c.Jina.SearchBaseURL))
	}
	return jina.NewClient(c.Jina.Key, opts...)
}

func initStreamer(ctx context.Context, c *config.Config) (extract.ObjectStreamer, error) {
	switch c.LLM.Provider {
	case "anthropic":
		var opts []anthropicpkg.Option
		if c.Anthropic.BaseURL != "" {
			opts = append(opts, anthropicpkg.WithBaseURL(c.Anthropic.BaseURL))
		}
		return extract.NewAnthropicStreamer(anthropicpkg.NewClient(c.Anthropic.Key, opts...)), nil
	case "gemini":
		gc, err := gemini.NewClient(ctx, c.Gemini.Key)
		if err != nil {
			return nil, err
		}
		return extract.NewGeminiStreamer(gc, cost.NewCalculator(cost.DefaultRates())), nil
	default:
		return nil, eris.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}
}

func modelName(c *config.Config) string {
	if c.LLM.Provider == "gemini" {
		return c.Gemini.Model
	}
	return c.Anthropic.Model
}

func initStore(ctx context.Context, c *config.Config) (store.Store, error) {
	switch c.Store.Driver {
	case "sqlite":
		dsn := c.Store.DatabaseURL
		if dsn == "" {
			dsn = "aigos.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, c.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: c.Store.MaxConns,
			MinConns: c.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", c.Store.Driver)
	}
}
