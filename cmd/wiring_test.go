package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/internal/config"
	"github.com/ammar944/AI-GOS-sub011/internal/extract"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
)

func testConfig() *config.Config {
	return &config.Config{
		Store:     config.StoreConfig{Driver: "sqlite"},
		Anthropic: config.AnthropicConfig{Key: "sk-test", Model: "claude-test"},
		Gemini:    config.GeminiConfig{Model: "gemini-test"},
		LLM:       config.LLMConfig{Provider: "anthropic", Temperature: 0.3, MaxOutputTokens: 4096},
		Research: config.ResearchConfig{
			CandidatePaths:   config.DefaultCandidatePaths,
			PageTimeoutSecs:  15,
			MaxPageChars:     3000,
			MaxTotalChars:    15000,
			MaxConcurrency:   8,
			SearchFallback:   true,
			SearchTimeoutSec: 30,
		},
	}
}

func TestInitScrapers(t *testing.T) {
	c := testConfig()
	assert.Empty(t, initScrapers(c))

	c.Firecrawl.Key = "fc-test"
	c.Jina.Key = "jina-test"
	c.Research.LocalScrape = true
	var names []string
	for _, s := range initScrapers(c) {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"firecrawl", "jina", "local_http"}, names)
}

func TestInitSearcher(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantType any
	}{
		{"none configured", func(*config.Config) {}, nil},
		{"disabled", func(c *config.Config) {
			c.Perplexity.Key = "pplx"
			c.Research.SearchFallback = false
		}, nil},
		{"perplexity preferred", func(c *config.Config) {
			c.Perplexity.Key = "pplx"
			c.Jina.Key = "jina"
		}, &pipeline.PerplexitySearcher{}},
		{"jina fallback", func(c *config.Config) { c.Jina.Key = "jina" }, &pipeline.JinaSearcher{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig()
			tt.mutate(c)
			got := initSearcher(c)
			if tt.wantType == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.wantType, got)
		})
	}
}

func TestInitStreamer(t *testing.T) {
	c := testConfig()
	s, err := initStreamer(context.Background(), c)
	require.NoError(t, err)
	assert.IsType(t, &extract.AnthropicStreamer{}, s)
	assert.Equal(t, "claude-test", modelName(c))

	c.LLM.Provider = "gemini"
	assert.Equal(t, "gemini-test", modelName(c))

	c.LLM.Provider = "mistral"
	_, err = initStreamer(context.Background(), c)
	assert.ErrorContains(t, err, "unsupported llm provider")
}

func TestInitResearch_NoScrapers(t *testing.T) {
	var pages int
	env, err := initResearch(context.Background(), testConfig(), hooks{page: func(string, bool) { pages++ }})
	require.NoError(t, err)

	assert.False(t, env.scraper.IsAvailable())
	assert.Nil(t, env.searcher)
	assert.Equal(t, "claude-test", env.opts.Model)
	assert.Equal(t, config.DefaultCandidatePaths, env.opts.Fetch.Paths)
	assert.Equal(t, 3000, env.opts.Fetch.MaxPageChars)
	assert.Equal(t, 15000, env.opts.Fetch.MaxTotalChars)
	assert.NotNil(t, env.newResearcher())
	assert.Zero(t, pages)
}

func TestInitStore_SQLite(t *testing.T) {
	c := testConfig()
	c.Store.DatabaseURL = filepath.Join(t.TempDir(), "aigos.db")

	ctx := context.Background()
	st, err := initStore(ctx, c)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	require.NoError(t, st.Migrate(ctx))
	assert.NoError(t, st.Ping(ctx))
}

func TestInitStore_UnknownDriver(t *testing.T) {
	c := testConfig()
	c.Store.Driver = "mysql"
	_, err := initStore(context.Background(), c)
	assert.ErrorContains(t, err, "unsupported store driver")
}
