package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/extract"
	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/scrape"
)

// Options configures one Researcher.
type Options struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int64
	Fetch           FetchOptions
	// SearchTimeout bounds the search fallback. Zero disables the bound.
	SearchTimeout time.Duration
}

// Researcher runs the prefill flow for a single request. Build a new one
// per request; it holds no state across calls.
type Researcher struct {
	fetcher  *ContentFetcher
	searcher Searcher
	consumer *extract.Consumer
	opts     Options
}

// NewResearcher wires a Researcher. searcher may be nil.
func NewResearcher(scraper scrape.BatchScraper, searcher Searcher, streamer extract.ObjectStreamer, opts Options, consumerOpts ...extract.ConsumerOption) *Researcher {
	return &Researcher{
		fetcher:  NewContentFetcher(scraper, opts.Fetch),
		searcher: searcher,
		consumer: extract.NewConsumer(streamer, consumerOpts...),
		opts:     opts,
	}
}

// Run is a research call in flight.
type Run struct {
	Request    model.ResearchRequest
	Fetch      *FetchResult
	SearchOnly bool
	Session    *extract.Session
}

// FormData maps the session's latest partial onto the onboarding form.
func (r *Run) FormData() *model.OnboardingFormData {
	return MapToFormData(r.Session.Partial())
}

// Start validates req, gathers content, and starts the extraction stream.
// Only validation errors are returned; fetch and search problems degrade
// the prompt instead, and extraction failures surface on the session.
func (r *Researcher) Start(ctx context.Context, req model.ResearchRequest) (*Run, error) {
	req, err := ValidateRequest(req)
	if err != nil {
		return nil, err
	}
	log := zap.L().With(zap.String("phase", "research"), zap.String("url", req.WebsiteURL))

	fetched := r.fetcher.Fetch(ctx, req.WebsiteURL)
	in := PromptInput{
		WebsiteURL:     req.WebsiteURL,
		LinkedInURL:    req.LinkedInURL,
		ScrapedContent: fetched.Content,
	}
	if in.SearchOnly() {
		r.enrich(ctx, log, &in)
	}
	log.Info("research: starting extraction",
		zap.Bool("search_only", in.SearchOnly()),
		zap.Int("pages", len(fetched.Pages)),
	)

	session := r.consumer.Start(ctx, extract.ObjectRequest{
		Model:           r.opts.Model,
		Schema:          extract.ResearchSchema(),
		System:          SystemPrompt(),
		Prompt:          UserPrompt(in),
		Temperature:     r.opts.Temperature,
		MaxOutputTokens: r.opts.MaxOutputTokens,
	})
	return &Run{Request: req, Fetch: fetched, SearchOnly: in.SearchOnly(), Session: session}, nil
}

// enrich adds search findings to a search-only prompt. Failures are logged
// and ignored.
func (r *Researcher) enrich(ctx context.Context, log *zap.Logger, in *PromptInput) {
	if r.searcher == nil {
		return
	}
	if r.opts.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.SearchTimeout)
		defer cancel()
	}

	findings, err := r.searcher.Search(ctx, in.WebsiteURL)
	if err != nil {
		log.Warn("research: search fallback failed", zap.Error(err))
		return
	}
	if findings == nil {
		log.Warn("research: search fallback returned no findings")
		return
	}
	text, _ := truncateRunes(findings.Text, r.fetcher.opts.MaxTotalChars)
	in.SearchFindings = text
	in.SearchCitations = findings.Citations
	log.Debug("research: search findings added",
		zap.String("provider", findings.Provider),
		zap.Int("citations", len(findings.Citations)),
	)
}
