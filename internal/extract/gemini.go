package extract

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/cost"
	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/pkg/gemini"
)

// GeminiStreamer runs completions as JSON-mode generations constrained by
// a response schema.
type GeminiStreamer struct {
	client  gemini.Client
	pricing *cost.Calculator
}

// NewGeminiStreamer creates a GeminiStreamer. A nil pricing uses
// cost.DefaultRates.
func NewGeminiStreamer(client gemini.Client, pricing *cost.Calculator) *GeminiStreamer {
	if pricing == nil {
		pricing = cost.NewCalculator(cost.DefaultRates())
	}
	return &GeminiStreamer{client: client, pricing: pricing}
}

// StreamObject implements ObjectStreamer.
func (g *GeminiStreamer) StreamObject(ctx context.Context, req ObjectRequest) (TextStream, error) {
	temp := req.Temperature
	stream, err := g.client.StreamJSON(ctx, gemini.JSONRequest{
		Model:           req.Model,
		System:          req.System,
		Prompt:          req.Prompt,
		Temperature:     &temp,
		MaxOutputTokens: int32(req.MaxOutputTokens),
		Schema:          req.Schema.GenaiSchema(),
	})
	if err != nil {
		return nil, eris.Wrap(err, "extract: gemini stream")
	}
	return &geminiText{JSONStream: stream, model: req.Model, pricing: g.pricing}, nil
}

type geminiText struct {
	gemini.JSONStream
	model   string
	pricing *cost.Calculator
}

func (t *geminiText) Usage() model.TokenUsage {
	u := t.JSONStream.Usage()
	usage := model.TokenUsage{
		InputTokens:     int(u.PromptTokens),
		OutputTokens:    int(u.OutputTokens),
		CacheReadTokens: int(u.CachedTokens),
	}
	usage.Cost = t.pricing.Completion(t.model, usage)
	zap.L().Info("cost attribution",
		zap.String("model", t.model),
		zap.String("phase", "extract"),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens),
		zap.Int("cache_read_tokens", usage.CacheReadTokens),
		zap.Float64("estimated_cost_usd", usage.Cost),
	)
	return usage
}

func (t *geminiText) Truncated() bool {
	return t.FinishReason() == "MAX_TOKENS"
}
