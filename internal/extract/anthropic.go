package extract

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/pkg/anthropic"
)

// researchToolName is the tool the model is forced to call; its input is
// the research document.
const researchToolName = "record_company_research"

// AnthropicStreamer runs completions as a forced tool call whose input
// schema is the requested Schema.
type AnthropicStreamer struct {
	client anthropic.Client
}

// NewAnthropicStreamer creates an AnthropicStreamer.
func NewAnthropicStreamer(client anthropic.Client) *AnthropicStreamer {
	return &AnthropicStreamer{client: client}
}

// StreamObject implements ObjectStreamer.
func (a *AnthropicStreamer) StreamObject(ctx context.Context, req ObjectRequest) (TextStream, error) {
	temp := req.Temperature
	stream, err := a.client.StreamTool(ctx, anthropic.ToolRequest{
		MessageRequest: anthropic.MessageRequest{
			Model:       req.Model,
			MaxTokens:   req.MaxOutputTokens,
			System:      anthropic.CachedSystem(req.System),
			Messages:    []anthropic.Message{{Role: "user", Content: req.Prompt}},
			Temperature: &temp,
		},
		Tool: anthropic.Tool{
			Name:        researchToolName,
			Description: "Record the verified company research findings.",
			InputSchema: req.Schema.JSONSchema(),
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "extract: anthropic stream")
	}
	return &anthropicText{ToolStream: stream, model: req.Model}, nil
}

type anthropicText struct {
	anthropic.ToolStream
	model string
}

func (t *anthropicText) Usage() model.TokenUsage {
	u := t.ToolStream.Usage()
	u.LogCost(t.model, "extract")
	return model.TokenUsage{
		InputTokens:         int(u.InputTokens),
		OutputTokens:        int(u.OutputTokens),
		CacheCreationTokens: int(u.CacheCreationInputTokens),
		CacheReadTokens:     int(u.CacheReadInputTokens),
		Cost:                u.EstimateCost(t.model),
	}
}

func (t *anthropicText) Truncated() bool {
	return t.StopReason() == "max_tokens"
}
