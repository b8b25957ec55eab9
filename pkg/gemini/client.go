// Package gemini wraps the Google genai SDK for schema-constrained JSON
// streaming.
package gemini

import (
	"context"
	"iter"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"
)

// Client streams JSON documents from Gemini.
type Client interface {
	StreamJSON(ctx context.Context, req JSONRequest) (JSONStream, error)
}

// JSONRequest asks for a single JSON object conforming to Schema.
type JSONRequest struct {
	Model           string
	System          string
	Prompt          string
	Temperature     *float64
	MaxOutputTokens int32
	Schema          *genai.Schema
}

// Usage reports token consumption for one call.
type Usage struct {
	PromptTokens int32
	OutputTokens int32
	CachedTokens int32
}

// JSONStream yields text fragments of the JSON answer. The concatenation of
// every Chunk is the complete document.
type JSONStream interface {
	Next() bool
	Chunk() string
	// Usage is valid once Next has returned false.
	Usage() Usage
	FinishReason() string
	Err() error
	Close() error
}

// Option configures the client.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return func(c *genai.ClientConfig) {
		if url != "" {
			c.HTTPOptions.BaseURL = url
		}
	}
}

type sdkClient struct {
	cli *genai.Client
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (Client, error) {
	cfg := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	for _, o := range opts {
		o(cfg)
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: new client")
	}
	return &sdkClient{cli: cli}, nil
}

func (c *sdkClient) StreamJSON(ctx context.Context, req JSONRequest) (JSONStream, error) {
	if req.Model == "" {
		return nil, eris.New("gemini: stream json: model is required")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = req.MaxOutputTokens
	}

	seq := c.cli.Models.GenerateContentStream(ctx, req.Model, genai.Text(req.Prompt), cfg)
	next, stop := iter.Pull2(seq)
	return &sdkJSONStream{next: next, stop: stop}, nil
}

type sdkJSONStream struct {
	next   func() (*genai.GenerateContentResponse, error, bool)
	stop   func()
	chunk  string
	usage  Usage
	finish string
	err    error
	done   bool
}

func (s *sdkJSONStream) Next() bool {
	for !s.done {
		resp, err, ok := s.next()
		if !ok {
			s.done = true
			break
		}
		if err != nil {
			s.err = eris.Wrap(err, "gemini: json stream")
			s.done = true
			break
		}
		if resp == nil {
			continue
		}
		if u := resp.UsageMetadata; u != nil {
			s.usage = Usage{
				PromptTokens: u.PromptTokenCount,
				OutputTokens: u.CandidatesTokenCount,
				CachedTokens: u.CachedContentTokenCount,
			}
		}
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			s.finish = string(resp.Candidates[0].FinishReason)
		}
		if text := resp.Text(); text != "" {
			s.chunk = text
			return true
		}
	}
	s.chunk = ""
	return false
}

func (s *sdkJSONStream) Chunk() string { return s.chunk }

func (s *sdkJSONStream) Usage() Usage { return s.usage }

func (s *sdkJSONStream) FinishReason() string { return s.finish }

func (s *sdkJSONStream) Err() error { return s.err }

func (s *sdkJSONStream) Close() error {
	s.stop()
	s.done = true
	return nil
}
