package anthropic

import (
	"context"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/rotisserie/eris"
)

// Tool describes the single tool a ToolRequest forces the model to call.
// InputSchema is a JSON Schema object; its "properties" and "required"
// entries become the tool's input schema.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolRequest is a MessageRequest whose answer must be a call to Tool.
type ToolRequest struct {
	MessageRequest
	Tool Tool
}

// ToolStream yields the forced tool call's input JSON in fragments. The
// concatenation of every Chunk is the complete input document.
type ToolStream interface {
	// Next advances to the next fragment. It returns false at end of stream
	// or on error; check Err afterwards.
	Next() bool
	Chunk() string
	// Usage is valid once Next has returned false.
	Usage() TokenUsage
	StopReason() string
	Err() error
	Close() error
}

func (c *sdkClient) StreamTool(ctx context.Context, req ToolRequest) (ToolStream, error) {
	if req.Tool.Name == "" {
		return nil, eris.New("anthropic: stream tool: tool name is required")
	}

	params := toSDKParams(req.MessageRequest)
	params.Tools = []sdk.ToolUnionParam{{OfTool: toSDKTool(req.Tool)}}
	params.ToolChoice = sdk.ToolChoiceUnionParam{
		OfTool: &sdk.ToolChoiceToolParam{Name: req.Tool.Name},
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	if err := stream.Err(); err != nil {
		return nil, eris.Wrap(err, "anthropic: stream tool")
	}
	return &sdkToolStream{stream: stream}, nil
}

func toSDKTool(t Tool) *sdk.ToolParam {
	schema := sdk.ToolInputSchemaParam{Properties: t.InputSchema["properties"]}
	if req, ok := t.InputSchema["required"].([]string); ok {
		schema.Required = req
	}
	tp := &sdk.ToolParam{Name: t.Name, InputSchema: schema}
	if t.Description != "" {
		tp.Description = sdk.String(t.Description)
	}
	return tp
}

// sdkToolStream filters the SDK event stream down to input_json_delta
// fragments and records usage from message_start and message_delta.
type sdkToolStream struct {
	stream     *ssestream.Stream[sdk.MessageStreamEventUnion]
	chunk      string
	usage      TokenUsage
	stopReason string
}

func (s *sdkToolStream) Next() bool {
	for s.stream.Next() {
		ev := s.stream.Current()
		switch ev.Type {
		case "message_start":
			u := ev.Message.Usage
			s.usage.InputTokens = u.InputTokens
			s.usage.CacheCreationInputTokens = u.CacheCreationInputTokens
			s.usage.CacheReadInputTokens = u.CacheReadInputTokens
			s.usage.OutputTokens = u.OutputTokens
		case "content_block_delta":
			if ev.Delta.Type == "input_json_delta" && ev.Delta.PartialJSON != "" {
				s.chunk = ev.Delta.PartialJSON
				return true
			}
		case "message_delta":
			if ev.Delta.StopReason != "" {
				s.stopReason = string(ev.Delta.StopReason)
			}
			if ev.Usage.OutputTokens > 0 {
				s.usage.OutputTokens = ev.Usage.OutputTokens
			}
		}
	}
	s.chunk = ""
	return false
}

func (s *sdkToolStream) Chunk() string { return s.chunk }

func (s *sdkToolStream) Usage() TokenUsage { return s.usage }

func (s *sdkToolStream) StopReason() string { return s.stopReason }

func (s *sdkToolStream) Err() error {
	if err := s.stream.Err(); err != nil {
		return eris.Wrap(err, "anthropic: tool stream")
	}
	return nil
}

func (s *sdkToolStream) Close() error { return s.stream.Close() }
