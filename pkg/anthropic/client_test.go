package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient("test-key", WithBaseURL(ts.URL), WithMaxRetries(0))
}

func TestCreateMessage(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/messages")
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"id":          "msg_001",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": "Hello "}, {"type": "text", "text": "there"}},
			"model":       "claude-sonnet-4-5-20250929",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 5, "cache_read_input_tokens": 100},
		})
	})

	temp := 0.2
	resp, err := c.CreateMessage(context.Background(), MessageRequest{
		Model:       "claude-sonnet-4-5-20250929",
		MaxTokens:   256,
		System:      CachedSystem("be brief"),
		Messages:    []Message{{Role: "user", Content: "Hi"}, {Role: "assistant", Content: "Hey"}, {Role: "user", Content: "Again"}},
		Temperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_001", resp.ID)
	assert.Equal(t, "end_turn", resp.StopReason)
	assert.Equal(t, "Hello there", resp.Text())
	assert.Equal(t, int64(100), resp.Usage.CacheReadInputTokens)

	assert.InDelta(t, 0.2, body["temperature"], 1e-9)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 3)
	assert.Equal(t, "assistant", msgs[1].(map[string]any)["role"])
	system := body["system"].([]any)
	require.Len(t, system, 1)
	assert.Equal(t, "be brief", system[0].(map[string]any)["text"])
	assert.NotNil(t, system[0].(map[string]any)["cache_control"])
}

func TestCreateMessage_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	})

	_, err := c.CreateMessage(context.Background(), MessageRequest{
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 16,
		Messages:  []Message{{Role: "user", Content: "Hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic: create message")
}

// sseEvents renders Anthropic stream events as a text/event-stream body.
func sseEvents(events ...string) string {
	var b strings.Builder
	for _, ev := range events {
		var head struct {
			Type string `json:"type"`
		}
		_ = json.Unmarshal([]byte(ev), &head)
		fmt.Fprintf(&b, "event: %s\ndata: %s\n\n", head.Type, ev)
	}
	return b.String()
}

func toolStreamBody(fragments ...string) string {
	events := []string{
		`{"type":"message_start","message":{"id":"msg_1","type":"message","role":"assistant","content":[],"model":"claude-sonnet-4-5-20250929","stop_reason":null,"stop_sequence":null,"usage":{"input_tokens":420,"output_tokens":1,"cache_read_input_tokens":300}}}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"tool_use","id":"toolu_1","name":"record","input":{}}}`,
	}
	for _, f := range fragments {
		frag, _ := json.Marshal(f)
		events = append(events, fmt.Sprintf(`{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":%s}}`, frag))
	}
	events = append(events,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"message_delta","delta":{"stop_reason":"tool_use","stop_sequence":null},"usage":{"output_tokens":57}}`,
		`{"type":"message_stop"}`,
	)
	return sseEvents(events...)
}

func TestStreamTool(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, toolStreamBody(`{"companyName": {"val`, `ue": "Acme", "confidence": "high"`, `, "source": "https://acme.com"}}`)) //nolint:errcheck
	})

	s, err := c.StreamTool(context.Background(), ToolRequest{
		MessageRequest: MessageRequest{
			Model:     "claude-sonnet-4-5-20250929",
			MaxTokens: 4096,
			Messages:  []Message{{Role: "user", Content: "Research acme.com"}},
		},
		Tool: Tool{
			Name:        "record",
			Description: "Record findings",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{"companyName": map[string]any{"type": "object"}},
				"required":   []string{"companyName"},
			},
		},
	})
	require.NoError(t, err)
	defer s.Close()

	var chunks []string
	for s.Next() {
		chunks = append(chunks, s.Chunk())
	}
	require.NoError(t, s.Err())

	assert.Len(t, chunks, 3)
	assert.JSONEq(t, `{"companyName":{"value":"Acme","confidence":"high","source":"https://acme.com"}}`, strings.Join(chunks, ""))
	assert.Equal(t, "tool_use", s.StopReason())
	assert.Equal(t, int64(420), s.Usage().InputTokens)
	assert.Equal(t, int64(57), s.Usage().OutputTokens)
	assert.Equal(t, int64(300), s.Usage().CacheReadInputTokens)

	assert.Equal(t, true, body["stream"])
	choice := body["tool_choice"].(map[string]any)
	assert.Equal(t, "tool", choice["type"])
	assert.Equal(t, "record", choice["name"])
	tools := body["tools"].([]any)
	require.Len(t, tools, 1)
	schema := tools[0].(map[string]any)["input_schema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"companyName"}, schema["required"])
}

func TestStreamTool_RequiresToolName(t *testing.T) {
	c := NewClient("k")
	_, err := c.StreamTool(context.Background(), ToolRequest{})
	require.Error(t, err)
}

func TestStreamTool_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})

	s, err := c.StreamTool(context.Background(), ToolRequest{
		MessageRequest: MessageRequest{Model: "claude-sonnet-4-5-20250929", MaxTokens: 16, Messages: []Message{{Role: "user", Content: "x"}}},
		Tool:           Tool{Name: "record", InputSchema: map[string]any{"properties": map[string]any{}}},
	})
	if err == nil {
		// Some SDK versions surface the status on the first Next.
		assert.False(t, s.Next())
		err = s.Err()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestStreamTool_MidStreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseEvents( //nolint:errcheck
			`{"type":"message_start","message":{"id":"msg_1","type":"message","role":"assistant","content":[],"model":"m","usage":{"input_tokens":1,"output_tokens":1}}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":"{\"companyName\":"}}`,
			`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
		))
	})

	s, err := c.StreamTool(context.Background(), ToolRequest{
		MessageRequest: MessageRequest{Model: "m", MaxTokens: 16, Messages: []Message{{Role: "user", Content: "x"}}},
		Tool:           Tool{Name: "record", InputSchema: map[string]any{"properties": map[string]any{}}},
	})
	require.NoError(t, err)

	require.True(t, s.Next())
	assert.Equal(t, `{"companyName":`, s.Chunk())
	assert.False(t, s.Next())
	require.Error(t, s.Err())
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name  string
		model string
		usage TokenUsage
		want  float64
	}{
		{"sonnet", "claude-sonnet-4-5-20250929", TokenUsage{InputTokens: 1_000_000, OutputTokens: 1_000_000}, 18.00},
		{"haiku", "claude-haiku-4-5-20251001", TokenUsage{InputTokens: 1_000_000}, 1.00},
		{"cache", "claude-sonnet-4-5-20250929", TokenUsage{CacheCreationInputTokens: 1_000_000, CacheReadInputTokens: 1_000_000}, 3.75 + 0.30},
		{"unknown model", "gpt-4", TokenUsage{InputTokens: 1000}, 0},
		{"zero", "claude-sonnet-4-5-20250929", TokenUsage{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.usage.EstimateCost(tt.model), 1e-9)
		})
	}
}

func TestLogCost_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		TokenUsage{InputTokens: 10, OutputTokens: 5}.LogCost("claude-sonnet-4-5-20250929", "research")
	})
}

func TestCachedSystem(t *testing.T) {
	blocks := CachedSystem("rules")
	require.Len(t, blocks, 1)
	assert.Equal(t, "rules", blocks[0].Text)
	require.NotNil(t, blocks[0].CacheControl)
	assert.Equal(t, "5m", blocks[0].CacheControl.TTL)
}
