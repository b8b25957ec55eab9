// Package extract runs a single schema-constrained model completion and
// turns its incremental JSON output into a stream of partial research
// documents.
package extract

import (
	"context"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// ObjectRequest is one schema-constrained completion.
type ObjectRequest struct {
	Model           string
	Schema          *Schema
	System          string
	Prompt          string
	Temperature     float64
	MaxOutputTokens int64
}

// TextStream yields the raw JSON text of a completion in fragments.
type TextStream interface {
	Next() bool
	Chunk() string
	// Usage is valid once Next has returned false.
	Usage() model.TokenUsage
	// Truncated reports whether generation stopped at the output token
	// limit. Valid once Next has returned false.
	Truncated() bool
	Err() error
	Close() error
}

// ObjectStreamer starts a schema-constrained completion.
type ObjectStreamer interface {
	StreamObject(ctx context.Context, req ObjectRequest) (TextStream, error)
}

// EventType tags an Event.
type EventType string

const (
	EventDelta EventType = "delta"
	EventError EventType = "error"
	EventDone  EventType = "done"
)

// Event is one step of a research stream. Exactly one payload is set,
// matching Type: Partial for deltas, Err for errors, Object and Usage for
// done.
type Event struct {
	Type    EventType
	Partial *model.CompanyResearchOutput
	Err     error
	Object  *model.CompanyResearchOutput
	Usage   model.TokenUsage
}
