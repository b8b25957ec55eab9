package extract

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// State is the lifecycle position of a Session.
type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
	StateStreaming State = "streaming"
	StateResolved  State = "resolved"
	StateErrored   State = "errored"
	StateCancelled State = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateResolved || s == StateErrored || s == StateCancelled
}

var transitions = map[State][]State{
	StateIdle:      {StateSubmitted, StateCancelled},
	StateSubmitted: {StateStreaming, StateErrored, StateCancelled},
	StateStreaming: {StateResolved, StateErrored, StateCancelled},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Outcome summarizes a finished session for observers.
type Outcome struct {
	State    State
	Usage    model.TokenUsage
	Duration time.Duration
	Err      error
}

// Consumer starts research completions against an ObjectStreamer.
type Consumer struct {
	streamer ObjectStreamer
	onFinish func(Outcome)
}

// ConsumerOption configures a Consumer.
type ConsumerOption func(*Consumer)

// WithOutcomeObserver registers a callback run once per session when it
// reaches a terminal state.
func WithOutcomeObserver(fn func(Outcome)) ConsumerOption {
	return func(c *Consumer) { c.onFinish = fn }
}

// NewConsumer creates a Consumer.
func NewConsumer(streamer ObjectStreamer, opts ...ConsumerOption) *Consumer {
	c := &Consumer{streamer: streamer}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start issues the completion and returns immediately. The session owns a
// child of ctx; cancelling ctx cancels the session.
func (c *Consumer) Start(ctx context.Context, req ObjectRequest) *Session {
	if req.Schema == nil {
		req.Schema = ResearchSchema()
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		state:   StateIdle,
		partial: &model.CompanyResearchOutput{},
		events:  make(chan Event, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	s.transition(StateSubmitted)
	go s.run(ctx, c, req)
	return s
}

// Session is one in-flight completion. All methods are safe for concurrent
// use.
//
// Events delivers deltas and the terminal event, then closes. Deltas
// coalesce: a slow reader receives the newest partial rather than every
// intermediate one. Cancel stops delivery without a terminal event.
type Session struct {
	mu      sync.Mutex
	state   State
	partial *model.CompanyResearchOutput
	final   *model.CompanyResearchOutput
	usage   model.TokenUsage
	err     error

	events chan Event
	done   chan struct{}
	cancel context.CancelFunc
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether the completion is still in flight.
func (s *Session) Loading() bool {
	st := s.State()
	return st == StateSubmitted || st == StateStreaming
}

// Partial returns a copy of the most recent partial document. It never
// blocks and never returns nil.
func (s *Session) Partial() *model.CompanyResearchOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partial.Clone()
}

// Err returns the terminal error once the session has errored.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Usage returns token usage once the session has resolved.
func (s *Session) Usage() model.TokenUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

// Events returns the event channel.
func (s *Session) Events() <-chan Event { return s.events }

// Done is closed when the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} { return s.done }

// Cancel stops the session. Partials already delivered stay valid. The
// upstream request is aborted on a best-effort basis.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.transitionLocked(StateCancelled) {
		s.cancel()
	}
	s.mu.Unlock()
}

// Wait blocks until the session is terminal and returns the final
// document. It returns ErrCancelled after Cancel.
func (s *Session) Wait() (*model.CompanyResearchOutput, error) {
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateResolved:
		return s.final.Clone(), nil
	case StateCancelled:
		return nil, ErrCancelled
	default:
		return nil, s.err
	}
}

func (s *Session) transition(to State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(to)
}

func (s *Session) transitionLocked(to State) bool {
	if s.state == to {
		return true
	}
	if !canTransition(s.state, to) {
		return false
	}
	s.state = to
	return true
}

// publishLocked hands ev to the reader without blocking, replacing an
// unread event if the buffer is full.
func (s *Session) publishLocked(ev Event) {
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}

func (s *Session) run(ctx context.Context, c *Consumer, req ObjectRequest) {
	start := time.Now()
	log := zap.L().With(zap.String("phase", "extract"), zap.String("model", req.Model))

	defer func() {
		s.mu.Lock()
		out := Outcome{State: s.state, Usage: s.usage, Duration: time.Since(start), Err: s.err}
		close(s.events)
		s.mu.Unlock()
		s.cancel()

		log.Info("extract: session finished",
			zap.String("state", string(out.State)),
			zap.Duration("duration", out.Duration),
			zap.Error(out.Err),
		)
		if c.onFinish != nil {
			c.onFinish(out)
		}
		close(s.done)
	}()

	stream, err := c.streamer.StreamObject(ctx, req)
	if err != nil {
		s.fail(ctx, &StreamError{Err: err})
		return
	}
	defer func() { _ = stream.Close() }()

	var raw strings.Builder
	acc := &model.CompanyResearchOutput{}
	for stream.Next() {
		if !s.transition(StateStreaming) {
			return
		}
		raw.WriteString(stream.Chunk())

		// Each chunk reparses the whole prefix; documents are a few KB.
		partial, ok := ParsePartial(raw.String())
		if !ok || !Merge(acc, partial) {
			continue
		}
		// Only sourced values are published, so finalization never has
		// to retract a value a reader already saw.
		view := evidenced(acc)
		s.mu.Lock()
		if s.state == StateStreaming && !sameOutput(s.partial, view) {
			s.partial = view
			s.publishLocked(Event{Type: EventDelta, Partial: view.Clone()})
		}
		s.mu.Unlock()
	}
	if err := stream.Err(); err != nil {
		s.fail(ctx, &StreamError{Err: err})
		return
	}
	if !s.transition(StateStreaming) {
		return
	}

	usage := stream.Usage()
	if stream.Truncated() {
		s.fail(ctx, &SchemaError{Reason: "completion stopped at the output token limit"})
		return
	}
	final, err := parseFinal(raw.String())
	if err != nil {
		log.Debug("extract: rejected completion", zap.Int("bytes", raw.Len()))
		s.fail(ctx, err)
		return
	}
	Merge(acc, final)
	enforceSources(acc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.transitionLocked(StateResolved) {
		return
	}
	s.final = acc
	s.partial = acc.Clone()
	s.usage = usage
	s.publishLocked(Event{Type: EventDone, Object: acc.Clone(), Usage: usage})
}

// fail records err as terminal, unless the session was cancelled either by
// Cancel or by the parent context.
func (s *Session) fail(ctx context.Context, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if errors.Is(ctx.Err(), context.Canceled) {
		s.transitionLocked(StateCancelled)
		return
	}
	if !s.transitionLocked(StateErrored) {
		return
	}
	s.err = err
	s.publishLocked(Event{Type: EventError, Err: err})
}
