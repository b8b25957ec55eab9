package monitoring

import (
	"context"
	"time"
)

// MetricsSnapshot holds a point-in-time view of system health.
type MetricsSnapshot struct {
	// Session metrics since the previous snapshot.
	Sessions        int     `json:"sessions"`
	SessionResolved int     `json:"session_resolved"`
	SessionErrored  int     `json:"session_errored"`
	SessionCanceled int     `json:"session_cancelled"`
	SessionFailRate float64 `json:"session_fail_rate"`
	SessionCostUSD  float64 `json:"session_cost_usd"`

	// Scrape metrics since the previous snapshot.
	PagesScraped int     `json:"pages_scraped"`
	PagesFailed  int     `json:"pages_failed"`
	PageFailRate float64 `json:"page_fail_rate"`

	// Store health.
	StoreUp    bool   `json:"store_up"`
	StoreError string `json:"store_error,omitempty"`

	// Metadata.
	Window      time.Duration `json:"window"`
	CollectedAt time.Time     `json:"collected_at"`
}

// WindowSource yields the outcomes recorded since it was last drained.
type WindowSource interface {
	Drain() Window
}

// Pinger checks connectivity to a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Collector gathers metrics from the in-process window and the store.
type Collector struct {
	window  WindowSource
	store   Pinger
	metrics *Metrics
	last    time.Time
}

// NewCollector creates a new metrics collector. store may be nil when the
// process runs without persistence.
func NewCollector(metrics *Metrics, store Pinger) *Collector {
	return &Collector{window: metrics, store: store, metrics: metrics, last: time.Now().UTC()}
}

// Collect drains the current window and pings the store.
func (c *Collector) Collect(ctx context.Context) (*MetricsSnapshot, error) {
	now := time.Now().UTC()
	w := c.window.Drain()
	snap := &MetricsSnapshot{
		Sessions:        w.Sessions,
		SessionResolved: w.Resolved,
		SessionErrored:  w.Errored,
		SessionCanceled: w.Cancelled,
		SessionCostUSD:  w.CostUSD,
		PagesScraped:    w.PagesOK,
		PagesFailed:     w.PagesFailed,
		StoreUp:         true,
		Window:          now.Sub(c.last),
		CollectedAt:     now,
	}
	c.last = now

	// Cancelled sessions are user choices, not failures.
	if finished := w.Resolved + w.Errored; finished > 0 {
		snap.SessionFailRate = float64(w.Errored) / float64(finished)
	}
	if pages := w.PagesOK + w.PagesFailed; pages > 0 {
		snap.PageFailRate = float64(w.PagesFailed) / float64(pages)
	}

	if c.store != nil {
		if err := c.store.Ping(ctx); err != nil {
			snap.StoreUp = false
			snap.StoreError = err.Error()
		}
	}
	if c.metrics != nil {
		c.metrics.SetStoreUp(snap.StoreUp)
	}
	return snap, nil
}
