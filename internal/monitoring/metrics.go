// Package monitoring exposes Prometheus metrics for the research service and
// runs a background checker that alerts when sessions fail or spend too much.
package monitoring

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ammar944/AI-GOS-sub011/internal/extract"
)

// Research request modes.
const (
	ModeScraped    = "scraped"
	ModeSearchOnly = "search_only"
	ModeRejected   = "rejected"
)

// Window accumulates session and page outcomes between two checks.
type Window struct {
	Sessions    int
	Resolved    int
	Errored     int
	Cancelled   int
	CostUSD     float64
	PagesOK     int
	PagesFailed int
}

// Metrics owns a private Prometheus registry with the service's collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	sessions     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	pages        *prometheus.CounterVec
	tokens       *prometheus.CounterVec
	cost         prometheus.Counter
	storeUp      prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	mu     sync.Mutex
	window Window
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aigos_research_requests_total",
			Help: "Research requests by prompt mode.",
		}, []string{"mode"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aigos_research_sessions_total",
			Help: "Structured stream sessions by terminal state.",
		}, []string{"state"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aigos_research_session_seconds",
			Help:    "Structured stream session duration by terminal state.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90, 120},
		}, []string{"state"}),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aigos_scrape_pages_total",
			Help: "Candidate pages fetched, by winning scraper and result.",
		}, []string{"source", "result"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aigos_llm_tokens_total",
			Help: "Model tokens consumed by kind.",
		}, []string{"kind"}),
		cost: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aigos_llm_cost_usd_total",
			Help: "Estimated model spend in USD.",
		}),
		storeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aigos_store_up",
			Help: "1 when the last store ping succeeded.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aigos_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aigos_http_request_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.sessions, m.duration, m.pages, m.tokens, m.cost,
		m.storeUp, m.httpRequests, m.httpDuration,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest counts one research request.
func (m *Metrics) ObserveRequest(mode string) {
	m.requests.WithLabelValues(mode).Inc()
}

// ObservePage matches scrape.PageObserver.
func (m *Metrics) ObservePage(source string, success bool) {
	result := "ok"
	if !success {
		result = "failed"
		source = "none"
	}
	m.pages.WithLabelValues(source, result).Inc()

	m.mu.Lock()
	if success {
		m.window.PagesOK++
	} else {
		m.window.PagesFailed++
	}
	m.mu.Unlock()
}

// ObserveSession records a terminal stream outcome. It is passed to
// extract.WithOutcomeObserver.
func (m *Metrics) ObserveSession(o extract.Outcome) {
	state := string(o.State)
	m.sessions.WithLabelValues(state).Inc()
	m.duration.WithLabelValues(state).Observe(o.Duration.Seconds())
	m.tokens.WithLabelValues("input").Add(float64(o.Usage.InputTokens))
	m.tokens.WithLabelValues("output").Add(float64(o.Usage.OutputTokens))
	m.tokens.WithLabelValues("cache_read").Add(float64(o.Usage.CacheReadTokens))
	m.tokens.WithLabelValues("cache_write").Add(float64(o.Usage.CacheCreationTokens))
	if o.Usage.Cost > 0 {
		m.cost.Add(o.Usage.Cost)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.window.Sessions++
	m.window.CostUSD += o.Usage.Cost
	switch o.State {
	case extract.StateResolved:
		m.window.Resolved++
	case extract.StateErrored:
		m.window.Errored++
	case extract.StateCancelled:
		m.window.Cancelled++
	}
}

// ObserveHTTP records one served request. route is the router pattern, not
// the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SetStoreUp records the latest store health.
func (m *Metrics) SetStoreUp(up bool) {
	if up {
		m.storeUp.Set(1)
		return
	}
	m.storeUp.Set(0)
}

// Drain returns the outcomes accumulated since the previous Drain and
// starts a new window.
func (m *Metrics) Drain() Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := m.window
	m.window = Window{}
	return w
}
