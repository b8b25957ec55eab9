package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/config"
	"github.com/ammar944/AI-GOS-sub011/internal/extract"
)

func TestChecker_RunStopsOnCancel(t *testing.T) {
	m := NewMetrics()
	c := NewChecker(NewCollector(m, nil), NewAlerter(config.MonitoringConfig{}), config.MonitoringConfig{CheckIntervalSecs: 3600})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("checker did not stop")
	}
}

func TestChecker_DefaultInterval(t *testing.T) {
	c := NewChecker(nil, nil, config.MonitoringConfig{})
	assert.Equal(t, 5*time.Minute, c.interval)
}

func TestChecker_CheckSendsAlerts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var a Alert
		_ = json.NewDecoder(r.Body).Decode(&a)
		if a.Type == AlertSessionFailureRate {
			hits.Add(1)
		}
	}))
	defer srv.Close()

	cfg := config.MonitoringConfig{WebhookURL: srv.URL, FailureRateThreshold: 0.2, MinSessions: 2}
	m := NewMetrics()
	m.ObserveSession(extract.Outcome{State: extract.StateErrored})
	m.ObserveSession(extract.Outcome{State: extract.StateErrored})

	c := NewChecker(NewCollector(m, nil), NewAlerter(cfg), cfg)
	c.check(context.Background(), zap.NewNop())

	assert.Equal(t, int32(1), hits.Load())
}
