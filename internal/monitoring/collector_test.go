package monitoring

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/internal/extract"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestCollector_Empty(t *testing.T) {
	c := NewCollector(NewMetrics(), nil)

	snap, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Sessions)
	assert.Zero(t, snap.SessionFailRate)
	assert.True(t, snap.StoreUp)
	assert.False(t, snap.CollectedAt.IsZero())
}

func TestCollector_SessionMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 3; i++ {
		m.ObserveSession(extract.Outcome{State: extract.StateResolved})
	}
	m.ObserveSession(extract.Outcome{State: extract.StateErrored})
	m.ObserveSession(extract.Outcome{State: extract.StateCancelled})
	m.ObservePage("jina", true)
	m.ObservePage("", false)

	snap, err := NewCollector(m, stubPinger{}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Sessions)
	assert.Equal(t, 1, snap.SessionCanceled)
	assert.InDelta(t, 0.25, snap.SessionFailRate, 1e-9, "cancelled sessions are excluded")
	assert.InDelta(t, 0.5, snap.PageFailRate, 1e-9)
}

func TestCollector_WindowResets(t *testing.T) {
	m := NewMetrics()
	c := NewCollector(m, nil)
	m.ObserveSession(extract.Outcome{State: extract.StateErrored})

	first, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.SessionErrored)

	second, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second.SessionErrored)
}

func TestCollector_StoreDown(t *testing.T) {
	m := NewMetrics()
	snap, err := NewCollector(m, stubPinger{err: errors.New("connection refused")}).Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.StoreUp)
	assert.Equal(t, "connection refused", snap.StoreError)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.storeUp))
}
