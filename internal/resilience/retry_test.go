package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestDo_SuccessFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), DefaultPolicy(), func(_ context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransient(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func(_ context.Context) error {
		calls++
		if calls < 3 {
			return NewTransientError(errors.New("busy"), 503)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpAfterAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(2), func(_ context.Context) error {
		calls++
		return NewTransientError(errors.New("still busy"), 500)
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), func(_ context.Context) error {
		calls++
		return errors.New("bad request")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{Attempts: 10, BaseDelay: 20 * time.Millisecond}

	calls := 0
	err := Do(ctx, p, func(_ context.Context) error {
		calls++
		if calls == 2 {
			cancel()
		}
		return NewTransientError(errors.New("fail"), 500)
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_CustomRetryable(t *testing.T) {
	p := fastPolicy(3)
	p.Retryable = func(err error) bool { return err.Error() == "again" }

	calls := 0
	err := Do(context.Background(), p, func(_ context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("again")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_OnRetryHook(t *testing.T) {
	p := fastPolicy(3)
	var seen []int
	p.OnRetry = func(attempt int, _ error) { seen = append(seen, attempt) }

	_ = Do(context.Background(), p, func(_ context.Context) error {
		return NewTransientError(errors.New("fail"), 502)
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestDoVal(t *testing.T) {
	t.Run("value after retry", func(t *testing.T) {
		calls := 0
		v, err := DoVal(context.Background(), fastPolicy(3), func(_ context.Context) (string, error) {
			calls++
			if calls == 1 {
				return "", NewTransientError(errors.New("fail"), 429)
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	})

	t.Run("zero value on failure", func(t *testing.T) {
		v, err := DoVal(context.Background(), fastPolicy(2), func(_ context.Context) (int, error) {
			return 42, NewTransientError(errors.New("fail"), 500)
		})
		require.Error(t, err)
		assert.Zero(t, v)
	})
}

func TestPagePolicy(t *testing.T) {
	p := PagePolicy(1)
	assert.Equal(t, 2, p.Attempts)
	assert.LessOrEqual(t, p.MaxDelay, 2*time.Second)

	calls := 0
	_ = Do(context.Background(), Policy{Attempts: PagePolicy(0).Attempts, BaseDelay: time.Millisecond}, func(_ context.Context) error {
		calls++
		return NewTransientError(errors.New("fail"), 500)
	})
	assert.Equal(t, 1, calls)
}

func TestBackoff(t *testing.T) {
	p := Policy{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}.normalized()

	assert.Equal(t, 100*time.Millisecond, p.backoff(1))
	assert.Equal(t, 200*time.Millisecond, p.backoff(2))
	assert.Equal(t, 300*time.Millisecond, p.backoff(3))
	assert.Equal(t, 300*time.Millisecond, p.backoff(10))

	p.Jitter = 0.5
	for i := 0; i < 50; i++ {
		d := p.backoff(1)
		assert.GreaterOrEqual(t, d, 50*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}
}
