package resilience

import (
	"context"
	"testing"
	"time"

	"pagecast/config"
	domainerrors "pagecast/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestBreaker(threshold int, openTimeout time.Duration) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker("test", &config.BreakerConfig{FailureThreshold: threshold, OpenTimeout: openTimeout})
	cb.now = clock.now

	return cb, clock
}

func failing(context.Context) error { return assert.AnError }
func succeeding(context.Context) error { return nil }

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3, time.Minute)
	ctx := context.Background()

	for range 2 {
		assert.ErrorIs(t, cb.Execute(ctx, failing), assert.AnError)
		assert.Equal(t, StateClosed, cb.State())
	}
	assert.ErrorIs(t, cb.Execute(ctx, failing), assert.AnError)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domainerrors.ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsCount(t *testing.T) {
	cb, _ := newTestBreaker(2, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.NoError(t, cb.Execute(ctx, succeeding))
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenTrialCall(t *testing.T) {
	cb, clock := newTestBreaker(1, 30*time.Second)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	clock.t = clock.t.Add(30 * time.Second)
	assert.Equal(t, StateHalfOpen, cb.State())

	// A failed trial call reopens the circuit.
	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	clock.t = clock.t.Add(30 * time.Second)
	assert.NoError(t, cb.Execute(ctx, succeeding))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OneTrialCallAtATime(t *testing.T) {
	cb, clock := newTestBreaker(1, time.Second)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	clock.t = clock.t.Add(time.Second)

	err := cb.Execute(ctx, func(ctx context.Context) error {
		// A concurrent caller is rejected while the trial call is in flight.
		assert.ErrorIs(t, cb.Execute(ctx, succeeding), domainerrors.ErrCircuitOpen)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_CallerCancellationIsNotAFailure(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cb.Execute(ctx, func(ctx context.Context) error { return ctx.Err() })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker("store", nil)

	assert.Equal(t, 5, cb.threshold)
	assert.Equal(t, 30*time.Second, cb.openTimeout)
	assert.Equal(t, "closed", cb.State().String())
}
