// Package resilience guards calls to external stores.
package resilience

import (
	"context"
	"sync"
	"time"

	"pagecast/config"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/errors"
)

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// CircuitBreaker fails fast after FailureThreshold consecutive failures and
// lets a single trial call through once OpenTimeout has elapsed. It is created once
// per process and shared by reference.
type CircuitBreaker struct {
	name        string
	threshold   int
	openTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// NewCircuitBreaker builds a breaker from the breaker config section.
func NewCircuitBreaker(name string, cfg *config.BreakerConfig) *CircuitBreaker {
	threshold, openTimeout := 5, 30*time.Second
	if cfg != nil {
		if cfg.FailureThreshold > 0 {
			threshold = cfg.FailureThreshold
		}
		if cfg.OpenTimeout > 0 {
			openTimeout = cfg.OpenTimeout
		}
	}

	return &CircuitBreaker{
		name:        name,
		threshold:   threshold,
		openTimeout: openTimeout,
		now:         time.Now,
	}
}

// Execute runs op unless the circuit is open. Failures of op are recorded,
// except cancellations coming from the caller.
func (cb *CircuitBreaker) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	if !cb.allow() {
		return domainerrors.ErrCircuitOpen.WrapMessage(cb.name)
	}

	err := op(ctx)
	switch {
	case err == nil:
		cb.RecordSuccess()
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		cb.release()
	default:
		cb.RecordFailure()
	}

	return err
}

// State reports the current position, moving open to half-open once the
// open timeout has passed.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.advance()

	return cb.state
}

// RecordFailure counts one failure and opens the circuit at the threshold.
// A failed trial call reopens it immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if cb.state == StateHalfOpen {
		cb.trip()

		return
	}

	cb.failures++
	if cb.failures >= cb.threshold {
		cb.trip()
	}
}

// RecordSuccess closes the circuit and resets the failure count.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.state = StateClosed
	cb.failures = 0
	cb.probing = false
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.advance()
	switch cb.state {
	case StateOpen:
		return false
	case StateHalfOpen:
		if cb.probing {
			return false
		}
		cb.probing = true

		return true
	default:
		return true
	}
}

func (cb *CircuitBreaker) release() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
}

// advance must be called with mu held.
func (cb *CircuitBreaker) advance() {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.openTimeout {
		cb.state = StateHalfOpen
		cb.probing = false
	}
}

// trip must be called with mu held.
func (cb *CircuitBreaker) trip() {
	cb.state = StateOpen
	cb.openedAt = cb.now()
	cb.failures = 0
}
