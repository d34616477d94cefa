package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to CircuitBreakerState
}

func newTestBreaker(maxFailures int, reset time.Duration) (*CircuitBreaker, *time.Time, *[]transition) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := &[]transition{}
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:  maxFailures,
		ResetTimeout: reset,
		OnStateChange: func(from, to CircuitBreakerState) {
			*seen = append(*seen, transition{from, to})
		},
	}).(*CircuitBreaker)
	cb.now = func() time.Time { return clock }
	return cb, &clock, seen
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _, seen := newTestBreaker(3, time.Minute)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, []transition{{StateClosed, StateOpen}}, *seen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _, _ := newTestBreaker(3, time.Minute)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenAfterResetTimeout(t *testing.T) {
	cb, clock, seen := newTestBreaker(1, time.Minute)

	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	*clock = clock.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, *seen)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock, _ := newTestBreaker(1, time.Minute)

	cb.RecordFailure()
	*clock = clock.Add(2 * time.Minute)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, _ := newTestBreaker(1, time.Minute)

	cb.RecordFailure()
	cb.Reset()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.GetFailureCount())
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", CircuitBreakerState(9).String())
}
