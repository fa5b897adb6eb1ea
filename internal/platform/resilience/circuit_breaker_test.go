package resilience

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker("redis", CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	errDown := errors.New("connection refused")

	for i := 0; i < 2; i++ {
		if err := b.Execute(func() error { return errDown }); !errors.Is(err, errDown) {
			t.Fatalf("expected dependency error, got %v", err)
		}
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run while the circuit is open")
	}

	now = now.Add(6 * time.Second)
	if err := b.Execute(func() error { return errDown }); !errors.Is(err, errDown) {
		t.Fatalf("expected probe failure, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("failed probe must reopen the circuit, got %s", state)
	}
}

func TestCircuitBreaker_NilRunsFn(t *testing.T) {
	var b *CircuitBreaker
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("nil breaker: %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("normalize = %+v, want %+v", got, want)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate("REDIS_CIRCUIT"); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg := DefaultCircuitBreakerConfig()
	cfg.HalfOpenMaxReq = 0
	err := cfg.Validate("REDIS_CIRCUIT")
	if err == nil || !strings.Contains(err.Error(), "REDIS_CIRCUIT_HALF_OPEN_MAX_REQ") {
		t.Fatalf("expected half open error, got %v", err)
	}
}
