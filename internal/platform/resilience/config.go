package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig tunes a CircuitBreaker. A disabled breaker passes every call through.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// Validate reports the first out of range field, naming it with prefix.
func (c CircuitBreakerConfig) Validate(prefix string) error {
	switch {
	case c.FailureThreshold < 1:
		return fmt.Errorf("%s_FAILURE_COUNT must be >= 1", prefix)
	case c.OpenTimeout <= 0:
		return fmt.Errorf("%s_OPEN_TIMEOUT must be > 0", prefix)
	case c.HalfOpenMaxReq < 1:
		return fmt.Errorf("%s_HALF_OPEN_MAX_REQ must be >= 1", prefix)
	}
	return nil
}

// NormalizeCircuitBreakerConfig replaces out of range values with defaults.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}
