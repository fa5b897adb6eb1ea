package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/platform/logging"
	"github.com/riskibarqy/penca/internal/platform/resilience"
)

type fakeClient struct {
	mu     sync.Mutex
	values map[string]string
	err    error
	gets   int
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: make(map[string]string)}
}

func (c *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets++
	if c.err != nil {
		return goredis.NewStringResult("", c.err)
	}
	value, ok := c.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(value, nil)
}

func (c *fakeClient) Set(_ context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return goredis.NewStatusResult("", c.err)
	}
	c.values[key] = value.(string)
	return goredis.NewStatusResult("OK", nil)
}

func TestMatchRepository_SaveAndGet(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	repo := NewMatchRepository(fake, "penca", nil, logging.NewNop())
	ctx := context.Background()

	if _, ok, err := repo.GetByID(ctx, "m1"); ok || err != nil {
		t.Fatalf("absent match must return false without error, got %v %v", ok, err)
	}

	item := match.Match{
		ID:         "m1",
		HomeTeamID: "real-madrid",
		AwayTeamID: "barcelona",
		Date:       time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		Type:       match.Predicted{Level: match.DifficultyComplex, SelectedPlayerID: "federico-valverde"},
	}
	if err := item.RecordResult(2, 1); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := fake.values["penca:match:m1"]; !ok {
		t.Fatalf("expected key penca:match:m1, got %v", fake.values)
	}

	got, ok, err := repo.GetByID(ctx, "m1")
	if err != nil || !ok {
		t.Fatalf("get: %v %v", ok, err)
	}
	if got.Type != item.Type || !got.Played || got.HomeGoals != 2 || !got.Date.Equal(item.Date) {
		t.Fatalf("unexpected match: %+v", got)
	}
}

func TestMatchRepository_FailuresArePersistenceFailures(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	fake.err = errors.New("dial tcp: connection refused")
	repo := NewMatchRepository(fake, "penca", nil, logging.NewNop())
	ctx := context.Background()

	item := match.Match{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", Type: match.Club{}}
	if err := repo.Save(ctx, item); !errors.Is(err, match.ErrPersistenceFailure) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if _, _, err := repo.GetByID(ctx, "m1"); !errors.Is(err, match.ErrPersistenceFailure) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if err := repo.Save(ctx, match.Match{ID: "m2"}); !errors.Is(err, match.ErrPersistenceFailure) {
		t.Fatalf("expected persistence failure for missing type, got %v", err)
	}
}

func TestMatchRepository_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	fake.err = errors.New("i/o timeout")
	breaker := resilience.NewCircuitBreaker("redis", resilience.CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	repo := NewMatchRepository(fake, "", breaker, logging.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, _ = repo.GetByID(ctx, "m1")
	}
	_, _, err := repo.GetByID(ctx, "m1")
	if !errors.Is(err, resilience.ErrCircuitOpen) || !errors.Is(err, match.ErrPersistenceFailure) {
		t.Fatalf("expected open circuit persistence failure, got %v", err)
	}
	if fake.gets != 2 {
		t.Fatalf("open circuit must not reach redis, got %d calls", fake.gets)
	}
}

func TestMatchRepository_MissDoesNotTripCircuit(t *testing.T) {
	t.Parallel()

	breaker := resilience.NewCircuitBreaker("redis", resilience.CircuitBreakerConfig{FailureThreshold: 1})
	repo := NewMatchRepository(newFakeClient(), "penca", breaker, logging.NewNop())

	for i := 0; i < 3; i++ {
		if _, ok, err := repo.GetByID(context.Background(), "missing"); ok || err != nil {
			t.Fatalf("miss %d: %v %v", i, ok, err)
		}
	}
	if state := breaker.State(); state != resilience.CircuitStateClosed {
		t.Fatalf("expected closed circuit, got %s", state)
	}
}

func TestDecodeMatch_RejectsCorruptPayload(t *testing.T) {
	t.Parallel()

	if _, err := decodeMatch("{not json"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := decodeMatch(`{"id":"m1","kind":"KNOCKOUT"}`); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
