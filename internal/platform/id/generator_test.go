package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		value, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		parsed, err := uuid.Parse(value)
		if err != nil {
			t.Fatalf("expected uuid, got %q: %v", value, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected uuid v4, got v%d", parsed.Version())
		}
		if _, exists := seen[value]; exists {
			t.Fatalf("duplicate id generated: %s", value)
		}
		seen[value] = struct{}{}
	}
}
