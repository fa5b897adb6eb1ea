package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isBindParameterMismatch(fakeErr("pq: relation matches does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
		if isBindParameterMismatch(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestNullString(t *testing.T) {
	if got := nullString("  "); got.Valid {
		t.Fatalf("blank string must be null, got %+v", got)
	}
	if got := nullString("messi"); !got.Valid || got.String != "messi" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
