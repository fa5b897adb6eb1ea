package match

import (
	"context"
	"errors"
	"fmt"
)

// ErrPersistenceFailure marks every error returned by a failed Save or lookup.
var ErrPersistenceFailure = errors.New("match persistence failure")

// Repository is the match persistence collaborator.
// GetByID reports a miss with false and a nil error.
type Repository interface {
	GetByID(ctx context.Context, id ID) (Match, bool, error)
	Save(ctx context.Context, m Match) error
}

// PersistenceFailure wraps err so callers can match it with errors.Is(err, ErrPersistenceFailure).
func PersistenceFailure(message string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrPersistenceFailure, message)
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistenceFailure, message, err)
}
