package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/penca"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// translateDomainError maps domain failures onto use case sentinels and keeps
// the original error in the chain.
func translateDomainError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *penca.ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, match.ErrInvalidGoals):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, penca.ErrMatchNotFound), errors.Is(err, penca.ErrParticipantNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, match.ErrAlreadyPlayed):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, match.ErrPersistenceFailure):
		return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	default:
		return err
	}
}
