package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/riskibarqy/penca/internal/domain/match"
)

var errMissingID = errors.New("match id is required")

type MatchRepository struct {
	mu    sync.RWMutex
	items map[match.ID]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{items: make(map[match.ID]match.Match)}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID match.ID) (match.Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return match.Match{}, false, match.PersistenceFailure("get match", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	return item, ok, nil
}

// Save stores a copy, replacing any match with the same id.
func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	if err := ctx.Err(); err != nil {
		return match.PersistenceFailure("save match", err)
	}
	if item.ID == "" {
		return match.PersistenceFailure("save match", errMissingID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
