package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	basecache "github.com/riskibarqy/penca/internal/platform/cache"
)

// lookup caches misses as well as hits.
type lookup[T any] struct {
	value  T
	exists bool
}

func getByID[T any](ctx context.Context, store *basecache.Store[lookup[T]], key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (lookup[T], error) {
		item, exists, err := load(ctx)
		if err != nil {
			return lookup[T]{}, err
		}
		return lookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.value, cached.exists, nil
}

func list[T any](ctx context.Context, store *basecache.Store[[]T], key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := store.GetOrLoad(ctx, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

type LeagueRepository struct {
	next  league.Repository
	lists *basecache.Store[[]league.League]
	items *basecache.Store[lookup[league.League]]
}

func NewLeagueRepository(next league.Repository, ttl time.Duration) *LeagueRepository {
	return &LeagueRepository{
		next:  next,
		lists: basecache.NewStore[[]league.League](ttl),
		items: basecache.NewStore[lookup[league.League]](ttl),
	}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return list(ctx, r.lists, "league:list", r.next.List)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID league.ID) (league.League, bool, error) {
	return getByID(ctx, r.items, "league:id:"+string(leagueID), func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetByID(ctx, leagueID)
	})
}

type TeamRepository struct {
	next  team.Repository
	lists *basecache.Store[[]team.Team]
	items *basecache.Store[lookup[team.Team]]
}

func NewTeamRepository(next team.Repository, ttl time.Duration) *TeamRepository {
	return &TeamRepository{
		next:  next,
		lists: basecache.NewStore[[]team.Team](ttl),
		items: basecache.NewStore[lookup[team.Team]](ttl),
	}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID league.ID) ([]team.Team, error) {
	return list(ctx, r.lists, "team:list:"+string(leagueID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID team.ID) (team.Team, bool, error) {
	return getByID(ctx, r.items, "team:id:"+string(teamID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

type PlayerRepository struct {
	next  player.Repository
	lists *basecache.Store[[]player.Player]
	items *basecache.Store[lookup[player.Player]]
}

func NewPlayerRepository(next player.Repository, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{
		next:  next,
		lists: basecache.NewStore[[]player.Player](ttl),
		items: basecache.NewStore[lookup[player.Player]](ttl),
	}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID team.ID) ([]player.Player, error) {
	return list(ctx, r.lists, "player:list:"+string(teamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID player.ID) (player.Player, bool, error) {
	return getByID(ctx, r.items, "player:id:"+string(playerID), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
}

// MatchRepository caches lookups and evicts the key on every Save attempt.
type MatchRepository struct {
	next  match.Repository
	items *basecache.Store[lookup[match.Match]]
}

func NewMatchRepository(next match.Repository, ttl time.Duration) *MatchRepository {
	return &MatchRepository{
		next:  next,
		items: basecache.NewStore[lookup[match.Match]](ttl),
	}
}

func matchKey(matchID match.ID) string {
	return "match:id:" + string(matchID)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID match.ID) (match.Match, bool, error) {
	return getByID(ctx, r.items, matchKey(matchID), func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, matchID)
	})
}

func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	defer r.items.Delete(ctx, matchKey(item.ID))
	return r.next.Save(ctx, item)
}
