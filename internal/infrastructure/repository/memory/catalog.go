package memory

import (
	"context"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
)

// catalogIndex is built once and never mutated, so reads need no lock.
// Later duplicates replace earlier records but keep the first position.
type catalogIndex[K comparable, G comparable, T any] struct {
	byID    map[K]T
	order   []K
	byGroup map[G][]K
}

func newCatalogIndex[K comparable, G comparable, T any](items []T, id func(T) K, group func(T) G) catalogIndex[K, G, T] {
	idx := catalogIndex[K, G, T]{
		byID:    make(map[K]T, len(items)),
		order:   make([]K, 0, len(items)),
		byGroup: make(map[G][]K),
	}
	for _, item := range items {
		key := id(item)
		if _, exists := idx.byID[key]; !exists {
			idx.order = append(idx.order, key)
			if group != nil {
				g := group(item)
				idx.byGroup[g] = append(idx.byGroup[g], key)
			}
		}
		idx.byID[key] = item
	}
	return idx
}

func (idx catalogIndex[K, G, T]) collect(keys []K) []T {
	out := make([]T, 0, len(keys))
	for _, key := range keys {
		out = append(out, idx.byID[key])
	}
	return out
}

func (idx catalogIndex[K, G, T]) get(key K) (T, bool) {
	item, ok := idx.byID[key]
	return item, ok
}

type LeagueRepository struct {
	index catalogIndex[league.ID, struct{}, league.League]
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	return &LeagueRepository{
		index: newCatalogIndex[league.ID, struct{}](leagues, func(l league.League) league.ID { return l.ID }, nil),
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	return r.index.collect(r.index.order), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID league.ID) (league.League, bool, error) {
	item, ok := r.index.get(leagueID)
	return item, ok, nil
}

type TeamRepository struct {
	index catalogIndex[team.ID, league.ID, team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{
		index: newCatalogIndex(teams,
			func(t team.Team) team.ID { return t.ID },
			func(t team.Team) league.ID { return t.LeagueID },
		),
	}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID league.ID) ([]team.Team, error) {
	return r.index.collect(r.index.byGroup[leagueID]), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID team.ID) (team.Team, bool, error) {
	item, ok := r.index.get(teamID)
	return item, ok, nil
}

type PlayerRepository struct {
	index catalogIndex[player.ID, team.ID, player.Player]
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{
		index: newCatalogIndex(players,
			func(p player.Player) player.ID { return p.ID },
			func(p player.Player) team.ID { return p.TeamID },
		),
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID team.ID) ([]player.Player, error) {
	return r.index.collect(r.index.byGroup[teamID]), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID player.ID) (player.Player, bool, error) {
	item, ok := r.index.get(playerID)
	return item, ok, nil
}
