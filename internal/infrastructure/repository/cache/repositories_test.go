package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/penca/internal/mocks/domain/match"
)

func TestMatchRepository_CachesLookupsAndMisses(t *testing.T) {
	t.Parallel()

	next := matchmock.NewRepository(t)
	item := match.Match{ID: "m1", HomeTeamID: memory.TeamIDRealMadrid, AwayTeamID: memory.TeamIDBarcelona, Type: match.Club{}}
	next.On("GetByID", mock.Anything, match.ID("m1")).Return(item, true, nil).Once()
	next.On("GetByID", mock.Anything, match.ID("missing")).Return(match.Match{}, false, nil).Once()

	repo := NewMatchRepository(next, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetByID(ctx, "m1")
		if err != nil || !ok || got.ID != "m1" {
			t.Fatalf("GetByID = %+v %v %v", got, ok, err)
		}
		if _, ok, err := repo.GetByID(ctx, "missing"); ok || err != nil {
			t.Fatalf("expected cached miss, got %v %v", ok, err)
		}
	}
}

func TestMatchRepository_SaveEvicts(t *testing.T) {
	t.Parallel()

	next := memory.NewMatchRepository()
	repo := NewMatchRepository(next, time.Minute)
	ctx := context.Background()

	item := match.Match{ID: "m1", HomeTeamID: memory.TeamIDRealMadrid, AwayTeamID: memory.TeamIDBarcelona, Type: match.Club{}}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok, _ := repo.GetByID(ctx, "m1"); !ok {
		t.Fatalf("expected saved match")
	}

	if err := item.RecordResult(1, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("save played: %v", err)
	}

	got, _, _ := repo.GetByID(ctx, "m1")
	if !got.Played {
		t.Fatalf("expected fresh value after save, got %+v", got)
	}
}

func TestMatchRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	next := matchmock.NewRepository(t)
	failure := match.PersistenceFailure("get match", errors.New("timeout"))
	next.On("GetByID", mock.Anything, match.ID("m1")).Return(match.Match{}, false, failure).Once()
	next.On("GetByID", mock.Anything, match.ID("m1")).Return(match.Match{ID: "m1"}, true, nil).Once()

	repo := NewMatchRepository(next, time.Minute)
	if _, _, err := repo.GetByID(context.Background(), "m1"); !errors.Is(err, match.ErrPersistenceFailure) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
	if _, ok, err := repo.GetByID(context.Background(), "m1"); !ok || err != nil {
		t.Fatalf("expected retry to reach the repository, got %v %v", ok, err)
	}
}

func TestCatalogRepositories_ReturnCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagues := NewLeagueRepository(memory.NewLeagueRepository(memory.SeedLeagues()), time.Minute)
	teams := NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), time.Minute)
	players := NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), time.Minute)

	first, err := leagues.List(ctx)
	if err != nil || len(first) != 2 {
		t.Fatalf("list leagues: %+v %v", first, err)
	}
	first[0].Name = "mutated"
	second, _ := leagues.List(ctx)
	if second[0].Name != "Champions League" {
		t.Fatalf("cached list was mutated: %+v", second)
	}

	if _, ok, err := teams.GetByID(ctx, memory.TeamIDArgentina); !ok || err != nil {
		t.Fatalf("team lookup: %v %v", ok, err)
	}
	squad, err := players.ListByTeam(ctx, memory.TeamIDBarcelona)
	if err != nil || len(squad) != 2 {
		t.Fatalf("list players: %+v %v", squad, err)
	}
	if _, ok, _ := players.GetByID(ctx, "nobody"); ok {
		t.Fatalf("unknown player must be absent")
	}
}
