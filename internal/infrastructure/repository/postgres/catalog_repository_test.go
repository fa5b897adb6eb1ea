package postgres

import (
	"strings"
	"testing"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
)

func TestBuildListCatalogQueries(t *testing.T) {
	query, args, err := buildListTeamsByLeagueQuery("mundial-femenino")
	if err != nil {
		t.Fatalf("build teams query: %v", err)
	}
	wantQuery := "SELECT " + strings.Join(teamColumns, ", ") + " FROM teams WHERE league_public_id = $1 AND deleted_at IS NULL ORDER BY id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "mundial-femenino" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = buildListPlayersByTeamQuery("barcelona")
	if err != nil {
		t.Fatalf("build players query: %v", err)
	}
	wantQuery = "SELECT " + strings.Join(playerColumns, ", ") + " FROM players WHERE team_public_id = $1 AND deleted_at IS NULL ORDER BY id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "barcelona" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBuildSeedQueries(t *testing.T) {
	query, args, err := buildSeedLeagueQuery(league.League{ID: "champions-league", Name: "Champions League"})
	if err != nil {
		t.Fatalf("build league seed: %v", err)
	}
	if query != "INSERT INTO leagues (public_id, name) VALUES ($1, $2) ON CONFLICT (public_id) DO NOTHING" {
		t.Fatalf("unexpected league seed query: %s", query)
	}
	if len(args) != 2 || args[0] != "champions-league" {
		t.Fatalf("unexpected league seed args: %+v", args)
	}

	query, args, err = buildSeedPlayerQuery(player.Player{
		ID:     "lionel-messi",
		Name:   "Lionel Messi",
		TeamID: "barcelona",
		Stats:  player.Stats{Goals: 3},
	})
	if err != nil {
		t.Fatalf("build player seed: %v", err)
	}
	wantQuery := "INSERT INTO players (public_id, team_public_id, name, goals, own_goals, assists, yellow_cards, red_cards) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (public_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected player seed query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 8 || args[3] != 3 {
		t.Fatalf("unexpected player seed args: %+v", args)
	}
}

func TestCatalogModelsToDomain(t *testing.T) {
	row := playerTableModel{PublicID: "pedri", TeamID: "barcelona", Name: "Pedri", Assists: 2}
	got := row.toDomain()
	if got.ID != "pedri" || got.TeamID != "barcelona" || got.Stats.Assists != 2 {
		t.Fatalf("unexpected player: %+v", got)
	}

	side := teamTableModel{PublicID: "brasil", LeagueID: "mundial-femenino", Name: "Brasil"}.toDomain()
	if side.ID != "brasil" || side.LeagueID != "mundial-femenino" {
		t.Fatalf("unexpected team: %+v", side)
	}
}

func TestBuildGetByPublicIDQuery(t *testing.T) {
	query, args, err := buildGetByPublicIDQuery("leagues", leagueColumns, "champions-league")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	wantQuery := "SELECT " + strings.Join(leagueColumns, ", ") + " FROM leagues WHERE public_id = $1 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "champions-league" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = buildListLeaguesQuery()
	if err != nil || query != "SELECT "+strings.Join(leagueColumns, ", ")+" FROM leagues WHERE deleted_at IS NULL ORDER BY id" {
		t.Fatalf("unexpected list leagues query: %s (%v)", query, err)
	}
}
