package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/penca/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT (public_id) DO NOTHING"

func buildSeedLeagueQuery(l league.League) (string, []any, error) {
	return qb.InsertModel("leagues", leagueTableModel{PublicID: string(l.ID), Name: l.Name}, seedConflictSuffix)
}

func buildSeedTeamQuery(t team.Team) (string, []any, error) {
	return qb.InsertModel("teams", teamTableModel{
		PublicID: string(t.ID),
		LeagueID: string(t.LeagueID),
		Name:     t.Name,
	}, seedConflictSuffix)
}

func buildSeedPlayerQuery(p player.Player) (string, []any, error) {
	return qb.InsertModel("players", playerTableModel{
		PublicID:    string(p.ID),
		TeamID:      string(p.TeamID),
		Name:        p.Name,
		Goals:       p.Stats.Goals,
		OwnGoals:    p.Stats.OwnGoals,
		Assists:     p.Stats.Assists,
		YellowCards: p.Stats.YellowCards,
		RedCards:    p.Stats.RedCards,
	}, seedConflictSuffix)
}

// BootstrapSeed loads the built-in catalog when the leagues table is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(kind, id string, query string, args []any, err error) error {
		if err != nil {
			return fmt.Errorf("build seed %s %s query: %w", kind, id, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s %s: %w", kind, id, err)
		}
		return nil
	}

	for _, l := range memory.SeedLeagues() {
		query, args, err := buildSeedLeagueQuery(l)
		if err := exec("league", string(l.ID), query, args, err); err != nil {
			return err
		}
	}
	for _, t := range memory.SeedTeams() {
		query, args, err := buildSeedTeamQuery(t)
		if err := exec("team", string(t.ID), query, args, err); err != nil {
			return err
		}
	}
	for _, p := range memory.SeedPlayers() {
		query, args, err := buildSeedPlayerQuery(p)
		if err := exec("player", string(p.ID), query, args, err); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
