package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	qb "github.com/riskibarqy/penca/internal/platform/querybuilder"
)

type domainRow[T any] interface {
	toDomain() T
}

func selectRows[M domainRow[T], T any](ctx context.Context, db *sqlx.DB, what, query string, args []any, err error) ([]T, error) {
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}

	var rows []M
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func getRow[M domainRow[T], T any](ctx context.Context, db *sqlx.DB, what, query string, args []any, err error) (T, bool, error) {
	var zero T
	if err != nil {
		return zero, false, fmt.Errorf("build get %s query: %w", what, err)
	}

	var row M
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("get %s: %w", what, err)
	}
	return row.toDomain(), true, nil
}

func buildGetByPublicIDQuery(table string, columns []string, publicID string) (string, []any, error) {
	return qb.Select(columns...).From(table).
		Where(
			qb.Eq("public_id", publicID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func buildListLeaguesQuery() (string, []any, error) {
	return qb.Select(leagueColumns...).From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
}

func buildListTeamsByLeagueQuery(leagueID league.ID) (string, []any, error) {
	return qb.Select(teamColumns...).From("teams").
		Where(
			qb.Eq("league_public_id", string(leagueID)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
}

func buildListPlayersByTeamQuery(teamID team.ID) (string, []any, error) {
	return qb.Select(playerColumns...).From("players").
		Where(
			qb.Eq("team_public_id", string(teamID)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := buildListLeaguesQuery()
	return selectRows[leagueTableModel, league.League](ctx, r.db, "leagues", query, args, err)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID league.ID) (league.League, bool, error) {
	query, args, err := buildGetByPublicIDQuery("leagues", leagueColumns, string(leagueID))
	return getRow[leagueTableModel, league.League](ctx, r.db, "league by id", query, args, err)
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID league.ID) ([]team.Team, error) {
	query, args, err := buildListTeamsByLeagueQuery(leagueID)
	return selectRows[teamTableModel, team.Team](ctx, r.db, "teams by league", query, args, err)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID team.ID) (team.Team, bool, error) {
	query, args, err := buildGetByPublicIDQuery("teams", teamColumns, string(teamID))
	return getRow[teamTableModel, team.Team](ctx, r.db, "team by id", query, args, err)
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID team.ID) ([]player.Player, error) {
	query, args, err := buildListPlayersByTeamQuery(teamID)
	return selectRows[playerTableModel, player.Player](ctx, r.db, "players by team", query, args, err)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID player.ID) (player.Player, bool, error) {
	query, args, err := buildGetByPublicIDQuery("players", playerColumns, string(playerID))
	return getRow[playerTableModel, player.Player](ctx, r.db, "player by id", query, args, err)
}
