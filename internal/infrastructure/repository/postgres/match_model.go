package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
)

type matchTableModel struct {
	ID               int64          `db:"id,readonly"`
	PublicID         string         `db:"public_id"`
	HomeTeamID       string         `db:"home_team_public_id"`
	AwayTeamID       string         `db:"away_team_public_id"`
	HomeGoals        int            `db:"home_goals"`
	AwayGoals        int            `db:"away_goals"`
	KickoffAt        time.Time      `db:"kickoff_at"`
	IsFriendly       bool           `db:"is_friendly"`
	Kind             string         `db:"kind"`
	Difficulty       sql.NullString `db:"difficulty"`
	SelectedPlayerID sql.NullString `db:"selected_player_public_id"`
	Played           bool           `db:"played"`
	CreatedAt        time.Time      `db:"created_at,readonly"`
	UpdatedAt        time.Time      `db:"updated_at,readonly"`
	DeletedAt        *time.Time     `db:"deleted_at,readonly"`
}

var matchColumns = []string{
	"id",
	"public_id",
	"home_team_public_id",
	"away_team_public_id",
	"home_goals",
	"away_goals",
	"kickoff_at",
	"is_friendly",
	"kind",
	"difficulty",
	"selected_player_public_id",
	"played",
	"created_at",
	"updated_at",
	"deleted_at",
}

func toMatchTableModel(item match.Match) (matchTableModel, error) {
	row := matchTableModel{
		PublicID:   string(item.ID),
		HomeTeamID: string(item.HomeTeamID),
		AwayTeamID: string(item.AwayTeamID),
		HomeGoals:  item.HomeGoals,
		AwayGoals:  item.AwayGoals,
		KickoffAt:  item.Date.UTC(),
		IsFriendly: item.IsFriendly,
		Played:     item.Played,
	}

	switch t := item.Type.(type) {
	case match.Club:
		row.Kind = string(match.KindClub)
	case match.Predicted:
		row.Kind = string(match.KindPredicted)
		row.Difficulty = nullString(string(t.Level))
		row.SelectedPlayerID = nullString(string(t.SelectedPlayerID))
	default:
		return matchTableModel{}, fmt.Errorf("unsupported match type %T", item.Type)
	}

	return row, nil
}

func (row matchTableModel) toDomain() (match.Match, error) {
	matchType, err := match.ParseType(
		match.Kind(row.Kind),
		match.Difficulty(row.Difficulty.String),
		player.ID(row.SelectedPlayerID.String),
	)
	if err != nil {
		return match.Match{}, fmt.Errorf("decode match %s: %w", row.PublicID, err)
	}

	return match.Match{
		ID:         match.ID(row.PublicID),
		HomeTeamID: team.ID(row.HomeTeamID),
		AwayTeamID: team.ID(row.AwayTeamID),
		HomeGoals:  row.HomeGoals,
		AwayGoals:  row.AwayGoals,
		Date:       row.KickoffAt,
		IsFriendly: row.IsFriendly,
		Type:       matchType,
		Played:     row.Played,
	}, nil
}
