package postgres

import (
	"time"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
)

type leagueTableModel struct {
	ID        int64      `db:"id,readonly"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at,readonly"`
	UpdatedAt time.Time  `db:"updated_at,readonly"`
	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{ID: league.ID(m.PublicID), Name: m.Name}
}

type teamTableModel struct {
	ID        int64      `db:"id,readonly"`
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at,readonly"`
	UpdatedAt time.Time  `db:"updated_at,readonly"`
	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: team.ID(m.PublicID), Name: m.Name, LeagueID: league.ID(m.LeagueID)}
}

type playerTableModel struct {
	ID          int64      `db:"id,readonly"`
	PublicID    string     `db:"public_id"`
	TeamID      string     `db:"team_public_id"`
	Name        string     `db:"name"`
	Goals       int        `db:"goals"`
	OwnGoals    int        `db:"own_goals"`
	Assists     int        `db:"assists"`
	YellowCards int        `db:"yellow_cards"`
	RedCards    int        `db:"red_cards"`
	CreatedAt   time.Time  `db:"created_at,readonly"`
	UpdatedAt   time.Time  `db:"updated_at,readonly"`
	DeletedAt   *time.Time `db:"deleted_at,readonly"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:     player.ID(m.PublicID),
		Name:   m.Name,
		TeamID: team.ID(m.TeamID),
		Stats: player.Stats{
			Goals:       m.Goals,
			OwnGoals:    m.OwnGoals,
			Assists:     m.Assists,
			YellowCards: m.YellowCards,
			RedCards:    m.RedCards,
		},
	}
}

var (
	leagueColumns = []string{"id", "public_id", "name", "created_at", "updated_at", "deleted_at"}
	teamColumns   = []string{"id", "public_id", "league_public_id", "name", "created_at", "updated_at", "deleted_at"}
	playerColumns = []string{
		"id",
		"public_id",
		"team_public_id",
		"name",
		"goals",
		"own_goals",
		"assists",
		"yellow_cards",
		"red_cards",
		"created_at",
		"updated_at",
		"deleted_at",
	}
)
