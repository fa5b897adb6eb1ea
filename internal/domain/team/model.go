package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/penca/internal/domain/league"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

// ID identifies a team.
type ID string

// Team is a club or national side inside a league.
type Team struct {
	ID       ID
	Name     string
	LeagueID league.ID
}

func New(gen idgen.Generator, name string, leagueID league.ID) (Team, error) {
	value, err := gen.NewID()
	if err != nil {
		return Team{}, fmt.Errorf("generate team id: %w", err)
	}

	t := Team{
		ID:       ID(value),
		Name:     strings.TrimSpace(name),
		LeagueID: leagueID,
	}
	if err := t.Validate(); err != nil {
		return Team{}, err
	}

	return t, nil
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
