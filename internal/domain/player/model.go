package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/penca/internal/domain/team"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

// ID identifies a player.
type ID string

// Stats holds cumulative performance counters.
type Stats struct {
	Goals       int
	OwnGoals    int
	Assists     int
	YellowCards int
	RedCards    int
}

// Player is an athlete a participant can follow as a friend or selected player.
type Player struct {
	ID     ID
	Name   string
	TeamID team.ID
	Stats  Stats
}

func New(gen idgen.Generator, name string, teamID team.ID) (Player, error) {
	value, err := gen.NewID()
	if err != nil {
		return Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := Player{
		ID:     ID(value),
		Name:   strings.TrimSpace(name),
		TeamID: teamID,
	}
	if err := p.Validate(); err != nil {
		return Player{}, err
	}

	return p, nil
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Stats.Goals < 0 || p.Stats.OwnGoals < 0 || p.Stats.Assists < 0 || p.Stats.YellowCards < 0 || p.Stats.RedCards < 0 {
		return fmt.Errorf("player stats cannot be negative")
	}

	return nil
}
