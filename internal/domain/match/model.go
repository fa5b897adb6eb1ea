package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/penca/internal/domain/team"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

var (
	ErrAlreadyPlayed = errors.New("match result already recorded")
	ErrInvalidGoals  = errors.New("goals cannot be negative")
)

// ID identifies a match.
type ID string

// Match is a fixture between two teams. Goals stay at zero until a result is recorded.
type Match struct {
	ID         ID
	HomeTeamID team.ID
	AwayTeamID team.ID
	HomeGoals  int
	AwayGoals  int
	Date       time.Time
	IsFriendly bool
	Type       Type
	Played     bool
}

type NewInput struct {
	HomeTeamID team.ID
	AwayTeamID team.ID
	Date       time.Time
	IsFriendly bool
	Type       Type
}

func New(gen idgen.Generator, input NewInput) (Match, error) {
	value, err := gen.NewID()
	if err != nil {
		return Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := Match{
		ID:         ID(value),
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
		IsFriendly: input.IsFriendly,
		Type:       input.Type,
	}
	if err := m.Validate(); err != nil {
		return Match{}, err
	}

	return m, nil
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID == "" {
		return fmt.Errorf("match away team id is required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away teams must differ")
	}
	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		return ErrInvalidGoals
	}

	return validateType(m.Type)
}

// RecordResult fixes the final score. A result can be recorded once.
func (m *Match) RecordResult(homeGoals, awayGoals int) error {
	if m.Played {
		return fmt.Errorf("%w: match=%s", ErrAlreadyPlayed, m.ID)
	}
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: home=%d away=%d", ErrInvalidGoals, homeGoals, awayGoals)
	}

	m.HomeGoals = homeGoals
	m.AwayGoals = awayGoals
	m.Played = true
	return nil
}

func (m Match) Kind() Kind {
	if m.Type == nil {
		return ""
	}
	return m.Type.Kind()
}
