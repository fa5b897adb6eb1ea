package participant

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
)

// ID identifies a participant.
type ID string

// Division is the tier a participant competes in.
type Division string

const (
	DivisionA Division = "A"
	DivisionB Division = "B"
	DivisionC Division = "C"
)

var AllDivisions = map[Division]struct{}{
	DivisionA: {},
	DivisionB: {},
	DivisionC: {},
}

// Participant is a pool member represented by two teams and one friend player.
type Participant struct {
	ID             ID
	Name           string
	Country        string
	TeamIDs        [2]team.ID
	FriendPlayerID player.ID
	Division       Division
	TotalScore     int
	MatchesPlayed  int
}

type NewInput struct {
	Name           string
	Country        string
	TeamIDs        [2]team.ID
	FriendPlayerID player.ID
	Division       Division
	TotalScore     int
	MatchesPlayed  int
}

func New(gen idgen.Generator, input NewInput) (Participant, error) {
	value, err := gen.NewID()
	if err != nil {
		return Participant{}, fmt.Errorf("generate participant id: %w", err)
	}

	p := Participant{
		ID:             ID(value),
		Name:           strings.TrimSpace(input.Name),
		Country:        strings.TrimSpace(input.Country),
		TeamIDs:        input.TeamIDs,
		FriendPlayerID: input.FriendPlayerID,
		Division:       input.Division,
		TotalScore:     input.TotalScore,
		MatchesPlayed:  input.MatchesPlayed,
	}
	if err := p.Validate(); err != nil {
		return Participant{}, err
	}

	return p, nil
}

// Validate checks required fields. Two equal team ids are accepted.
func (p Participant) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("participant id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("participant name is required")
	}
	if p.TeamIDs[0] == "" || p.TeamIDs[1] == "" {
		return fmt.Errorf("participant requires two team ids")
	}
	if p.FriendPlayerID == "" {
		return fmt.Errorf("participant friend player id is required")
	}
	if _, ok := AllDivisions[p.Division]; !ok {
		return fmt.Errorf("invalid participant division: %s", p.Division)
	}
	if p.MatchesPlayed < 0 {
		return fmt.Errorf("participant matches played cannot be negative")
	}

	return nil
}

func (p Participant) OwnsTeam(teamID team.ID) bool {
	return p.TeamIDs[0] == teamID || p.TeamIDs[1] == teamID
}
