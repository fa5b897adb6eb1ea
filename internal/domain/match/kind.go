package match

import (
	"fmt"

	"github.com/riskibarqy/penca/internal/domain/player"
)

// Kind names the variant of a match Type.
type Kind string

const (
	KindClub      Kind = "CLUB"
	KindPredicted Kind = "PREDICTED"
)

// Difficulty is the tier of a predicted match.
type Difficulty string

const (
	DifficultySimple  Difficulty = "SIMPLE"
	DifficultyComplex Difficulty = "COMPLEX"
	DifficultySpecial Difficulty = "SPECIAL"
)

var AllDifficulties = map[Difficulty]struct{}{
	DifficultySimple:  {},
	DifficultyComplex: {},
	DifficultySpecial: {},
}

// Result classifies a match from one side's point of view.
type Result string

const (
	ResultWin               Result = "WIN"
	ResultDraw              Result = "DRAW"
	ResultLoss              Result = "LOSS"
	ResultWinByLargeMargin  Result = "WIN_BY_LARGE_MARGIN"
	ResultLossByLargeMargin Result = "LOSS_BY_LARGE_MARGIN"
)

var AllResults = map[Result]struct{}{
	ResultWin:               {},
	ResultDraw:              {},
	ResultLoss:              {},
	ResultWinByLargeMargin:  {},
	ResultLossByLargeMargin: {},
}

// Type is the closed set of match variants: Club and Predicted.
type Type interface {
	Kind() Kind
	sealed()
}

// Club is a head-to-head club result scored by team ownership.
type Club struct{}

func (Club) Kind() Kind { return KindClub }
func (Club) sealed()    {}

// Predicted is a match participants guess in advance.
// SelectedPlayerID is empty when no player is tracked.
type Predicted struct {
	Level            Difficulty
	SelectedPlayerID player.ID
}

func (Predicted) Kind() Kind { return KindPredicted }
func (Predicted) sealed()    {}

func (p Predicted) HasSelectedPlayer() bool {
	return p.SelectedPlayerID != ""
}

func validateType(t Type) error {
	switch v := t.(type) {
	case Club:
		return nil
	case Predicted:
		if _, ok := AllDifficulties[v.Level]; !ok {
			return fmt.Errorf("invalid predicted match difficulty: %s", v.Level)
		}
		return nil
	case nil:
		return fmt.Errorf("match type is required")
	default:
		return fmt.Errorf("unsupported match type: %T", t)
	}
}

// ParseType builds a Type from its flat representation used by storage and transport.
func ParseType(kind Kind, level Difficulty, selectedPlayerID player.ID) (Type, error) {
	switch kind {
	case KindClub:
		return Club{}, nil
	case KindPredicted:
		t := Predicted{Level: level, SelectedPlayerID: selectedPlayerID}
		if err := validateType(t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("invalid match kind: %s", kind)
	}
}
