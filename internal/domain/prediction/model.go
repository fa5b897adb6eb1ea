package prediction

import (
	"fmt"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/participant"
)

// Prediction is a participant's guess for a predicted match.
type Prediction struct {
	ParticipantID      participant.ID
	MatchID            match.ID
	ExpectedResult     match.Result
	PredictedHomeGoals int
	PredictedAwayGoals int
}

func (p Prediction) Validate() error {
	if p.ParticipantID == "" {
		return fmt.Errorf("prediction participant id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if _, ok := match.AllResults[p.ExpectedResult]; !ok {
		return fmt.Errorf("invalid prediction expected result: %s", p.ExpectedResult)
	}
	if p.PredictedHomeGoals < 0 || p.PredictedAwayGoals < 0 {
		return fmt.Errorf("predicted goals cannot be negative")
	}

	return nil
}
