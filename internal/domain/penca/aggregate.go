package penca

import (
	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/scoring"
)

// Aggregate adds the points of every played match to the participants' totals.
// Matches are walked in order and the walk stops at the first unplayed match.
// Calling it twice applies every played match twice.
func (p *Penca) Aggregate() {
	for _, item := range p.matches {
		if !item.Played {
			break
		}

		switch t := item.Type.(type) {
		case match.Club:
			p.scoreClubMatch(item)
		case match.Predicted:
			scorePredictedMatch(t)
		}
	}
}

// scoreClubMatch credits the home side with a win and the away side with a loss.
// Goals are not compared.
func (p *Penca) scoreClubMatch(item match.Match) {
	homeRule := scoring.Club(match.ResultWin)
	if p.IsWildcard(item.AwayTeamID) {
		homeRule = scoring.VsWildcard(match.ResultWin)
	}
	awayRule := scoring.Club(match.ResultLoss)
	if p.IsWildcard(item.HomeTeamID) {
		awayRule = scoring.VsWildcard(match.ResultLoss)
	}

	for i := range p.participants {
		if p.participants[i].OwnsTeam(item.HomeTeamID) {
			p.participants[i].TotalScore += scoring.Apply(homeRule)
		}
		if p.participants[i].OwnsTeam(item.AwayTeamID) {
			p.participants[i].TotalScore += scoring.Apply(awayRule)
		}
	}
}

// scorePredictedMatch awards nothing yet for any difficulty.
func scorePredictedMatch(t match.Predicted) {
	switch t.Level {
	case match.DifficultySimple:
	case match.DifficultyComplex:
	case match.DifficultySpecial:
	}
}
