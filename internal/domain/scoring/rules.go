package scoring

import (
	"fmt"

	"github.com/riskibarqy/penca/internal/domain/match"
)

// Rule is one scoring outcome. The set of implementations is closed.
type Rule interface {
	rule()
}

// ClubOutcome is a club result, optionally against a wildcard team.
type ClubOutcome struct {
	Result     match.Result
	VsWildcard bool
}

// ClubMatchResult scores a team owned by a participant.
type ClubMatchResult struct {
	Outcome ClubOutcome
}

// FriendEvent is something the friend player did in a match.
type FriendEvent string

const (
	FriendGoal   FriendEvent = "GOAL"
	FriendAssist FriendEvent = "ASSIST"
)

// FriendPlayerEvent scores the participant's friend player.
type FriendPlayerEvent struct {
	Event FriendEvent
}

// PredictionOutcome grades a prediction by accuracy and match difficulty.
type PredictionOutcome string

const (
	ExactSimple    PredictionOutcome = "EXACT_SIMPLE"
	GeneralSimple  PredictionOutcome = "GENERAL_SIMPLE"
	ExactComplex   PredictionOutcome = "EXACT_COMPLEX"
	GeneralComplex PredictionOutcome = "GENERAL_COMPLEX"
	ExactSpecial   PredictionOutcome = "EXACT_SPECIAL"
	GeneralSpecial PredictionOutcome = "GENERAL_SPECIAL"
)

// PredictedMatchResult scores a prediction. Exact means the score was hit,
// general means only the outcome was.
type PredictedMatchResult struct {
	Outcome PredictionOutcome
}

// SelectedEvent is something the selected player of a predicted match did.
type SelectedEvent string

const (
	SelectedGoal          SelectedEvent = "GOAL"
	SelectedAssist        SelectedEvent = "ASSIST"
	SelectedYellowCard    SelectedEvent = "YELLOW_CARD"
	SelectedRedCard       SelectedEvent = "RED_CARD"
	SelectedOwnGoal       SelectedEvent = "OWN_GOAL"
	SelectedMissedPenalty SelectedEvent = "MISSED_PENALTY"
)

// SelectedPlayerEvent scores the selected player of a predicted match.
type SelectedPlayerEvent struct {
	Event SelectedEvent
}

func (ClubMatchResult) rule()      {}
func (FriendPlayerEvent) rule()    {}
func (PredictedMatchResult) rule() {}
func (SelectedPlayerEvent) rule()  {}

var (
	AllClubResults = []match.Result{
		match.ResultWin,
		match.ResultDraw,
		match.ResultLoss,
		match.ResultWinByLargeMargin,
		match.ResultLossByLargeMargin,
	}
	AllFriendEvents = []FriendEvent{
		FriendGoal,
		FriendAssist,
	}
	AllPredictionOutcomes = []PredictionOutcome{
		ExactSimple,
		GeneralSimple,
		ExactComplex,
		GeneralComplex,
		ExactSpecial,
		GeneralSpecial,
	}
	AllSelectedEvents = []SelectedEvent{
		SelectedGoal,
		SelectedAssist,
		SelectedYellowCard,
		SelectedRedCard,
		SelectedOwnGoal,
		SelectedMissedPenalty,
	}
)

// Club returns the rule for a plain club result.
func Club(result match.Result) ClubMatchResult {
	return ClubMatchResult{Outcome: ClubOutcome{Result: result}}
}

// VsWildcard returns the rule for a club result against a wildcard team.
func VsWildcard(result match.Result) ClubMatchResult {
	return ClubMatchResult{Outcome: ClubOutcome{Result: result, VsWildcard: true}}
}

// Apply returns the point delta of a rule. It panics on a value outside the table.
func Apply(rule Rule) int {
	switch r := rule.(type) {
	case ClubMatchResult:
		if r.Outcome.VsWildcard {
			return wildcardPoints(r.Outcome.Result)
		}
		return clubPoints(r.Outcome.Result)
	case FriendPlayerEvent:
		return friendPoints(r.Event)
	case PredictedMatchResult:
		return predictionPoints(r.Outcome)
	case SelectedPlayerEvent:
		return selectedPoints(r.Event)
	default:
		panic(fmt.Sprintf("scoring: unmapped rule %T", rule))
	}
}

func clubPoints(result match.Result) int {
	switch result {
	case match.ResultWin:
		return 3
	case match.ResultDraw:
		return 1
	case match.ResultLoss:
		return 0
	case match.ResultWinByLargeMargin:
		return 4
	case match.ResultLossByLargeMargin:
		return -1
	default:
		panic(fmt.Sprintf("scoring: unmapped club result %q", result))
	}
}

func wildcardPoints(result match.Result) int {
	switch result {
	case match.ResultWin:
		return 6
	case match.ResultDraw:
		return 2
	case match.ResultLoss:
		return -3
	case match.ResultWinByLargeMargin:
		return 8
	case match.ResultLossByLargeMargin:
		return -4
	default:
		panic(fmt.Sprintf("scoring: unmapped wildcard result %q", result))
	}
}

func friendPoints(event FriendEvent) int {
	switch event {
	case FriendGoal:
		return 2
	case FriendAssist:
		return 1
	default:
		panic(fmt.Sprintf("scoring: unmapped friend event %q", event))
	}
}

func predictionPoints(outcome PredictionOutcome) int {
	switch outcome {
	case ExactSimple:
		return 10
	case GeneralSimple:
		return 3
	case ExactComplex:
		return 15
	case GeneralComplex:
		return 6
	case ExactSpecial:
		return 20
	case GeneralSpecial:
		return 9
	default:
		panic(fmt.Sprintf("scoring: unmapped prediction outcome %q", outcome))
	}
}

func selectedPoints(event SelectedEvent) int {
	switch event {
	case SelectedGoal:
		return 4
	case SelectedAssist:
		return 2
	case SelectedYellowCard:
		return -1
	case SelectedRedCard:
		return -2
	case SelectedOwnGoal:
		return -4
	case SelectedMissedPenalty:
		return -4
	default:
		panic(fmt.Sprintf("scoring: unmapped selected player event %q", event))
	}
}
