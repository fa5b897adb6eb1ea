package scoring

import (
	"testing"

	"github.com/riskibarqy/penca/internal/domain/match"
)

func TestApply_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule Rule
		want int
	}{
		{name: "club win", rule: Club(match.ResultWin), want: 3},
		{name: "club draw", rule: Club(match.ResultDraw), want: 1},
		{name: "club loss", rule: Club(match.ResultLoss), want: 0},
		{name: "club large win", rule: Club(match.ResultWinByLargeMargin), want: 4},
		{name: "club large loss", rule: Club(match.ResultLossByLargeMargin), want: -1},
		{name: "wildcard win", rule: VsWildcard(match.ResultWin), want: 6},
		{name: "wildcard draw", rule: VsWildcard(match.ResultDraw), want: 2},
		{name: "wildcard loss", rule: VsWildcard(match.ResultLoss), want: -3},
		{name: "wildcard large win", rule: VsWildcard(match.ResultWinByLargeMargin), want: 8},
		{name: "wildcard large loss", rule: VsWildcard(match.ResultLossByLargeMargin), want: -4},
		{name: "friend goal", rule: FriendPlayerEvent{Event: FriendGoal}, want: 2},
		{name: "friend assist", rule: FriendPlayerEvent{Event: FriendAssist}, want: 1},
		{name: "exact simple", rule: PredictedMatchResult{Outcome: ExactSimple}, want: 10},
		{name: "general simple", rule: PredictedMatchResult{Outcome: GeneralSimple}, want: 3},
		{name: "exact complex", rule: PredictedMatchResult{Outcome: ExactComplex}, want: 15},
		{name: "general complex", rule: PredictedMatchResult{Outcome: GeneralComplex}, want: 6},
		{name: "exact special", rule: PredictedMatchResult{Outcome: ExactSpecial}, want: 20},
		{name: "general special", rule: PredictedMatchResult{Outcome: GeneralSpecial}, want: 9},
		{name: "selected goal", rule: SelectedPlayerEvent{Event: SelectedGoal}, want: 4},
		{name: "selected assist", rule: SelectedPlayerEvent{Event: SelectedAssist}, want: 2},
		{name: "selected yellow", rule: SelectedPlayerEvent{Event: SelectedYellowCard}, want: -1},
		{name: "selected red", rule: SelectedPlayerEvent{Event: SelectedRedCard}, want: -2},
		{name: "selected own goal", rule: SelectedPlayerEvent{Event: SelectedOwnGoal}, want: -4},
		{name: "selected missed penalty", rule: SelectedPlayerEvent{Event: SelectedMissedPenalty}, want: -4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Apply(tc.rule); got != tc.want {
				t.Fatalf("Apply(%+v) = %d, want %d", tc.rule, got, tc.want)
			}
		})
	}
}

func TestApply_EveryVariantIsMapped(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()

	for _, result := range AllClubResults {
		_ = Apply(Club(result))
		_ = Apply(VsWildcard(result))
	}
	for _, event := range AllFriendEvents {
		_ = Apply(FriendPlayerEvent{Event: event})
	}
	for _, outcome := range AllPredictionOutcomes {
		_ = Apply(PredictedMatchResult{Outcome: outcome})
	}
	for _, event := range AllSelectedEvents {
		_ = Apply(SelectedPlayerEvent{Event: event})
	}

	if len(AllClubResults) != len(match.AllResults) {
		t.Fatalf("club results list has %d entries, match results has %d", len(AllClubResults), len(match.AllResults))
	}
}

func TestApply_WildcardDoublesPositiveResults(t *testing.T) {
	t.Parallel()

	for _, result := range AllClubResults {
		plain := Apply(Club(result))
		wild := Apply(VsWildcard(result))
		if result == match.ResultWin || result == match.ResultDraw || result == match.ResultWinByLargeMargin {
			if wild != plain*2 {
				t.Fatalf("wildcard %s = %d, want double of %d", result, wild, plain)
			}
		}
	}
}

func TestApply_PanicsOnUnmappedValue(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unmapped result")
		}
	}()
	_ = Apply(Club(match.Result("FORFEIT")))
}
