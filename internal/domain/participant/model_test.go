package participant

import (
	"testing"

	"github.com/riskibarqy/penca/internal/domain/team"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	valid := NewInput{
		Name:           "Diego",
		Country:        "Uruguay",
		TeamIDs:        [2]team.ID{"real-madrid", "francia"},
		FriendPlayerID: "valverde",
		Division:       DivisionA,
	}

	tests := []struct {
		name    string
		mutate  func(*NewInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *NewInput) {}},
		{name: "same team twice is accepted", mutate: func(in *NewInput) { in.TeamIDs[1] = in.TeamIDs[0] }},
		{name: "missing name", mutate: func(in *NewInput) { in.Name = "  " }, wantErr: true},
		{name: "missing second team", mutate: func(in *NewInput) { in.TeamIDs[1] = "" }, wantErr: true},
		{name: "missing friend player", mutate: func(in *NewInput) { in.FriendPlayerID = "" }, wantErr: true},
		{name: "unknown division", mutate: func(in *NewInput) { in.Division = "Z" }, wantErr: true},
		{name: "negative matches played", mutate: func(in *NewInput) { in.MatchesPlayed = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			got, err := New(staticIDGenerator{id: "participant-1"}, input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got participant %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != "participant-1" {
				t.Fatalf("unexpected participant id: %s", got.ID)
			}
			if got.TotalScore != 0 {
				t.Fatalf("expected zero total score, got %d", got.TotalScore)
			}
		})
	}
}

func TestParticipant_OwnsTeam(t *testing.T) {
	t.Parallel()

	p := Participant{TeamIDs: [2]team.ID{"barcelona", "argentina"}}
	if !p.OwnsTeam("barcelona") || !p.OwnsTeam("argentina") {
		t.Fatalf("expected participant to own both teams")
	}
	if p.OwnsTeam("real-madrid") {
		t.Fatalf("did not expect participant to own real-madrid")
	}
}
