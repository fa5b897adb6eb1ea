package match

import (
	"errors"
	"testing"
	"time"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		input   NewInput
		wantErr bool
	}{
		{
			name:  "club match",
			input: NewInput{HomeTeamID: "real-madrid", AwayTeamID: "barcelona", Date: kickoff, Type: Club{}},
		},
		{
			name: "predicted match with selected player",
			input: NewInput{
				HomeTeamID: "argentina",
				AwayTeamID: "francia",
				Date:       kickoff,
				Type:       Predicted{Level: DifficultySpecial, SelectedPlayerID: "messi"},
			},
		},
		{
			name:    "missing type",
			input:   NewInput{HomeTeamID: "real-madrid", AwayTeamID: "barcelona", Date: kickoff},
			wantErr: true,
		},
		{
			name:    "unknown difficulty",
			input:   NewInput{HomeTeamID: "real-madrid", AwayTeamID: "barcelona", Type: Predicted{Level: "HARD"}},
			wantErr: true,
		},
		{
			name:    "same team on both sides",
			input:   NewInput{HomeTeamID: "real-madrid", AwayTeamID: "real-madrid", Type: Club{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(staticIDGenerator{id: "match-1"}, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got match %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Played || got.HomeGoals != 0 || got.AwayGoals != 0 {
				t.Fatalf("expected unplayed match with zero goals, got %+v", got)
			}
			if got.ID != "match-1" {
				t.Fatalf("unexpected match id: %s", got.ID)
			}
		})
	}
}

func TestMatch_RecordResult(t *testing.T) {
	t.Parallel()

	m := Match{ID: "match-1", HomeTeamID: "real-madrid", AwayTeamID: "barcelona", Type: Club{}}
	if err := m.RecordResult(-1, 0); !errors.Is(err, ErrInvalidGoals) {
		t.Fatalf("expected ErrInvalidGoals, got %v", err)
	}
	if m.Played {
		t.Fatalf("invalid result must not mark match as played")
	}

	if err := m.RecordResult(2, 1); err != nil {
		t.Fatalf("record result: %v", err)
	}
	if !m.Played || m.HomeGoals != 2 || m.AwayGoals != 1 {
		t.Fatalf("unexpected match after result: %+v", m)
	}

	if err := m.RecordResult(0, 0); !errors.Is(err, ErrAlreadyPlayed) {
		t.Fatalf("expected ErrAlreadyPlayed, got %v", err)
	}
	if m.HomeGoals != 2 || m.AwayGoals != 1 {
		t.Fatalf("second result must not overwrite goals: %+v", m)
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	club, err := ParseType(KindClub, "", "")
	if err != nil {
		t.Fatalf("parse club: %v", err)
	}
	if club.Kind() != KindClub {
		t.Fatalf("unexpected kind: %s", club.Kind())
	}

	predicted, err := ParseType(KindPredicted, DifficultyComplex, "messi")
	if err != nil {
		t.Fatalf("parse predicted: %v", err)
	}
	p, ok := predicted.(Predicted)
	if !ok {
		t.Fatalf("expected Predicted, got %T", predicted)
	}
	if p.Level != DifficultyComplex || !p.HasSelectedPlayer() {
		t.Fatalf("unexpected predicted type: %+v", p)
	}

	if _, err := ParseType(KindPredicted, "", ""); err == nil {
		t.Fatalf("expected error for predicted match without difficulty")
	}
	if _, err := ParseType("FRIENDLY", "", ""); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestPersistenceFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := PersistenceFailure("save match match-1", cause)
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}
