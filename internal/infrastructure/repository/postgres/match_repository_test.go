package postgres

import (
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/penca/internal/domain/match"
)

func TestBuildGetMatchQuery(t *testing.T) {
	query, args, err := buildGetMatchQuery("m1")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT " + strings.Join(matchColumns, ", ") + " FROM matches WHERE public_id = $1 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBuildUpsertMatchQuery(t *testing.T) {
	item := match.Match{
		ID:         "m1",
		HomeTeamID: "real-madrid",
		AwayTeamID: "barcelona",
		HomeGoals:  2,
		AwayGoals:  1,
		Date:       time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		Type:       match.Predicted{Level: match.DifficultySpecial, SelectedPlayerID: "lionel-messi"},
		Played:     true,
	}

	query, args, err := buildUpsertMatchQuery(item)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantPrefix := "INSERT INTO matches (public_id, home_team_public_id, away_team_public_id, home_goals, away_goals, kickoff_at, is_friendly, kind, difficulty, selected_player_public_id, played) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) ON CONFLICT (public_id) DO UPDATE SET "
	if !strings.HasPrefix(query, wantPrefix) {
		t.Fatalf("unexpected query:\nwant prefix: %s\ngot:         %s", wantPrefix, query)
	}
	if len(args) != 11 {
		t.Fatalf("expected 11 args, got %d", len(args))
	}
	if args[7] != "PREDICTED" {
		t.Fatalf("unexpected kind arg: %v", args[7])
	}
	if got := args[9].(sql.NullString); !got.Valid || got.String != "lionel-messi" {
		t.Fatalf("unexpected selected player arg: %+v", got)
	}
}

func TestMatchTableModel_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		item match.Match
	}{
		{
			name: "club",
			item: match.Match{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", Type: match.Club{}, IsFriendly: true},
		},
		{
			name: "predicted without selected player",
			item: match.Match{ID: "m2", HomeTeamID: "a", AwayTeamID: "b", Type: match.Predicted{Level: match.DifficultySimple}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, err := toMatchTableModel(tc.item)
			if err != nil {
				t.Fatalf("to table model: %v", err)
			}
			got, err := row.toDomain()
			if err != nil {
				t.Fatalf("to domain: %v", err)
			}
			if got.ID != tc.item.ID || got.Type != tc.item.Type || got.IsFriendly != tc.item.IsFriendly {
				t.Fatalf("round trip mismatch: got %+v want %+v", got, tc.item)
			}
		})
	}
}

func TestMatchTableModel_RejectsUnknownKind(t *testing.T) {
	row := matchTableModel{PublicID: "m1", Kind: "KNOCKOUT"}
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if _, err := toMatchTableModel(match.Match{ID: "m1"}); err == nil {
		t.Fatalf("expected error for missing type")
	}
}

func TestMatchesMigration_PredictedSelectedPlayerOptional(t *testing.T) {
	raw, err := os.ReadFile("../../../../db/migrations/1771776120_create_matches.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	schema := string(raw)
	start := strings.Index(schema, "CONSTRAINT chk_matches_predicted")
	if start < 0 {
		t.Fatalf("chk_matches_predicted not found")
	}
	check := schema[start:]
	predicted, club, ok := strings.Cut(check, " OR ")
	if !ok {
		t.Fatalf("unexpected constraint shape: %s", check)
	}
	if strings.Contains(predicted, "selected_player_public_id") {
		t.Fatalf("predicted branch must not constrain the selected player: %s", predicted)
	}
	if !strings.Contains(predicted, "difficulty IS NOT NULL") {
		t.Fatalf("predicted branch must require difficulty: %s", predicted)
	}
	if !strings.Contains(club, "selected_player_public_id IS NULL") || !strings.Contains(club, "difficulty IS NULL") {
		t.Fatalf("club branch must keep null checks: %s", club)
	}

	row, err := toMatchTableModel(match.Match{ID: "m3", HomeTeamID: "a", AwayTeamID: "b", Type: match.Predicted{Level: match.DifficultySimple}})
	if err != nil {
		t.Fatalf("to table model: %v", err)
	}
	if row.Kind != "PREDICTED" || !row.Difficulty.Valid || row.SelectedPlayerID.Valid {
		t.Fatalf("unexpected predicted row: %+v", row)
	}
}
