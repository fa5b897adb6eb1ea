package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/penca/internal/domain/match"
	qb "github.com/riskibarqy/penca/internal/platform/querybuilder"
)

const upsertMatchSuffix = "ON CONFLICT (public_id) DO UPDATE SET " +
	"home_team_public_id = EXCLUDED.home_team_public_id, " +
	"away_team_public_id = EXCLUDED.away_team_public_id, " +
	"home_goals = EXCLUDED.home_goals, " +
	"away_goals = EXCLUDED.away_goals, " +
	"kickoff_at = EXCLUDED.kickoff_at, " +
	"is_friendly = EXCLUDED.is_friendly, " +
	"kind = EXCLUDED.kind, " +
	"difficulty = EXCLUDED.difficulty, " +
	"selected_player_public_id = EXCLUDED.selected_player_public_id, " +
	"played = EXCLUDED.played, " +
	"updated_at = NOW(), " +
	"deleted_at = NULL"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func buildGetMatchQuery(matchID match.ID) (string, []any, error) {
	return qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("public_id", string(matchID)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func buildUpsertMatchQuery(item match.Match) (string, []any, error) {
	row, err := toMatchTableModel(item)
	if err != nil {
		return "", nil, err
	}
	return qb.InsertModel("matches", row, upsertMatchSuffix)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID match.ID) (match.Match, bool, error) {
	query, args, err := buildGetMatchQuery(matchID)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, match.PersistenceFailure("get match", crerr.Wrapf(err, "public_id=%s", matchID))
	}

	item, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, match.PersistenceFailure("get match", err)
	}
	return item, true, nil
}

func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	query, args, err := buildUpsertMatchQuery(item)
	if err != nil {
		return match.PersistenceFailure("save match", crerr.Wrap(err, "build upsert match query"))
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		wrapped := crerr.Wrapf(err, "public_id=%s", item.ID)
		if isBindParameterMismatch(err) {
			wrapped = crerr.WithHint(wrapped, "set DB_DISABLE_PREPARED_BINARY_RESULT=true when running behind a transaction pooler")
		}
		return match.PersistenceFailure("save match", wrapped)
	}
	return nil
}
