package redis

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	goredis "github.com/go-redis/redis/v8"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	"github.com/riskibarqy/penca/internal/platform/logging"
	"github.com/riskibarqy/penca/internal/platform/resilience"
)

// client is the subset of *goredis.Client the repository uses.
type client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

type matchRecord struct {
	ID               string    `json:"id"`
	HomeTeamID       string    `json:"home_team_id"`
	AwayTeamID       string    `json:"away_team_id"`
	HomeGoals        int       `json:"home_goals"`
	AwayGoals        int       `json:"away_goals"`
	Date             time.Time `json:"date"`
	IsFriendly       bool      `json:"is_friendly"`
	Kind             string    `json:"kind"`
	Difficulty       string    `json:"difficulty,omitempty"`
	SelectedPlayerID string    `json:"selected_player_id,omitempty"`
	Played           bool      `json:"played"`
}

// MatchRepository stores matches as JSON strings under <prefix>:match:<id>.
type MatchRepository struct {
	client  client
	prefix  string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

// NewMatchRepository guards every call with breaker. A nil breaker disables the guard.
func NewMatchRepository(c client, prefix string, breaker *resilience.CircuitBreaker, logger *logging.Logger) *MatchRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchRepository{
		client:  c,
		prefix:  prefix,
		breaker: breaker,
		logger:  logger,
	}
}

func (r *MatchRepository) key(matchID match.ID) string {
	if r.prefix == "" {
		return "match:" + string(matchID)
	}
	return r.prefix + ":match:" + string(matchID)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID match.ID) (match.Match, bool, error) {
	key := r.key(matchID)

	var payload string
	found := true
	err := r.breaker.Execute(func() error {
		value, err := r.client.Get(ctx, key).Result()
		if errors.Is(err, goredis.Nil) {
			found = false
			return nil
		}
		payload = value
		return err
	})
	if err != nil {
		r.logger.WarnContext(ctx, "redis get match failed", "key", key, "error", err)
		return match.Match{}, false, match.PersistenceFailure("get match", crerr.Wrapf(err, "redis get %s", key))
	}
	if !found {
		return match.Match{}, false, nil
	}

	item, err := decodeMatch(payload)
	if err != nil {
		return match.Match{}, false, match.PersistenceFailure("get match", crerr.Wrapf(err, "decode %s", key))
	}
	return item, true, nil
}

func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	payload, err := encodeMatch(item)
	if err != nil {
		return match.PersistenceFailure("save match", err)
	}

	key := r.key(item.ID)
	err = r.breaker.Execute(func() error {
		return r.client.Set(ctx, key, payload, 0).Err()
	})
	if err != nil {
		r.logger.WarnContext(ctx, "redis save match failed", "key", key, "error", err)
		return match.PersistenceFailure("save match", crerr.Wrapf(err, "redis set %s", key))
	}
	return nil
}

func encodeMatch(item match.Match) (string, error) {
	if item.ID == "" {
		return "", crerr.New("match id is required")
	}

	record := matchRecord{
		ID:         string(item.ID),
		HomeTeamID: string(item.HomeTeamID),
		AwayTeamID: string(item.AwayTeamID),
		HomeGoals:  item.HomeGoals,
		AwayGoals:  item.AwayGoals,
		Date:       item.Date.UTC(),
		IsFriendly: item.IsFriendly,
		Played:     item.Played,
	}
	switch t := item.Type.(type) {
	case match.Club:
		record.Kind = string(match.KindClub)
	case match.Predicted:
		record.Kind = string(match.KindPredicted)
		record.Difficulty = string(t.Level)
		record.SelectedPlayerID = string(t.SelectedPlayerID)
	default:
		return "", crerr.Newf("unsupported match type %T", item.Type)
	}

	out, err := sonic.MarshalString(record)
	if err != nil {
		return "", crerr.Wrap(err, "marshal match")
	}
	return out, nil
}

func decodeMatch(payload string) (match.Match, error) {
	var record matchRecord
	if err := sonic.UnmarshalString(payload, &record); err != nil {
		return match.Match{}, crerr.Wrap(err, "unmarshal match")
	}

	matchType, err := match.ParseType(match.Kind(record.Kind), match.Difficulty(record.Difficulty), player.ID(record.SelectedPlayerID))
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:         match.ID(record.ID),
		HomeTeamID: team.ID(record.HomeTeamID),
		AwayTeamID: team.ID(record.AwayTeamID),
		HomeGoals:  record.HomeGoals,
		AwayGoals:  record.AwayGoals,
		Date:       record.Date,
		IsFriendly: record.IsFriendly,
		Type:       matchType,
		Played:     record.Played,
	}, nil
}
