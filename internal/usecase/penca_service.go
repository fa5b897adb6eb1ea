package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/participant"
	"github.com/riskibarqy/penca/internal/domain/penca"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/prediction"
	"github.com/riskibarqy/penca/internal/domain/team"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
	"github.com/riskibarqy/penca/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultAggregateWorkers = 4

	aggregateStatusSuccess = "success"
	aggregateStatusSkipped = "skipped"
)

type CreatePencaInput struct {
	Name   string
	Format penca.Format
}

type AddParticipantInput struct {
	PencaID        penca.ID
	Name           string
	Country        string
	TeamIDs        [2]team.ID
	FriendPlayerID player.ID
	Division       participant.Division
}

type ScheduleMatchInput struct {
	PencaID          penca.ID
	HomeTeamID       team.ID
	AwayTeamID       team.ID
	Date             time.Time
	IsFriendly       bool
	Kind             match.Kind
	Level            match.Difficulty
	SelectedPlayerID player.ID
}

type RecordResultInput struct {
	PencaID   penca.ID
	MatchID   match.ID
	HomeGoals int
	AwayGoals int
}

type SubmitPredictionInput struct {
	PencaID            penca.ID
	ParticipantID      participant.ID
	MatchID            match.ID
	ExpectedResult     match.Result
	PredictedHomeGoals int
	PredictedAwayGoals int
}

// PencaView is a point-in-time copy of a pool.
type PencaView struct {
	ID               penca.ID
	Name             string
	Format           penca.Format
	Status           penca.Status
	Participants     []participant.Participant
	Wildcards        []team.ID
	Matches          []match.Match
	Predictions      []prediction.Prediction
	LastAggregatedAt *time.Time
}

type AggregateTaskResult struct {
	PencaID      penca.ID
	Participants int
	Status       string
	Message      string
	DurationMs   int64
}

type AggregateAllResult struct {
	Pools        []AggregateTaskResult
	SuccessCount int
	SkippedCount int
}

type PencaServiceConfig struct {
	AggregateWorkers int
}

type pencaEntry struct {
	mu               sync.Mutex
	penca            *penca.Penca
	lastAggregatedAt time.Time
}

// PencaService owns the in-memory pools. Operations on the same pool are serialized.
type PencaService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	workers    int
	now        func() time.Time

	mu      sync.RWMutex
	entries map[penca.ID]*pencaEntry
	order   []penca.ID
}

func NewPencaService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
	cfg PencaServiceConfig,
) *PencaService {
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.AggregateWorkers
	if workers <= 0 {
		workers = defaultAggregateWorkers
	}

	return &PencaService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		workers:    workers,
		now:        time.Now,
		entries:    make(map[penca.ID]*pencaEntry),
	}
}

func (s *PencaService) CreatePenca(ctx context.Context, input CreatePencaInput) (PencaView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.CreatePenca")
	defer span.End()

	format := penca.Format(strings.ToUpper(strings.TrimSpace(string(input.Format))))
	if format == "" {
		format = penca.FormatTraditional
	}

	item, err := penca.New(s.idGen, input.Name, format)
	if err != nil {
		return PencaView{}, recordSpanError(span, translateDomainError(err))
	}

	// The view is taken before publishing; afterwards the entry belongs to entry.mu.
	entry := &pencaEntry{penca: item}
	view := entry.view()
	s.mu.Lock()
	s.entries[item.ID()] = entry
	s.order = append(s.order, item.ID())
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "penca created", "penca_id", string(view.ID), "format", string(view.Format))
	return view, nil
}

func (s *PencaService) GetPenca(ctx context.Context, pencaID penca.ID) (PencaView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PencaService.GetPenca")
	defer span.End()

	entry, err := s.entry(pencaID)
	if err != nil {
		return PencaView{}, recordSpanError(span, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.view(), nil
}

// ListPencas returns every pool in creation order.
func (s *PencaService) ListPencas(ctx context.Context) ([]PencaView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PencaService.ListPencas")
	defer span.End()

	entries := s.snapshot()
	out := make([]PencaView, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		out = append(out, entry.view())
		entry.mu.Unlock()
	}

	return out, nil
}

func (s *PencaService) SetFormat(ctx context.Context, pencaID penca.ID, format penca.Format) (PencaView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PencaService.SetFormat")
	defer span.End()

	return s.mutate(span, pencaID, func(entry *pencaEntry) error {
		return entry.penca.SetFormat(penca.Format(strings.ToUpper(strings.TrimSpace(string(format)))))
	})
}

func (s *PencaService) SetStatus(ctx context.Context, pencaID penca.ID, status penca.Status) (PencaView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.SetStatus")
	defer span.End()

	view, err := s.mutate(span, pencaID, func(entry *pencaEntry) error {
		return entry.penca.SetStatus(penca.Status(strings.ToUpper(strings.TrimSpace(string(status)))))
	})
	if err != nil {
		return PencaView{}, err
	}

	s.logger.InfoContext(ctx, "penca status changed", "penca_id", string(pencaID), "status", string(view.Status))
	return view, nil
}

// SetWildcards replaces the pool's wildcard teams. Every team must exist in the catalog.
func (s *PencaService) SetWildcards(ctx context.Context, pencaID penca.ID, teamIDs []team.ID) (PencaView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.SetWildcards", attribute.Int("wildcards", len(teamIDs)))
	defer span.End()

	resolved := make([]team.ID, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		item, err := s.resolveTeam(ctx, teamID)
		if err != nil {
			return PencaView{}, recordSpanError(span, err)
		}
		resolved = append(resolved, item.ID)
	}

	return s.mutate(span, pencaID, func(entry *pencaEntry) error {
		return entry.penca.SetWildcards(resolved)
	})
}

func (s *PencaService) AddParticipant(ctx context.Context, input AddParticipantInput) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.AddParticipant")
	defer span.End()

	entry, err := s.entry(input.PencaID)
	if err != nil {
		return participant.Participant{}, recordSpanError(span, err)
	}

	for _, teamID := range input.TeamIDs {
		if _, err := s.resolveTeam(ctx, teamID); err != nil {
			return participant.Participant{}, recordSpanError(span, err)
		}
	}
	if _, err := s.resolvePlayer(ctx, input.FriendPlayerID); err != nil {
		return participant.Participant{}, recordSpanError(span, err)
	}

	division := participant.Division(strings.ToUpper(strings.TrimSpace(string(input.Division))))
	item, err := participant.New(s.idGen, participant.NewInput{
		Name:           input.Name,
		Country:        input.Country,
		TeamIDs:        input.TeamIDs,
		FriendPlayerID: input.FriendPlayerID,
		Division:       division,
	})
	if err != nil {
		return participant.Participant{}, recordSpanError(span, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.penca.AddParticipant(item); err != nil {
		return participant.Participant{}, recordSpanError(span, translateDomainError(err))
	}

	s.logger.InfoContext(ctx, "participant joined penca", "penca_id", string(input.PencaID), "participant_id", string(item.ID))
	return item, nil
}

// ScheduleMatch persists a new match and then appends it to the pool.
func (s *PencaService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.ScheduleMatch")
	defer span.End()

	entry, err := s.entry(input.PencaID)
	if err != nil {
		return match.Match{}, recordSpanError(span, err)
	}

	for _, teamID := range []team.ID{input.HomeTeamID, input.AwayTeamID} {
		if _, err := s.resolveTeam(ctx, teamID); err != nil {
			return match.Match{}, recordSpanError(span, err)
		}
	}
	if input.SelectedPlayerID != "" {
		if _, err := s.resolvePlayer(ctx, input.SelectedPlayerID); err != nil {
			return match.Match{}, recordSpanError(span, err)
		}
	}

	kind := match.Kind(strings.ToUpper(strings.TrimSpace(string(input.Kind))))
	level := match.Difficulty(strings.ToUpper(strings.TrimSpace(string(input.Level))))
	matchType, err := match.ParseType(kind, level, input.SelectedPlayerID)
	if err != nil {
		return match.Match{}, recordSpanError(span, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	item, err := match.New(s.idGen, match.NewInput{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
		IsFriendly: input.IsFriendly,
		Type:       matchType,
	})
	if err != nil {
		return match.Match{}, recordSpanError(span, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, recordSpanError(span, translateDomainError(err))
	}
	entry.penca.AddMatch(item)

	s.logger.InfoContext(ctx, "match scheduled",
		"penca_id", string(input.PencaID),
		"match_id", string(item.ID),
		"kind", string(item.Kind()),
	)
	return item, nil
}

// RecordResult stores the final score in the repository first, then on the pool copy.
func (s *PencaService) RecordResult(ctx context.Context, input RecordResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.RecordResult")
	defer span.End()

	entry, err := s.entry(input.PencaID)
	if err != nil {
		return match.Match{}, recordSpanError(span, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, ok := entry.penca.Match(input.MatchID); !ok {
		return match.Match{}, recordSpanError(span, fmt.Errorf("%w: penca=%s match=%s", ErrNotFound, input.PencaID, input.MatchID))
	}

	stored, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, recordSpanError(span, translateDomainError(err))
	}
	if !exists {
		return match.Match{}, recordSpanError(span, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID))
	}
	if err := stored.RecordResult(input.HomeGoals, input.AwayGoals); err != nil {
		return match.Match{}, recordSpanError(span, translateDomainError(err))
	}
	if err := s.matchRepo.Save(ctx, stored); err != nil {
		return match.Match{}, recordSpanError(span, translateDomainError(err))
	}

	out, err := entry.penca.RecordResult(input.MatchID, input.HomeGoals, input.AwayGoals)
	if err != nil {
		return match.Match{}, recordSpanError(span, translateDomainError(err))
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"penca_id", string(input.PencaID),
		"match_id", string(out.ID),
		"home_goals", out.HomeGoals,
		"away_goals", out.AwayGoals,
	)
	return out, nil
}

func (s *PencaService) SubmitPrediction(ctx context.Context, input SubmitPredictionInput) (prediction.Prediction, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PencaService.SubmitPrediction")
	defer span.End()

	entry, err := s.entry(input.PencaID)
	if err != nil {
		return prediction.Prediction{}, recordSpanError(span, err)
	}

	item := prediction.Prediction{
		ParticipantID:      input.ParticipantID,
		MatchID:            input.MatchID,
		ExpectedResult:     match.Result(strings.ToUpper(strings.TrimSpace(string(input.ExpectedResult)))),
		PredictedHomeGoals: input.PredictedHomeGoals,
		PredictedAwayGoals: input.PredictedAwayGoals,
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.penca.AddPrediction(item); err != nil {
		return prediction.Prediction{}, recordSpanError(span, translateDomainError(err))
	}

	return item, nil
}

// Aggregate runs the score engine once for the pool and returns the standings.
// Running it again adds the same deltas again.
func (s *PencaService) Aggregate(ctx context.Context, pencaID penca.ID) ([]participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.Aggregate", attribute.String("penca_id", string(pencaID)))
	defer span.End()

	entry, err := s.entry(pencaID)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	s.aggregateLocked(entry)

	s.logger.InfoContext(ctx, "penca aggregated", "penca_id", string(pencaID), "participants", len(entry.penca.Participants()))
	return entry.penca.Standings(), nil
}

// AggregateAll aggregates every pool on a bounded worker pool.
func (s *PencaService) AggregateAll(ctx context.Context) (AggregateAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PencaService.AggregateAll")
	defer span.End()

	entries := s.snapshot()
	result := AggregateAllResult{Pools: make([]AggregateTaskResult, len(entries))}
	if len(entries) == 0 {
		return result, nil
	}

	workerCount := s.workers
	if workerCount > len(entries) {
		workerCount = len(entries)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return AggregateAllResult{}, recordSpanError(span, fmt.Errorf("create worker pool: %w", err))
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, entry := range entries {
		idx := i
		current := entry
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			result.Pools[idx] = s.aggregateTask(ctx, current)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return AggregateAllResult{}, recordSpanError(span, fmt.Errorf("submit task to worker pool: %w", err))
		}
	}
	workers.Wait()

	for _, item := range result.Pools {
		switch item.Status {
		case aggregateStatusSuccess:
			result.SuccessCount++
		default:
			result.SkippedCount++
		}
	}

	s.logger.InfoContext(ctx, "aggregate all completed",
		"pencas", len(entries),
		"success", result.SuccessCount,
		"skipped", result.SkippedCount,
	)
	return result, nil
}

func (s *PencaService) Standings(ctx context.Context, pencaID penca.ID) ([]participant.Participant, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PencaService.Standings")
	defer span.End()

	entry, err := s.entry(pencaID)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.penca.Standings(), nil
}

func (s *PencaService) aggregateTask(ctx context.Context, entry *pencaEntry) AggregateTaskResult {
	startedAt := s.now()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	out := AggregateTaskResult{
		PencaID:      entry.penca.ID(),
		Participants: len(entry.penca.Participants()),
	}
	if err := ctx.Err(); err != nil {
		out.Status = aggregateStatusSkipped
		out.Message = err.Error()
		return out
	}

	s.aggregateLocked(entry)
	out.Status = aggregateStatusSuccess
	out.DurationMs = s.now().Sub(startedAt).Milliseconds()
	return out
}

func (s *PencaService) aggregateLocked(entry *pencaEntry) {
	entry.penca.Aggregate()
	entry.lastAggregatedAt = s.now().UTC()
}

func (s *PencaService) mutate(span trace.Span, pencaID penca.ID, fn func(entry *pencaEntry) error) (PencaView, error) {
	entry, err := s.entry(pencaID)
	if err != nil {
		return PencaView{}, recordSpanError(span, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := fn(entry); err != nil {
		return PencaView{}, recordSpanError(span, translateDomainError(err))
	}

	return entry.view(), nil
}

func (s *PencaService) entry(pencaID penca.ID) (*pencaEntry, error) {
	pencaID = penca.ID(strings.TrimSpace(string(pencaID)))
	if pencaID == "" {
		return nil, fmt.Errorf("%w: penca id is required", ErrInvalidInput)
	}

	s.mu.RLock()
	entry, ok := s.entries[pencaID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: penca=%s", ErrNotFound, pencaID)
	}

	return entry, nil
}

func (s *PencaService) snapshot() []*pencaEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*pencaEntry, 0, len(s.order))
	for _, pencaID := range s.order {
		out = append(out, s.entries[pencaID])
	}
	return out
}

func (s *PencaService) resolveTeam(ctx context.Context, teamID team.ID) (team.Team, error) {
	teamID = team.ID(strings.TrimSpace(string(teamID)))
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: get team: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *PencaService) resolvePlayer(ctx context.Context, playerID player.ID) (player.Player, error) {
	playerID = player.ID(strings.TrimSpace(string(playerID)))
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: get player: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (e *pencaEntry) view() PencaView {
	out := PencaView{
		ID:           e.penca.ID(),
		Name:         e.penca.Name(),
		Format:       e.penca.Format(),
		Status:       e.penca.Status(),
		Participants: e.penca.Participants(),
		Wildcards:    e.penca.Wildcards(),
		Matches:      e.penca.Matches(),
		Predictions:  e.penca.Predictions(),
	}
	if !e.lastAggregatedAt.IsZero() {
		at := e.lastAggregatedAt
		out.LastAggregatedAt = &at
	}
	return out
}

