package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
)

// CatalogService serves the read-only league, team and player catalog.
type CatalogService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewCatalogService(leagueRepo league.Repository, teamRepo team.Repository, playerRepo player.Repository) *CatalogService {
	return &CatalogService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, recordSpanError(span, fmt.Errorf("%w: list leagues: %w", ErrDependencyUnavailable, err))
	}

	return leagues, nil
}

func (s *CatalogService) ListTeamsByLeague(ctx context.Context, leagueID league.ID) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeamsByLeague")
	defer span.End()

	leagueID = league.ID(strings.TrimSpace(string(leagueID)))
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, recordSpanError(span, fmt.Errorf("%w: get league: %w", ErrDependencyUnavailable, err))
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, recordSpanError(span, fmt.Errorf("%w: list teams by league: %w", ErrDependencyUnavailable, err))
	}

	return teams, nil
}

func (s *CatalogService) ListPlayersByTeam(ctx context.Context, teamID team.ID) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayersByTeam")
	defer span.End()

	teamID = team.ID(strings.TrimSpace(string(teamID)))
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, recordSpanError(span, fmt.Errorf("%w: get team: %w", ErrDependencyUnavailable, err))
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, recordSpanError(span, fmt.Errorf("%w: list players by team: %w", ErrDependencyUnavailable, err))
	}

	return players, nil
}
