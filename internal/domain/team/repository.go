package team

import (
	"context"

	"github.com/riskibarqy/penca/internal/domain/league"
)

// Repository describes team read needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID league.ID) ([]Team, error)
	GetByID(ctx context.Context, teamID ID) (Team, bool, error)
}
