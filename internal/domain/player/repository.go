package player

import (
	"context"

	"github.com/riskibarqy/penca/internal/domain/team"
)

// Repository describes player read needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID team.ID) ([]Player, error)
	GetByID(ctx context.Context, playerID ID) (Player, bool, error)
}
