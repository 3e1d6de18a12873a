package player

import "context"

// Reader describes the upstream player lookups the use cases need.
type Reader interface {
	ListTeamPlayerStats(ctx context.Context, seasonID, teamID int64) ([]SeasonStats, error)
	GetPlayer(ctx context.Context, playerID string) (Player, error)
}
