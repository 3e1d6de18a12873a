package team

import "context"

// Reader describes the upstream team lookups the use cases need.
type Reader interface {
	GetTeam(ctx context.Context, seasonID, teamID int64) (Team, error)
	GetTeamSeasonStats(ctx context.Context, seasonID, teamID int64) (SeasonStats, error)
}
