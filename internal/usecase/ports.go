package usecase

import (
	"context"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

// LogoResolver lists logo URLs for a team, best candidate first.
type LogoResolver interface {
	LogoCandidates(seasonID, teamID int64) []string
}

// ImageInliner turns remote image URLs into self-contained data URIs.
type ImageInliner interface {
	Inline(ctx context.Context, src string) string
	InlineFirst(ctx context.Context, candidates []string) string
}

// TeamDirectory is the compiled-in team registry.
type TeamDirectory interface {
	Lookup(teamID int64) (team.Team, bool)
	Name(teamID int64) string
	All() []team.Team
}
