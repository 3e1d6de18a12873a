package standing

import (
	"context"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

type Reader interface {
	GetStandings(ctx context.Context, seasonID int64, division team.Division) (Table, error)
}
