package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

type StandingsService struct {
	standings standing.Reader
	seasonID  int64
}

func NewStandingsService(standings standing.Reader, seasonID int64) *StandingsService {
	return &StandingsService{standings: standings, seasonID: seasonID}
}

// Table returns the standings of one region. A zero season means the
// configured one.
func (s *StandingsService) Table(ctx context.Context, seasonID int64, division team.Division) (standing.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	if seasonID == 0 {
		seasonID = s.seasonID
	}
	if seasonID <= 0 {
		return standing.Table{}, fmt.Errorf("%w: season id must be > 0", ErrInvalidInput)
	}
	if !division.Valid() {
		return standing.Table{}, fmt.Errorf("%w: region must be North or South", ErrInvalidInput)
	}

	table, err := s.standings.GetStandings(ctx, seasonID, division)
	if err != nil {
		return standing.Table{}, fmt.Errorf("get standings: %w", err)
	}
	return table, nil
}
