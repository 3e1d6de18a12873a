package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
)

const DefaultRecentSlotSize = 20

type GamesService struct {
	games     game.Reader
	directory TeamDirectory
}

func NewGamesService(games game.Reader, directory TeamDirectory) *GamesService {
	return &GamesService{games: games, directory: directory}
}

// Recent lists recent and upcoming games from both regions. Team names
// missing upstream come from the registry.
func (s *GamesService) Recent(ctx context.Context, slotSize int) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GamesService.Recent")
	defer span.End()

	if slotSize == 0 {
		slotSize = DefaultRecentSlotSize
	}
	items, err := s.games.ListRecentGames(ctx, slotSize)
	if err != nil {
		return nil, fmt.Errorf("list recent games: %w", err)
	}

	out := make([]game.Game, len(items))
	for i, g := range items {
		if g.HomeName == "" || g.HomeName == player.Missing {
			g.HomeName = s.directory.Name(g.HomeTeamID)
		}
		if g.GuestName == "" || g.GuestName == player.Missing {
			g.GuestName = s.directory.Name(g.GuestTeamID)
		}
		out[i] = g
	}
	return out, nil
}
