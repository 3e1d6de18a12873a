package game

import "context"

// Reader describes the upstream game lookups the use cases need.
type Reader interface {
	GetGame(ctx context.Context, gameID string) (Game, error)
	GetBoxscore(ctx context.Context, gameID string) (Boxscore, error)
	ListRecentGames(ctx context.Context, slotSize int) ([]Game, error)
}
