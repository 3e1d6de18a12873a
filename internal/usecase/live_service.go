package usecase

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/render"
)

type LiveView struct {
	Box     game.Boxscore
	Notices []string
}

// LiveService serves the scoreboard that clients reload every 15 seconds.
// Both upstream calls sit in the 10 second cache class, so a reload costs at
// most one fetch each.
type LiveService struct {
	games     game.Reader
	directory TeamDirectory
	logger    *logging.Logger
}

func NewLiveService(games game.Reader, directory TeamDirectory, logger *logging.Logger) *LiveService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveService{games: games, directory: directory, logger: logger.Named("live")}
}

func (s *LiveService) Scoreboard(ctx context.Context, gameID string) (LiveView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveService.Scoreboard")
	defer span.End()

	gameID = player.CanonicalID(gameID)
	if gameID == "" {
		return LiveView{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	box, err := s.games.GetBoxscore(ctx, gameID)
	if err != nil {
		return LiveView{}, fmt.Errorf("get boxscore: %w", err)
	}

	var notices []string
	details, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		s.logger.WarnContext(ctx, "game details unavailable", "game_id", gameID, "error", err)
		notices = append(notices, fmt.Sprintf("Spieldetails nicht verfügbar (%s)", reason(err)))
	} else {
		box = box.Merge(details)
	}
	box = box.InferStatus()

	box.Home.Name = s.teamName(box.Home.Name, box.Home.TeamID, details.HomeName)
	box.Guest.Name = s.teamName(box.Guest.Name, box.Guest.TeamID, details.GuestName)
	return LiveView{Box: box, Notices: notices}, nil
}

func (s *LiveService) Page(ctx context.Context, gameID string) (templ.Component, error) {
	view, err := s.Scoreboard(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return render.Live(view.Box, view.Notices), nil
}

func (s *LiveService) teamName(current string, teamID int64, fromDetails string) string {
	switch {
	case current != "" && current != player.Missing:
		return current
	case fromDetails != "" && fromDetails != player.Missing:
		return fromDetails
	case s.directory != nil && s.directory.Name(teamID) != "":
		return s.directory.Name(teamID)
	default:
		return player.Missing
	}
}
