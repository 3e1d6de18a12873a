package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/render"
)

// StartingFiveSize is the maximum number of players on the lineup bar.
const StartingFiveSize = 5

type StartingFiveRequest struct {
	TeamName   string
	Coach      string
	LogoTeamID int64
	PlayerIDs  []string
	// Names and Numbers are keyed by player id.
	Names      map[string]string
	Numbers    map[string]string
}

type ComparisonRequest struct {
	HomeTeamID  int64
	GuestTeamID int64
	HomeName    string
	GuestName   string
}

// OverlayService feeds the broadcast overlays. Upstream failures are shown on
// the overlay instead of failing the page, because the source keeps reloading.
type OverlayService struct {
	teams     team.Reader
	players   player.Reader
	standings *StandingsService
	live      *LiveService
	logos     LogoResolver
	images    ImageInliner
	directory TeamDirectory
	seasonID  int64
	logger    *logging.Logger
}

func NewOverlayService(
	teams team.Reader,
	players player.Reader,
	standings *StandingsService,
	live *LiveService,
	logos LogoResolver,
	images ImageInliner,
	directory TeamDirectory,
	seasonID int64,
	logger *logging.Logger,
) *OverlayService {
	if logger == nil {
		logger = logging.Default()
	}
	return &OverlayService{
		teams:     teams,
		players:   players,
		standings: standings,
		live:      live,
		logos:     logos,
		images:    images,
		directory: directory,
		seasonID:  seasonID,
		logger:    logger.Named("overlay"),
	}
}

func (s *OverlayService) StartingFive(ctx context.Context, req StartingFiveRequest) (templ.Component, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverlayService.StartingFive")
	defer span.End()

	if len(req.PlayerIDs) == 0 || len(req.PlayerIDs) > StartingFiveSize {
		return nil, fmt.Errorf("%w: between 1 and %d player ids are required", ErrInvalidInput, StartingFiveSize)
	}

	view := render.StartingFive{
		TeamName: strings.TrimSpace(req.TeamName),
		Coach:    strings.TrimSpace(req.Coach),
		Players:  make([]render.LineupSlot, 0, len(req.PlayerIDs)),
	}
	if req.LogoTeamID > 0 {
		view.LogoURI = s.images.InlineFirst(ctx, s.logos.LogoCandidates(s.seasonID, req.LogoTeamID))
		if view.TeamName == "" && s.directory != nil {
			view.TeamName = s.directory.Name(req.LogoTeamID)
		}
	}

	for _, raw := range req.PlayerIDs {
		id := player.CanonicalID(raw)
		slot := render.LineupSlot{PlayerID: id, Name: req.Names[id], Number: req.Numbers[id]}
		if slot.Name == "" || slot.Number == "" {
			if p, err := s.players.GetPlayer(ctx, id); err == nil {
				if slot.Name == "" {
					slot.Name = p.FullName()
				}
				if slot.Number == "" {
					slot.Number = p.ShirtNumber
				}
			} else {
				s.logger.DebugContext(ctx, "lineup player lookup failed", "player_id", id, "error", err)
			}
		}
		if slot.Name == "" {
			slot.Name = player.Missing
		}
		view.Players = append(view.Players, slot)
	}
	return render.StartingFiveOverlay(view), nil
}

func (s *OverlayService) Standings(ctx context.Context, seasonID int64, division team.Division) (templ.Component, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverlayService.Standings")
	defer span.End()

	if seasonID == 0 {
		seasonID = s.seasonID
	}
	title := fmt.Sprintf("Tabelle %s %d", divisionTitle(division), seasonID)

	table, err := s.standings.Table(ctx, seasonID, division)
	if err != nil {
		if isInvalid(err) {
			return nil, err
		}
		return render.StandingsOverlay(title, standing.Table{}, []string{"Tabelle nicht verfügbar (" + reason(err) + ")"}), nil
	}
	return render.StandingsOverlay(title, table, nil), nil
}

func (s *OverlayService) Comparison(ctx context.Context, req ComparisonRequest) (templ.Component, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverlayService.Comparison")
	defer span.End()

	if req.HomeTeamID <= 0 || req.GuestTeamID <= 0 {
		return nil, fmt.Errorf("%w: home and guest team ids must be > 0", ErrInvalidInput)
	}

	var notices []string
	home := s.comparisonSide(ctx, req.HomeTeamID, req.HomeName, &notices)
	guest := s.comparisonSide(ctx, req.GuestTeamID, req.GuestName, &notices)
	return render.ComparisonOverlay(home, guest, notices), nil
}

func (s *OverlayService) comparisonSide(ctx context.Context, teamID int64, name string, notices *[]string) render.ComparisonSide {
	side := render.ComparisonSide{Name: strings.TrimSpace(name)}
	if side.Name == "" && s.directory != nil {
		side.Name = s.directory.Name(teamID)
	}
	if side.Name == "" {
		side.Name = fmt.Sprintf("Team %d", teamID)
	}
	side.LogoURI = s.images.InlineFirst(ctx, s.logos.LogoCandidates(s.seasonID, teamID))

	stats, err := s.teams.GetTeamSeasonStats(ctx, s.seasonID, teamID)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("Statistik von %s nicht verfügbar (%s)", side.Name, reason(err)))
		return side
	}
	side.Line = stats.Line()
	return side
}

func (s *OverlayService) PlayerOfTheGame(ctx context.Context, gameID string) (templ.Component, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverlayService.PlayerOfTheGame")
	defer span.End()

	view, err := s.live.Scoreboard(ctx, gameID)
	if err != nil {
		if isInvalid(err) {
			return nil, err
		}
		return render.PlayerOfTheGameOverlay(scouting.Pick{}, false, []string{"Boxscore nicht verfügbar (" + reason(err) + ")"}), nil
	}
	pick, found := scouting.PlayerOfTheGame(view.Box)
	return render.PlayerOfTheGameOverlay(pick, found, view.Notices), nil
}

func divisionTitle(d team.Division) string {
	switch d {
	case team.DivisionNorth:
		return "Nord"
	case team.DivisionSouth:
		return "Süd"
	default:
		return string(d)
	}
}
