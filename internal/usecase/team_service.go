package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

type PlayerOverview struct {
	Player player.Player
	Line   statline.Line
}

type TeamOverview struct {
	Team     team.Team
	SeasonID int64
	Average  statline.Line
	Players  []PlayerOverview
	Notices  []string
}

type TeamService struct {
	teams     team.Reader
	players   player.Reader
	directory TeamDirectory
	seasonID  int64
}

func NewTeamService(teams team.Reader, players player.Reader, directory TeamDirectory, seasonID int64) *TeamService {
	return &TeamService{teams: teams, players: players, directory: directory, seasonID: seasonID}
}

// List returns the registry, North before South.
func (s *TeamService) List() []team.Team {
	return s.directory.All()
}

// Overview is a team's details, season average and roster lines.
func (s *TeamService) Overview(ctx context.Context, seasonID, teamID int64) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Overview")
	defer span.End()

	if seasonID == 0 {
		seasonID = s.seasonID
	}
	if seasonID <= 0 || teamID <= 0 {
		return TeamOverview{}, fmt.Errorf("%w: season id and team id must be > 0", ErrInvalidInput)
	}

	t, err := s.teams.GetTeam(ctx, seasonID, teamID)
	if err != nil {
		known, ok := s.directory.Lookup(teamID)
		if !ok {
			return TeamOverview{}, fmt.Errorf("get team: %w", err)
		}
		t = known
	}

	roster, err := s.players.ListTeamPlayerStats(ctx, seasonID, teamID)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("list team player stats: %w", err)
	}
	sort.SliceStable(roster, func(i, j int) bool {
		a, b := roster[i].Player, roster[j].Player
		if a.NumberKey() != b.NumberKey() {
			return a.NumberKey() < b.NumberKey()
		}
		return a.ID < b.ID
	})

	out := TeamOverview{Team: t, SeasonID: seasonID, Players: make([]PlayerOverview, 0, len(roster))}
	for _, entry := range roster {
		out.Players = append(out.Players, PlayerOverview{Player: entry.Player, Line: entry.Line()})
	}

	var totals *statline.Counters
	if stats, err := s.teams.GetTeamSeasonStats(ctx, seasonID, teamID); err == nil {
		totals = &stats.Totals
	} else {
		out.Notices = append(out.Notices, "team statistics unavailable, average derived from roster")
	}
	out.Average = scouting.TeamAverage(totals, roster)
	return out, nil
}
