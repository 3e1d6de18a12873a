package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/hoopscout/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/hoopscout/internal/mocks/domain/team"
)

type stubLogos struct{}

func (stubLogos) LogoCandidates(seasonID, teamID int64) []string {
	return []string{fmt.Sprintf("https://logo.test/%d/%d", seasonID, teamID)}
}

// stubImages inlines every URL to a fake data URI derived from its path.
type stubImages struct{}

func (stubImages) Inline(_ context.Context, src string) string {
	if src == "" {
		return ""
	}
	return "data:image/jpeg;base64," + strings.TrimPrefix(src, "https://")
}

func (s stubImages) InlineFirst(ctx context.Context, candidates []string) string {
	for _, c := range candidates {
		return s.Inline(ctx, c)
	}
	return ""
}

type stubDirectory map[int64]team.Team

func (d stubDirectory) Lookup(id int64) (team.Team, bool) {
	t, ok := d[id]
	return t, ok
}

func (d stubDirectory) Name(id int64) string { return d[id].Name }

func (d stubDirectory) All() []team.Team {
	out := make([]team.Team, 0, len(d))
	for _, t := range d {
		out = append(out, t)
	}
	return out
}

var testDirectory = stubDirectory{
	1101: {ID: 1101, Name: "Home Baskets", Division: team.DivisionNorth},
	1201: {ID: 1201, Name: "Gäste Flames", Division: team.DivisionSouth},
}

var tipOff = time.Date(2026, 3, 7, 17, 0, 0, 0, time.UTC)

func guestRoster() []player.SeasonStats {
	return []player.SeasonStats{
		{
			Player: player.Player{ID: "21", TeamID: 1201, FirstName: "Mia", LastName: "Roth", ShirtNumber: "10", PortraitURI: "https://img.test/21", BirthDate: time.Date(2003, 11, 14, 0, 0, 0, 0, time.UTC), HeightMeters: 1.80},
			Totals: statline.Counters{GamesPlayed: 10, Points: 120, FieldGoalsMade: 50, FieldGoalsAttempted: 100},
		},
		{
			Player: player.Player{ID: "22", TeamID: 1201, FirstName: "Ida", LastName: "Sommer", ShirtNumber: "4"},
			Totals: statline.Counters{GamesPlayed: 10, Points: 80},
		},
	}
}

func newReportFixture(t *testing.T) (*ReportService, *teammock.Reader, *playermock.Reader, *memory.AnnotationRepository) {
	t.Helper()
	teams := teammock.NewReader(t)
	players := playermock.NewReader(t)
	store := memory.NewAnnotationRepository(nil)
	svc := NewReportService(teams, players, stubLogos{}, stubImages{}, store, testDirectory, 2025, nil)
	svc.now = func() time.Time { return tipOff }
	return svc, teams, players, store
}

func TestReportService_Build_CollectsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, teams, players, store := newReportFixture(t)
	require.NoError(t, store.SetColor(ctx, "21", "#00ff00"))

	teams.On("GetTeam", mock.Anything, int64(2025), int64(1101)).Return(team.Team{ID: 1101, Name: "Home Baskets"}, nil).Once()
	teams.On("GetTeam", mock.Anything, int64(2025), int64(1201)).Return(team.Team{ID: 1201, Name: "Gäste Flames", LogoURI: "https://cdn.test/1201"}, nil).Once()
	players.On("ListTeamPlayerStats", mock.Anything, int64(2025), int64(1201)).Return(guestRoster(), nil).Once()
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1201)).
		Return(team.SeasonStats{TeamID: 1201, Totals: statline.Counters{GamesPlayed: 10, Points: 700}}, nil).Once()
	players.On("GetPlayer", mock.Anything, "22").
		Return(player.Player{ID: "22", PortraitURI: "https://img.test/22", Position: "C", HeightMeters: 1.91}, nil).Once()

	report, err := svc.Build(ctx, ReportRequest{HomeTeamID: 1101, GuestTeamID: 1201})
	require.NoError(t, err)

	assert.Empty(t, report.Notices)
	assert.Equal(t, "07.03.2026", report.Meta.Date)
	assert.Equal(t, "18:00", report.Meta.Time)
	assert.Equal(t, int64(1201), report.Scouted.ID)
	assert.Equal(t, "data:image/jpeg;base64,cdn.test/1201", report.Meta.Guest.LogoURI)
	assert.Equal(t, "data:image/jpeg;base64,logo.test/2025/1101", report.Meta.Home.LogoURI)
	require.Len(t, report.Cards, 2)
	assert.Equal(t, "22", report.Cards[0].Player.ID, "cards are ordered by shirt number")
	assert.Equal(t, "C", report.Cards[0].Player.Position)
	assert.Equal(t, "data:image/jpeg;base64,img.test/22", report.Cards[0].PortraitURI)
	assert.Equal(t, "#00ff00", report.Cards[1].Annotation.Color)
	assert.Equal(t, 22, report.Cards[1].Age)
	assert.InDelta(t, 70.0, report.TeamAverage.PointsPerGame, 1e-9)
	assert.Len(t, report.Leaderboards, len(scouting.Categories))
	assert.Equal(t, annotation.Matchup{Home: "Home Baskets", Guest: "Gäste Flames"}, store.Matchup(ctx))
}

func TestReportService_Build_PartialDataBecomesNotices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, teams, players, _ := newReportFixture(t)
	down := fmt.Errorf("get: %w", ErrOriginUnavailable)

	teams.On("GetTeam", mock.Anything, int64(2025), mock.Anything).Return(team.Team{}, down).Twice()
	players.On("ListTeamPlayerStats", mock.Anything, int64(2025), int64(1101)).Return(guestRoster()[:1], nil).Once()
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1101)).Return(team.SeasonStats{}, down).Once()

	report, err := svc.Build(ctx, ReportRequest{HomeTeamID: 1101, GuestTeamID: 1201, Scout: scouting.SideHome, TipOff: tipOff})
	require.NoError(t, err)

	assert.Equal(t, "Home Baskets", report.Meta.Home.Name, "registry name when details are down")
	assert.Len(t, report.Notices, 3)
	assert.Contains(t, report.Notices[0], "Server nicht erreichbar")
	assert.InDelta(t, 12.0, report.TeamAverage.PointsPerGame, 1e-9, "average falls back to the roster")
}

func TestReportService_Build_RejectsInvalidRequests(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newReportFixture(t)
	for _, req := range []ReportRequest{
		{HomeTeamID: 0, GuestTeamID: 1201},
		{HomeTeamID: 1101, GuestTeamID: 1101},
		{HomeTeamID: 1101, GuestTeamID: 1201, SeasonID: -1},
	} {
		_, err := svc.Build(context.Background(), req)
		assert.True(t, errors.Is(err, ErrInvalidInput), "request %+v", req)
	}
}

func TestReportService_Render_IsDeterministic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, teams, players, _ := newReportFixture(t)
	teams.On("GetTeam", mock.Anything, int64(2025), int64(1101)).Return(team.Team{ID: 1101, Name: "Home Baskets"}, nil)
	teams.On("GetTeam", mock.Anything, int64(2025), int64(1201)).Return(team.Team{ID: 1201, Name: "Gäste Flames"}, nil)
	players.On("ListTeamPlayerStats", mock.Anything, int64(2025), int64(1201)).Return(guestRoster(), nil)
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1201)).Return(team.SeasonStats{}, ErrNotFound)
	players.On("GetPlayer", mock.Anything, "22").Return(player.Player{}, ErrNotFound)

	req := ReportRequest{HomeTeamID: 1101, GuestTeamID: 1201, TipOff: tipOff}
	first, err := svc.Render(ctx, req)
	require.NoError(t, err)
	second, err := svc.Render(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, "scouting_Home_Baskets_vs_Gaeste_Flames_20260307.html", first.Filename)
	assert.Contains(t, string(first.HTML), "Spielerdetails für 1 Spielerinnen nicht verfügbar")
}

func TestReportFilename_UsesLeagueDate(t *testing.T) {
	t.Parallel()

	late := time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "scouting_A_B_vs_team_20260308.html", ReportFilename(" A & B ", "***", late))
}
