package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	playermock "github.com/riskibarqy/hoopscout/internal/mocks/domain/player"
	standingmock "github.com/riskibarqy/hoopscout/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/hoopscout/internal/mocks/domain/team"
	"github.com/riskibarqy/hoopscout/internal/render"
)

func TestOverlayService_StartingFiveUsesQueryAndFallsBackToLookup(t *testing.T) {
	t.Parallel()

	players := playermock.NewReader(t)
	svc := NewOverlayService(nil, players, nil, nil, stubLogos{}, stubImages{}, testDirectory, 2025, nil)
	players.On("GetPlayer", mock.Anything, "5").Return(player.Player{ID: "5", FirstName: "Eva", LastName: "Lang", ShirtNumber: "33"}, nil).Once()

	page, err := svc.StartingFive(context.Background(), StartingFiveRequest{
		Coach:      "Coach K",
		LogoTeamID: 1101,
		PlayerIDs:  []string{"4", "5.0"},
		Names:      map[string]string{"4": "Nora Wolf"},
		Numbers:    map[string]string{"4": "8"},
	})
	require.NoError(t, err)
	html, err := render.Bytes(context.Background(), page)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "Home Baskets")
	assert.Contains(t, doc, "Nora Wolf")
	assert.Contains(t, doc, "Eva Lang")
	assert.Contains(t, doc, ">33<")
	assert.Contains(t, doc, "logo.test/2025/1101")
}

func TestOverlayService_StartingFiveRejectsTooManyPlayers(t *testing.T) {
	t.Parallel()

	svc := NewOverlayService(nil, nil, nil, nil, stubLogos{}, stubImages{}, testDirectory, 2025, nil)
	_, err := svc.StartingFive(context.Background(), StartingFiveRequest{PlayerIDs: []string{"1", "2", "3", "4", "5", "6"}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestOverlayService_StandingsShowsNoticeWhenDown(t *testing.T) {
	t.Parallel()

	reader := standingmock.NewReader(t)
	svc := NewOverlayService(nil, nil, NewStandingsService(reader, 2025), nil, stubLogos{}, stubImages{}, testDirectory, 2025, nil)
	reader.On("GetStandings", mock.Anything, int64(2025), team.DivisionNorth).Return(standing.Table{}, ErrOriginUnavailable).Once()

	page, err := svc.Standings(context.Background(), 0, team.DivisionNorth)
	require.NoError(t, err)
	html, err := render.Bytes(context.Background(), page)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Tabelle Nord 2025")
	assert.Contains(t, string(html), "Tabelle nicht verfügbar")

	_, err = svc.Standings(context.Background(), 2025, team.DivisionUnknown)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestOverlayService_Comparison(t *testing.T) {
	t.Parallel()

	teams := teammock.NewReader(t)
	svc := NewOverlayService(teams, nil, nil, nil, stubLogos{}, stubImages{}, testDirectory, 2025, nil)
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1101)).
		Return(team.SeasonStats{Totals: statline.Counters{GamesPlayed: 4, Points: 300}}, nil).Once()
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1201)).
		Return(team.SeasonStats{}, ErrNotFound).Once()

	page, err := svc.Comparison(context.Background(), ComparisonRequest{HomeTeamID: 1101, GuestTeamID: 1201, GuestName: "Flames"})
	require.NoError(t, err)
	html, err := render.Bytes(context.Background(), page)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "75.0")
	assert.Contains(t, doc, "Statistik von Flames nicht verfügbar")
}
