package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

func TestBatchReportService_RenderAll(t *testing.T) {
	t.Parallel()

	svc, teams, players, _ := newReportFixture(t)
	teams.On("GetTeam", mock.Anything, int64(2025), int64(1101)).Return(team.Team{ID: 1101, Name: "Home Baskets"}, nil)
	teams.On("GetTeam", mock.Anything, int64(2025), int64(1201)).Return(team.Team{ID: 1201, Name: "Gäste Flames"}, nil)
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1201)).Return(team.SeasonStats{}, ErrNotFound)
	players.On("ListTeamPlayerStats", mock.Anything, int64(2025), int64(1201)).Return(guestRoster(), nil)
	players.On("GetPlayer", mock.Anything, "22").Return(player.Player{}, ErrNotFound)

	var mu sync.Mutex
	written := map[string]int{}
	sink := func(_ context.Context, artifact ReportArtifact) error {
		mu.Lock()
		defer mu.Unlock()
		written[artifact.Filename] = len(artifact.HTML)
		return nil
	}

	batch := NewBatchReportService(svc, 2, nil)
	result, err := batch.RenderAll(context.Background(), []ReportRequest{
		{HomeTeamID: 1101, GuestTeamID: 1201, TipOff: tipOff},
		{HomeTeamID: 1101, GuestTeamID: 1101, TipOff: tipOff},
		{HomeTeamID: 1101, GuestTeamID: 1201, TipOff: tipOff.AddDate(0, 0, 7)},
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Items, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{result.Items[0].Index, result.Items[1].Index, result.Items[2].Index})
	assert.True(t, errors.Is(result.Items[1].Err, ErrInvalidInput))
	assert.Equal(t, "scouting_Home_Baskets_vs_Gaeste_Flames_20260314.html", result.Items[2].Filename)
	assert.Len(t, written, 2)
	assert.Positive(t, written["scouting_Home_Baskets_vs_Gaeste_Flames_20260307.html"])
}

func TestBatchReportService_SinkErrorsFailTheFixture(t *testing.T) {
	t.Parallel()

	svc, teams, players, _ := newReportFixture(t)
	teams.On("GetTeam", mock.Anything, int64(2025), mock.Anything).Return(team.Team{}, ErrNotFound)
	teams.On("GetTeamSeasonStats", mock.Anything, int64(2025), int64(1201)).Return(team.SeasonStats{}, ErrNotFound)
	players.On("ListTeamPlayerStats", mock.Anything, int64(2025), int64(1201)).Return(nil, ErrNotFound)

	diskFull := errors.New("disk full")
	result, err := NewBatchReportService(svc, 0, nil).RenderAll(context.Background(),
		[]ReportRequest{{HomeTeamID: 1101, GuestTeamID: 1201, TipOff: tipOff}},
		func(context.Context, ReportArtifact) error { return diskFull },
	)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.ErrorIs(t, result.Items[0].Err, diskFull)
}

func TestBatchReportService_RequiresFixtures(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newReportFixture(t)
	_, err := NewBatchReportService(svc, 1, nil).RenderAll(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
