package scouting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

func cand(id, number string, line statline.Line) Candidate {
	return Candidate{Player: player.Player{ID: id, ShirtNumber: number, FirstName: "P", LastName: id}, Line: line}
}

func ids(board Leaderboard) []string {
	out := make([]string, 0, len(board.Entries))
	for _, e := range board.Entries {
		out = append(out, e.PlayerID)
	}
	return out
}

func TestRank_TopScorerTieBrokenByFieldGoalPct(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("3", "4", statline.Line{PointsPerGame: 8, FieldGoal: statline.ShotLine{Percentage: 60}}),
		cand("2", "5", statline.Line{PointsPerGame: 12, FieldGoal: statline.ShotLine{Percentage: 48}}),
		cand("1", "9", statline.Line{PointsPerGame: 12, FieldGoal: statline.ShotLine{Percentage: 50}}),
	}

	board := Rank(CategoryScorer, 10, roster)
	assert.Equal(t, []string{"1", "2", "3"}, ids(board))
	assert.Equal(t, []float64{50}, board.Entries[0].Secondary)
}

func TestRank_ThreePointFallsBackToFullRoster(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("1", "1", statline.Line{ThreePoint: statline.ShotLine{MadePerGame: 0.2, Percentage: 20}}),
		cand("2", "2", statline.Line{ThreePoint: statline.ShotLine{MadePerGame: 0.4, Percentage: 40}}),
		cand("3", "3", statline.Line{ThreePoint: statline.ShotLine{MadePerGame: 0.1, Percentage: 30}}),
		cand("4", "4", statline.Line{}),
	}

	board := Rank(CategoryThreePoint, 10, roster)
	require.True(t, board.FellBack)
	assert.Equal(t, []string{"2", "3", "1"}, ids(board))
}

func TestRank_ThreePointFilterApplies(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("1", "1", statline.Line{ThreePoint: statline.ShotLine{MadePerGame: 0.3, Percentage: 60}}),
		cand("2", "2", statline.Line{ThreePoint: statline.ShotLine{MadePerGame: 1.2, Percentage: 35}}),
	}

	board := Rank(CategoryThreePoint, 10, roster)
	assert.False(t, board.FellBack)
	assert.Equal(t, []string{"2"}, ids(board))
}

func TestRank_WeakFreeThrowExcludesPlayersWithoutAttempts(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("1", "1", statline.Line{FreeThrow: statline.ShotLine{AttPerGame: 0, Percentage: 0}}),
		cand("2", "2", statline.Line{FreeThrow: statline.ShotLine{AttPerGame: 2.0, Percentage: 55}}),
		cand("3", "3", statline.Line{FreeThrow: statline.ShotLine{AttPerGame: 3.0, Percentage: 55}}),
		cand("4", "4", statline.Line{FreeThrow: statline.ShotLine{AttPerGame: 1.5, Percentage: 80}}),
	}

	board := Rank(CategoryWeakFreeThrow, 10, roster)
	assert.Equal(t, []string{"3", "2", "4"}, ids(board))

	onlyZero := Rank(CategoryWeakFreeThrow, 10, roster[:1])
	assert.True(t, onlyZero.FellBack)
	assert.Equal(t, []string{"1"}, ids(onlyZero))
}

func TestRank_AssistsPreferFewerTurnovers(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("1", "1", statline.Line{AssistsPerGame: 4, TurnoversPerGame: 3}),
		cand("2", "2", statline.Line{AssistsPerGame: 4, TurnoversPerGame: 1}),
	}
	assert.Equal(t, []string{"2", "1"}, ids(Rank(CategoryAssists, 1, roster)))
}

func TestRank_FinalTieBreakIsShirtNumberThenID(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("30", "-", statline.Line{StealsPerGame: 1}),
		cand("20", "11", statline.Line{StealsPerGame: 1}),
		cand("10", "11", statline.Line{StealsPerGame: 1}),
		cand("40", "7", statline.Line{StealsPerGame: 1}),
	}
	assert.Equal(t, []string{"40", "10", "20"}, ids(Rank(CategorySteals, 1, roster)))
}

func TestRankAll_DistinctAndBounded(t *testing.T) {
	t.Parallel()

	roster := []Candidate{
		cand("1", "1", statline.Line{PointsPerGame: 10}),
		cand("1", "1", statline.Line{PointsPerGame: 10}),
		cand("2", "2", statline.Line{PointsPerGame: 9}),
		cand("3", "3", statline.Line{PointsPerGame: 8}),
		cand("4", "4", statline.Line{PointsPerGame: 7}),
	}

	boards := RankAll(1, roster)
	require.Len(t, boards, len(Categories))
	for _, board := range boards {
		require.LessOrEqual(t, len(board.Entries), TopN)
		seen := map[string]bool{}
		for _, e := range board.Entries {
			require.False(t, seen[e.PlayerID], "duplicate %s in %s", e.PlayerID, board.Category)
			seen[e.PlayerID] = true
		}
	}
	assert.Equal(t, boards, RankAll(1, roster))
}
