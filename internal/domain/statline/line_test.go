package statline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_SeasonAverages(t *testing.T) {
	t.Parallel()

	line := Derive(Counters{
		GamesPlayed:         10,
		Points:              152,
		FieldGoalsMade:      60,
		FieldGoalsAttempted: 140,
		ThreePointMade:      15,
		ThreePointAttempted: 45,
		FreeThrowsMade:      17,
		FreeThrowsAttempted: 25,
	})

	assert.Equal(t, "15.2", OneDecimal(line.PointsPerGame))

	assert.Equal(t, 45, line.TwoPoint.Made)
	assert.Equal(t, 95, line.TwoPoint.Attempted)
	assert.Equal(t, "47.4", OneDecimal(line.TwoPoint.Percentage))

	assert.Equal(t, "1.5", OneDecimal(line.ThreePoint.MadePerGame))
	assert.Equal(t, "4.5", OneDecimal(line.ThreePoint.AttPerGame))
	assert.Equal(t, "33.3", OneDecimal(line.ThreePoint.Percentage))

	assert.Equal(t, "1.7", OneDecimal(line.FreeThrow.MadePerGame))
	assert.Equal(t, "2.5", OneDecimal(line.FreeThrow.AttPerGame))
	assert.Equal(t, "68.0", OneDecimal(line.FreeThrow.Percentage))
}

func TestDerive_ZeroGamesNeverNaN(t *testing.T) {
	t.Parallel()

	line := Derive(Counters{Points: 12, Assists: 3, FreeThrowsAttempted: 0})
	for _, v := range []float64{
		line.PointsPerGame, line.AssistsPerGame, line.TotalReboundsPerGame,
		line.FreeThrow.Percentage, line.FreeThrow.AttPerGame, line.SecondsPerGame,
	} {
		assert.Equal(t, "0.0", OneDecimal(v))
	}
	assert.Equal(t, "00:00", line.MinutesPerGame())
}

func TestPercentage_ServerOverride(t *testing.T) {
	t.Parallel()

	near := 33.38
	far := 40.0
	assert.InDelta(t, 33.38, Percentage(15, 45, &near), 1e-9)
	assert.InDelta(t, 33.333, Percentage(15, 45, &far), 1e-3)
	assert.Equal(t, 0.0, Percentage(3, 0, &far))
}

func TestMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", Minutes(0))
	assert.Equal(t, "62:05", Minutes(3725))
	assert.Equal(t, "24:30", MinutesFromDecimal(24.5))
	assert.Equal(t, "00:00", MinutesFromDecimal(0))
}

func TestRepair_RestoresShootingIdentities(t *testing.T) {
	t.Parallel()

	c := Counters{
		GamesPlayed:         2,
		FieldGoalsMade:      10,
		FieldGoalsAttempted: 8,
		ThreePointMade:      4,
		ThreePointAttempted: 3,
		FreeThrowsMade:      5,
		FreeThrowsAttempted: 2,
		TotalRebounds:       9,
		Steals:              -1,
	}.Repair()

	require.GreaterOrEqual(t, c.ThreePointAttempted, c.ThreePointMade)
	require.GreaterOrEqual(t, c.FreeThrowsAttempted, c.FreeThrowsMade)
	require.GreaterOrEqual(t, c.TwoPointAttempted(), c.TwoPointMade())
	require.GreaterOrEqual(t, c.TwoPointMade(), 0)
	assert.Equal(t, c.FieldGoalsMade, c.TwoPointMade()+c.ThreePointMade)
	assert.Equal(t, c.FieldGoalsAttempted, c.TwoPointAttempted()+c.ThreePointAttempted)
	assert.Equal(t, 9, c.DefensiveRebounds)
	assert.Equal(t, c.OffensiveRebounds+c.DefensiveRebounds, c.TotalRebounds)
	assert.Equal(t, 0, c.Steals)
}

func TestRepair_RecomputesTotalRebounds(t *testing.T) {
	t.Parallel()

	c := Counters{OffensiveRebounds: 3, DefensiveRebounds: 4, TotalRebounds: 11}.Repair()
	assert.Equal(t, 7, c.TotalRebounds)
}
