package basketapi

import (
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
)

func decodeFixture(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, sonic.Unmarshal([]byte(raw), &out))
	return out
}

func TestNormalizeNationalities_AllShapes(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		`{"nationalities":["GER","USA"]}`:                    {"GER", "USA"},
		`{"nationalities":[{"name":"Germany"},{"name":""}]}`: {"Germany"},
		`{"nationality":{"name":"Latvia"}}`:                  {"Latvia"},
		`{"nationalities":[],"nationality":{"name":"Mali"}}`: {"Mali"},
		`{"nationality":"SWE"}`:                              {"SWE"},
		`{}`:                                                 nil,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeNationalities(decodeFixture(t, raw)), raw)
	}
}

func TestNormalizePlayer_ShapesAndSentinels(t *testing.T) {
	t.Parallel()

	p := NormalizePlayer(decodeFixture(t, `{
		"seasonPlayer": {"id": 4711.0, "firstName": "Lena", "lastName": "Kraus", "shirtNumber": 9,
			"height": 188, "birthDate": "2003-11-14", "nationality": {"name": "Germany"}},
		"imageUrl": "https://img/portrait.png"
	}`))

	assert.Equal(t, "4711", p.ID)
	assert.Equal(t, "Lena Kraus", p.FullName())
	assert.Equal(t, "9", p.ShirtNumber)
	assert.Equal(t, "1,88 m", p.HeightDisplay())
	assert.Equal(t, time.Date(2003, 11, 14, 0, 0, 0, 0, time.UTC), p.BirthDate)
	assert.Equal(t, []string{"Germany"}, p.Nationalities)
	assert.Equal(t, "https://img/portrait.png", p.PortraitURI)
	assert.Equal(t, player.Missing, p.Position)

	bare := NormalizePlayer(decodeFixture(t, `{"playerId":"12.0","height":"1.95"}`))
	assert.Equal(t, "12", bare.ID)
	assert.Equal(t, player.Missing, bare.FullName())
	assert.Equal(t, "1,95 m", bare.HeightDisplay())
}

func TestNormalizeCounters_AliasesAndRepair(t *testing.T) {
	t.Parallel()

	c := NormalizeCounters(decodeFixture(t, `{
		"gamesPlayed": "10", "points": 152,
		"twoPointShotsMade": 45, "twoPointShotsAttempted": 95,
		"threePointShotsMade": 15, "threePointShotsAttempted": 45,
		"freeThrowsMade": 17, "freeThrowsAttempted": 25,
		"totalRebounds": 40, "minutesPlayed": "250:30",
		"threePointShotSuccessPercent": 0.3334
	}`))

	assert.Equal(t, 10, c.GamesPlayed)
	assert.Equal(t, 60, c.FieldGoalsMade)
	assert.Equal(t, 140, c.FieldGoalsAttempted)
	assert.Equal(t, 40, c.DefensiveRebounds)
	assert.Equal(t, 40, c.TotalRebounds)
	assert.Equal(t, 250*60+30, c.SecondsPlayed)
	require.NotNil(t, c.ServerThreePointPct)
	assert.InDelta(t, 33.34, *c.ServerThreePointPct, 1e-9)
}

func TestNormalizeCounters_DecimalMinutes(t *testing.T) {
	t.Parallel()

	c := NormalizeCounters(decodeFixture(t, `{"minutes": 24.5}`))
	assert.Equal(t, 1470, c.SecondsPlayed)

	s := NormalizeCounters(decodeFixture(t, `{"secondsPlayed": 3725}`))
	assert.Equal(t, 3725, s.SecondsPlayed)
}

func TestTeamName_Extractor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		`{"name":"A"}`:                   "A",
		`{"teamName":"B"}`:               "B",
		`{"seasonTeam":{"name":"C"}}`:    "C",
		`{"team":{"name":"D"}}`:          "D",
		`{"club":{"teamName":"E"}}`:      "E",
		`{"somethingElse":{"name":"F"}}`: "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, TeamName(decodeFixture(t, raw)), raw)
	}
}

func TestNormalizeBoxscore(t *testing.T) {
	t.Parallel()

	box := NormalizeBoxscore(decodeFixture(t, `{
		"status": "RUNNING", "period": 3, "gameClock": "05:10",
		"homeTeam": {"teamId": 10, "name": "Home", "playerStats": [
			{"seasonPlayer": {"id": 1, "firstName": "A", "lastName": "One", "shirtNumber": "4"}, "points": 12, "efficiency": 14, "secondsPlayed": 1200, "starter": true},
			{"seasonPlayer": {"id": 2, "firstName": "B", "lastName": "Two"}, "points": 6, "efficiency": 3}
		]},
		"guestTeam": {"teamId": 20, "name": "Guest", "score": 21, "playerStats": []}
	}`), "X")

	assert.Equal(t, game.StatusRunning, box.Status)
	assert.Equal(t, 3, box.Period)
	assert.Equal(t, 18, box.Home.Score)
	assert.Equal(t, 21, box.Guest.Score)
	require.Len(t, box.Home.Players, 2)
	assert.True(t, box.Home.Players[0].Starter)
	assert.Equal(t, 14.0, box.Home.Players[0].Totals.Efficiency)
	assert.Equal(t, "A One", box.Home.Players[0].Name)
}

func TestNormalizeBoxscore_MissingStatusStaysEmpty(t *testing.T) {
	t.Parallel()

	box := NormalizeBoxscore(decodeFixture(t, `{"homeTeam": {"teamId": 10, "score": 71}, "guestTeam": {"teamId": 20, "score": 65}}`), "X")
	assert.Equal(t, game.Status(""), box.Status)

	merged := box.Merge(game.Game{ID: "X", Status: game.StatusEnded, Result: &game.Result{HomeScore: 71, GuestScore: 65}})
	assert.Equal(t, game.StatusEnded, merged.Status)
	require.NotNil(t, merged.Result)
	assert.Equal(t, 71, merged.Result.HomeScore)
}
