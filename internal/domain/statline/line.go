package statline

import (
	"fmt"
	"math"
)

// ShotLine is one shot class as per-game averages plus a success rate.
type ShotLine struct {
	Made        int
	Attempted   int
	MadePerGame float64
	AttPerGame  float64
	Percentage  float64
}

// Line is the derived per-game view of Counters. It is recomputed on demand
// and never stored.
type Line struct {
	Games int

	PointsPerGame float64
	FieldGoal     ShotLine
	TwoPoint      ShotLine
	ThreePoint    ShotLine
	FreeThrow     ShotLine

	OffensiveReboundsPerGame float64
	DefensiveReboundsPerGame float64
	TotalReboundsPerGame     float64
	AssistsPerGame           float64
	TurnoversPerGame         float64
	StealsPerGame            float64
	BlocksPerGame            float64
	FoulsPerGame             float64
	SecondsPerGame           float64
}

func Derive(c Counters) Line {
	g := c.GamesPlayed
	return Line{
		Games:                    g,
		PointsPerGame:            PerGame(c.Points, g),
		FieldGoal:                shot(c.FieldGoalsMade, c.FieldGoalsAttempted, g, c.ServerFieldGoalPct),
		TwoPoint:                 shot(c.TwoPointMade(), c.TwoPointAttempted(), g, c.ServerTwoPointPct),
		ThreePoint:               shot(c.ThreePointMade, c.ThreePointAttempted, g, c.ServerThreePointPct),
		FreeThrow:                shot(c.FreeThrowsMade, c.FreeThrowsAttempted, g, c.ServerFreeThrowPct),
		OffensiveReboundsPerGame: PerGame(c.OffensiveRebounds, g),
		DefensiveReboundsPerGame: PerGame(c.DefensiveRebounds, g),
		TotalReboundsPerGame:     PerGame(c.TotalRebounds, g),
		AssistsPerGame:           PerGame(c.Assists, g),
		TurnoversPerGame:         PerGame(c.Turnovers, g),
		StealsPerGame:            PerGame(c.Steals, g),
		BlocksPerGame:            PerGame(c.Blocks, g),
		FoulsPerGame:             PerGame(c.PersonalFouls, g),
		SecondsPerGame:           PerGame(c.SecondsPlayed, g),
	}
}

func shot(made, attempted, games int, server *float64) ShotLine {
	return ShotLine{
		Made:        made,
		Attempted:   attempted,
		MadePerGame: PerGame(made, games),
		AttPerGame:  PerGame(attempted, games),
		Percentage:  Percentage(made, attempted, server),
	}
}

// PerGame returns x/games, or 0 when no games were played.
func PerGame(x, games int) float64 {
	if games <= 0 {
		return 0
	}
	return float64(x) / float64(games)
}

// Percentage returns made/attempted*100, or 0 without attempts. A server value
// within 0.1 of the computed one replaces it.
func Percentage(made, attempted int, server *float64) float64 {
	if attempted <= 0 {
		return 0
	}
	computed := float64(made) / float64(attempted) * 100
	if server != nil && !math.IsNaN(*server) && math.Abs(*server-computed) < 0.1 {
		return *server
	}
	return computed
}

// OneDecimal formats an average the way every table prints it.
func OneDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	out := fmt.Sprintf("%.1f", v)
	if out == "-0.0" {
		return "0.0"
	}
	return out
}

// Minutes renders a seconds count as MM:SS with unbounded minutes.
func Minutes(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// MinutesFromDecimal renders a minutes-as-decimal value such as 24.5.
func MinutesFromDecimal(m float64) string {
	if m <= 0 || math.IsNaN(m) {
		return Minutes(0)
	}
	whole := math.Floor(m)
	sec := int(math.Round((m - whole) * 60))
	if sec == 60 {
		whole++
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", int(whole), sec)
}

// MinutesPerGame renders the average playing time of a line.
func (l Line) MinutesPerGame() string {
	return Minutes(int(math.Round(l.SecondsPerGame)))
}
