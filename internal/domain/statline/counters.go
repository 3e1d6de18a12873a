package statline

// Counters are raw counting totals over a number of games, as booked by the
// upstream. Two-point values are never stored; they derive from field goals.
type Counters struct {
	GamesPlayed         int
	SecondsPlayed       int
	Points              int
	FieldGoalsMade      int
	FieldGoalsAttempted int
	ThreePointMade      int
	ThreePointAttempted int
	FreeThrowsMade      int
	FreeThrowsAttempted int
	OffensiveRebounds   int
	DefensiveRebounds   int
	TotalRebounds       int
	Assists             int
	Turnovers           int
	Steals              int
	Blocks              int
	PersonalFouls       int
	Efficiency          float64

	// Percentages reported by the upstream, nil when absent.
	ServerFieldGoalPct  *float64
	ServerTwoPointPct   *float64
	ServerThreePointPct *float64
	ServerFreeThrowPct  *float64
}

func (c Counters) TwoPointMade() int {
	return c.FieldGoalsMade - c.ThreePointMade
}

func (c Counters) TwoPointAttempted() int {
	return c.FieldGoalsAttempted - c.ThreePointAttempted
}

// Repair clamps negatives and restores the shooting and rebounding identities:
// made <= attempted for every shot class, field goals cover three-pointers and
// total rebounds equal offensive plus defensive. A bare total is booked as
// defensive.
func (c Counters) Repair() Counters {
	for _, v := range []*int{
		&c.GamesPlayed, &c.SecondsPlayed, &c.Points,
		&c.FieldGoalsMade, &c.FieldGoalsAttempted,
		&c.ThreePointMade, &c.ThreePointAttempted,
		&c.FreeThrowsMade, &c.FreeThrowsAttempted,
		&c.OffensiveRebounds, &c.DefensiveRebounds, &c.TotalRebounds,
		&c.Assists, &c.Turnovers, &c.Steals, &c.Blocks, &c.PersonalFouls,
	} {
		if *v < 0 {
			*v = 0
		}
	}

	c.ThreePointAttempted = max(c.ThreePointAttempted, c.ThreePointMade)
	c.FreeThrowsAttempted = max(c.FreeThrowsAttempted, c.FreeThrowsMade)
	c.FieldGoalsMade = max(c.FieldGoalsMade, c.ThreePointMade)
	c.FieldGoalsAttempted = max(c.FieldGoalsAttempted, c.FieldGoalsMade, c.ThreePointAttempted)
	// two-point attempts must cover two-point makes
	if c.TwoPointAttempted() < c.TwoPointMade() {
		c.FieldGoalsAttempted = c.ThreePointAttempted + c.TwoPointMade()
	}

	if c.OffensiveRebounds+c.DefensiveRebounds == 0 && c.TotalRebounds > 0 {
		c.DefensiveRebounds = c.TotalRebounds
	}
	c.TotalRebounds = c.OffensiveRebounds + c.DefensiveRebounds

	return c
}

// Add sums two counter sets. Server percentages are dropped.
func (c Counters) Add(o Counters) Counters {
	return Counters{
		GamesPlayed:         c.GamesPlayed + o.GamesPlayed,
		SecondsPlayed:       c.SecondsPlayed + o.SecondsPlayed,
		Points:              c.Points + o.Points,
		FieldGoalsMade:      c.FieldGoalsMade + o.FieldGoalsMade,
		FieldGoalsAttempted: c.FieldGoalsAttempted + o.FieldGoalsAttempted,
		ThreePointMade:      c.ThreePointMade + o.ThreePointMade,
		ThreePointAttempted: c.ThreePointAttempted + o.ThreePointAttempted,
		FreeThrowsMade:      c.FreeThrowsMade + o.FreeThrowsMade,
		FreeThrowsAttempted: c.FreeThrowsAttempted + o.FreeThrowsAttempted,
		OffensiveRebounds:   c.OffensiveRebounds + o.OffensiveRebounds,
		DefensiveRebounds:   c.DefensiveRebounds + o.DefensiveRebounds,
		TotalRebounds:       c.TotalRebounds + o.TotalRebounds,
		Assists:             c.Assists + o.Assists,
		Turnovers:           c.Turnovers + o.Turnovers,
		Steals:              c.Steals + o.Steals,
		Blocks:              c.Blocks + o.Blocks,
		PersonalFouls:       c.PersonalFouls + o.PersonalFouls,
		Efficiency:          c.Efficiency + o.Efficiency,
	}
}
