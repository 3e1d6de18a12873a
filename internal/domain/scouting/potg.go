package scouting

import "github.com/riskibarqy/hoopscout/internal/domain/game"

// Pick is the player of the game and the side she played for.
type Pick struct {
	Line     game.PlayerLine
	TeamID   int64
	TeamName string
}

// PlayerOfTheGame returns the highest efficiency across both teams. Ties go to
// more points, then more playing time, then the lower player id.
func PlayerOfTheGame(box game.Boxscore) (Pick, bool) {
	var (
		best  Pick
		found bool
	)
	for _, side := range []game.TeamBox{box.Home, box.Guest} {
		for _, line := range side.Players {
			cand := Pick{Line: line, TeamID: side.TeamID, TeamName: side.Name}
			if !found || better(cand.Line, best.Line) {
				best = cand
				found = true
			}
		}
	}
	return best, found
}

func better(a, b game.PlayerLine) bool {
	if a.Totals.Efficiency != b.Totals.Efficiency {
		return a.Totals.Efficiency > b.Totals.Efficiency
	}
	if a.Totals.Points != b.Totals.Points {
		return a.Totals.Points > b.Totals.Points
	}
	if a.Totals.SecondsPlayed != b.Totals.SecondsPlayed {
		return a.Totals.SecondsPlayed > b.Totals.SecondsPlayed
	}
	return a.PlayerID < b.PlayerID
}
