package standing

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

// Row is one line of a regional table.
type Row struct {
	Position      int
	TeamID        int64
	TeamName      string
	Played        int
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int
}

func (r Row) Diff() int {
	return r.PointsFor - r.PointsAgainst
}

// DiffDisplay prints the point difference with an explicit sign.
func (r Row) DiffDisplay() string {
	d := r.Diff()
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

// Table is a division's standings in table order.
type Table struct {
	SeasonID int64
	Division team.Division
	Rows     []Row
}

// Rank keeps upstream positions when every row has one. Otherwise rows are
// ordered by wins, point difference, points scored and team id, then numbered.
func Rank(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	positioned := len(out) > 0
	for _, row := range out {
		if row.Position <= 0 {
			positioned = false
			break
		}
	}

	if positioned {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Position < out[j].Position
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Diff() != b.Diff() {
			return a.Diff() > b.Diff()
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.TeamID < b.TeamID
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
