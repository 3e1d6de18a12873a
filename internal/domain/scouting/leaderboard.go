package scouting

import (
	"sort"

	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// TopN is the length of every leaderboard.
const TopN = 3

type Category string

const (
	CategoryScorer        Category = "top_scorer"
	CategoryRebounds      Category = "rebounds"
	CategoryThreePoint    Category = "three_points"
	CategoryWeakFreeThrow Category = "weak_free_throws"
	CategoryAssists       Category = "assists"
	CategoryTurnovers     Category = "turnovers"
	CategorySteals        Category = "steals"
	CategoryBlocks        Category = "blocks"
	CategoryFouls         Category = "fouls"
)

// Categories is the report order: three rows of three.
var Categories = []Category{
	CategoryScorer, CategoryRebounds, CategoryThreePoint,
	CategoryWeakFreeThrow, CategoryAssists, CategoryTurnovers,
	CategorySteals, CategoryBlocks, CategoryFouls,
}

func (c Category) Title() string {
	switch c {
	case CategoryScorer:
		return "Top Scorer"
	case CategoryRebounds:
		return "Rebounds"
	case CategoryThreePoint:
		return "3-Points"
	case CategoryWeakFreeThrow:
		return "Weak FT"
	case CategoryAssists:
		return "Assists"
	case CategoryTurnovers:
		return "Turnovers"
	case CategorySteals:
		return "Steals"
	case CategoryBlocks:
		return "Blocks"
	case CategoryFouls:
		return "Fouls"
	default:
		return string(c)
	}
}

// Percent reports whether the primary value is a success rate.
func (c Category) Percent() bool {
	return c == CategoryThreePoint || c == CategoryWeakFreeThrow
}

type metric func(statline.Line) float64

type tieBreak struct {
	value  metric
	higher bool
}

type rule struct {
	primary   metric
	ascending bool
	eligible  func(statline.Line) bool
	ties      []tieBreak
}

var rules = map[Category]rule{
	CategoryScorer: {
		primary: func(l statline.Line) float64 { return l.PointsPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.FieldGoal.Percentage }, higher: true}},
	},
	CategoryRebounds: {
		primary: func(l statline.Line) float64 { return l.TotalReboundsPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.DefensiveReboundsPerGame }, higher: true}},
	},
	CategoryThreePoint: {
		primary:  func(l statline.Line) float64 { return l.ThreePoint.Percentage },
		eligible: func(l statline.Line) bool { return l.ThreePoint.MadePerGame >= 0.5 },
		ties:     []tieBreak{{value: func(l statline.Line) float64 { return l.ThreePoint.MadePerGame }, higher: true}},
	},
	CategoryWeakFreeThrow: {
		primary:   func(l statline.Line) float64 { return l.FreeThrow.Percentage },
		ascending: true,
		eligible:  func(l statline.Line) bool { return l.FreeThrow.AttPerGame >= 1.0 },
		ties:      []tieBreak{{value: func(l statline.Line) float64 { return l.FreeThrow.AttPerGame }, higher: true}},
	},
	CategoryAssists: {
		primary: func(l statline.Line) float64 { return l.AssistsPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.TurnoversPerGame }, higher: false}},
	},
	CategoryTurnovers: {
		primary: func(l statline.Line) float64 { return l.TurnoversPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.SecondsPerGame }, higher: true}},
	},
	CategorySteals: {
		primary: func(l statline.Line) float64 { return l.StealsPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.AssistsPerGame }, higher: true}},
	},
	CategoryBlocks: {
		primary: func(l statline.Line) float64 { return l.BlocksPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.TotalReboundsPerGame }, higher: true}},
	},
	CategoryFouls: {
		primary: func(l statline.Line) float64 { return l.FoulsPerGame },
		ties:    []tieBreak{{value: func(l statline.Line) float64 { return l.SecondsPerGame }, higher: true}},
	},
}

// Candidate is one roster entry offered to the ranking.
type Candidate struct {
	Player player.Player
	Line   statline.Line
}

type Entry struct {
	PlayerID    string
	Name        string
	ShirtNumber string
	Primary     float64
	Secondary   []float64
}

type Leaderboard struct {
	Category Category
	TeamID   int64
	Entries  []Entry
	// FellBack is set when nobody met the eligibility filter.
	FellBack bool
}

// Rank builds the top-N list of one category. Players failing the category's
// eligibility filter are skipped unless that would leave nobody, in which case
// the whole roster is ranked. Remaining ties go to the lower shirt number,
// then the lower player id.
func Rank(category Category, teamID int64, candidates []Candidate) Leaderboard {
	r, ok := rules[category]
	board := Leaderboard{Category: category, TeamID: teamID}
	if !ok {
		return board
	}

	pool := distinct(candidates)
	if r.eligible != nil {
		filtered := make([]Candidate, 0, len(pool))
		for _, c := range pool {
			if r.eligible(c.Line) {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) == 0 && len(pool) > 0 {
			board.FellBack = true
		} else {
			pool = filtered
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		pa, pb := r.primary(a.Line), r.primary(b.Line)
		if pa != pb {
			if r.ascending {
				return pa < pb
			}
			return pa > pb
		}
		for _, tb := range r.ties {
			va, vb := tb.value(a.Line), tb.value(b.Line)
			if va != vb {
				if tb.higher {
					return va > vb
				}
				return va < vb
			}
		}
		if ka, kb := a.Player.NumberKey(), b.Player.NumberKey(); ka != kb {
			return ka < kb
		}
		return a.Player.ID < b.Player.ID
	})

	limit := min(TopN, len(pool))
	board.Entries = make([]Entry, 0, limit)
	for _, c := range pool[:limit] {
		secondary := make([]float64, 0, len(r.ties))
		for _, tb := range r.ties {
			secondary = append(secondary, tb.value(c.Line))
		}
		board.Entries = append(board.Entries, Entry{
			PlayerID:    c.Player.ID,
			Name:        c.Player.FullName(),
			ShirtNumber: c.Player.ShirtNumber,
			Primary:     r.primary(c.Line),
			Secondary:   secondary,
		})
	}

	return board
}

// RankAll builds every category in report order.
func RankAll(teamID int64, candidates []Candidate) []Leaderboard {
	out := make([]Leaderboard, 0, len(Categories))
	for _, category := range Categories {
		out = append(out, Rank(category, teamID, candidates))
	}
	return out
}

func distinct(candidates []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.Player.ID]; ok {
			continue
		}
		seen[c.Player.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
