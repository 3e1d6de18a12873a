package scouting

import (
	"sort"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

var berlin = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Location is the league's local time zone.
func Location() *time.Location {
	return berlin
}

// Side selects which team of a fixture is scouted.
type Side string

const (
	SideHome  Side = "home"
	SideGuest Side = "guest"
)

func ParseSide(v string) Side {
	if v == string(SideHome) {
		return SideHome
	}
	return SideGuest
}

type TeamHeader struct {
	ID      int64
	Name    string
	LogoURI string
}

type Meta struct {
	Date  string
	Time  string
	Home  TeamHeader
	Guest TeamHeader
}

// Card is one player sheet.
type Card struct {
	Player      player.Player
	Line        statline.Line
	Age         int
	PortraitURI string
	Annotation  annotation.Annotation
}

type Report struct {
	Meta         Meta
	Scout        Side
	Scouted      TeamHeader
	Leaderboards []Leaderboard
	Cards        []Card
	TeamAverage  statline.Line
	KeyFacts     annotation.KeyFacts
	Notices      []string
}

// Input carries everything a report needs. Collecting it is the caller's job.
type Input struct {
	TipOff      time.Time
	Home        TeamHeader
	Guest       TeamHeader
	Scout       Side
	Roster      []player.SeasonStats
	TeamTotals  *statline.Counters
	Portraits   map[string]string
	Annotations map[string]annotation.Annotation
	KeyFacts    annotation.KeyFacts
	Notices     []string
}

// Build assembles a report. Identical inputs produce identical reports.
func Build(in Input) Report {
	local := in.TipOff.In(berlin)
	scouted := in.Guest
	if in.Scout == SideHome {
		scouted = in.Home
	}

	roster := append([]player.SeasonStats(nil), in.Roster...)
	sort.SliceStable(roster, func(i, j int) bool {
		a, b := roster[i].Player, roster[j].Player
		if a.NumberKey() != b.NumberKey() {
			return a.NumberKey() < b.NumberKey()
		}
		return a.ID < b.ID
	})

	candidates := make([]Candidate, 0, len(roster))
	cards := make([]Card, 0, len(roster))
	seen := make(map[string]struct{}, len(roster))
	for _, entry := range roster {
		if _, dup := seen[entry.Player.ID]; dup {
			continue
		}
		seen[entry.Player.ID] = struct{}{}

		line := entry.Line()
		candidates = append(candidates, Candidate{Player: entry.Player, Line: line})

		portrait := entry.Player.PortraitURI
		if inlined, ok := in.Portraits[entry.Player.ID]; ok {
			portrait = inlined
		}
		cards = append(cards, Card{
			Player:      entry.Player,
			Line:        line,
			Age:         entry.Player.AgeOn(local),
			PortraitURI: portrait,
			Annotation:  in.Annotations[entry.Player.ID],
		})
	}

	return Report{
		Meta: Meta{
			Date:  local.Format("02.01.2006"),
			Time:  local.Format("15:04"),
			Home:  in.Home,
			Guest: in.Guest,
		},
		Scout:        ParseSide(string(in.Scout)),
		Scouted:      scouted,
		Leaderboards: RankAll(scouted.ID, candidates),
		Cards:        cards,
		TeamAverage:  TeamAverage(in.TeamTotals, roster),
		KeyFacts:     in.KeyFacts.Clone(),
		Notices:      append([]string(nil), in.Notices...),
	}
}

// TeamAverage derives the team line from team totals, or from the summed
// roster over the most games any player appeared in when totals are missing.
func TeamAverage(totals *statline.Counters, roster []player.SeasonStats) statline.Line {
	if totals != nil {
		return statline.Derive(totals.Repair())
	}

	var sum statline.Counters
	games := 0
	for _, entry := range roster {
		sum = sum.Add(entry.Totals)
		games = max(games, entry.Totals.GamesPlayed)
	}
	sum.GamesPlayed = games
	return statline.Derive(sum.Repair())
}
