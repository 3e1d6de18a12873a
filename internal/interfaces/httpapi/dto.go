package httpapi

import (
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/game"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/domain/standing"
	"github.com/riskibarqy/hoopscout/internal/domain/statline"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

type teamDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Division string `json:"division"`
	LogoURI  string `json:"logoUri,omitempty"`
}

type shotDTO struct {
	Made        int     `json:"made"`
	Attempted   int     `json:"attempted"`
	MadePerGame float64 `json:"madePerGame"`
	AttPerGame  float64 `json:"attemptedPerGame"`
	Percentage  float64 `json:"percentage"`
}

type lineDTO struct {
	Games             int     `json:"games"`
	Minutes           string  `json:"minutes"`
	PointsPerGame     float64 `json:"pointsPerGame"`
	FieldGoal         shotDTO `json:"fieldGoal"`
	TwoPoint          shotDTO `json:"twoPoint"`
	ThreePoint        shotDTO `json:"threePoint"`
	FreeThrow         shotDTO `json:"freeThrow"`
	OffensiveRebounds float64 `json:"offensiveRebounds"`
	DefensiveRebounds float64 `json:"defensiveRebounds"`
	TotalRebounds     float64 `json:"totalRebounds"`
	Assists           float64 `json:"assists"`
	Turnovers         float64 `json:"turnovers"`
	Steals            float64 `json:"steals"`
	Blocks            float64 `json:"blocks"`
	Fouls             float64 `json:"fouls"`
}

type playerDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShirtNumber string   `json:"shirtNumber"`
	Position    string   `json:"position,omitempty"`
	Height      string   `json:"height,omitempty"`
	Nations     []string `json:"nationalities,omitempty"`
	Line        lineDTO  `json:"line"`
}

type teamOverviewDTO struct {
	Team     teamDTO     `json:"team"`
	SeasonID int64       `json:"seasonId"`
	Average  lineDTO     `json:"average"`
	Players  []playerDTO `json:"players"`
	Notices  []string    `json:"notices,omitempty"`
}

type scoreDTO struct {
	Home  int `json:"home"`
	Guest int `json:"guest"`
}

type gameDTO struct {
	ID          string    `json:"id"`
	ScheduledAt string    `json:"scheduledAt,omitempty"`
	HomeTeamID  int64     `json:"homeTeamId"`
	GuestTeamID int64     `json:"guestTeamId"`
	HomeName    string    `json:"homeName"`
	GuestName   string    `json:"guestName"`
	Status      string    `json:"status"`
	Result      *scoreDTO `json:"result,omitempty"`
}

type standingRowDTO struct {
	Position int    `json:"platz"`
	TeamID   int64  `json:"teamId"`
	Team     string `json:"team"`
	Played   int    `json:"sp"`
	Wins     int    `json:"s"`
	Losses   int    `json:"n"`
	Diff     string `json:"diff"`
}

type standingsDTO struct {
	SeasonID int64            `json:"seasonId"`
	Division string           `json:"division"`
	Rows     []standingRowDTO `json:"rows"`
}

type annotationDTO struct {
	Notes    []string `json:"notes" validate:"max=4,dive,max=500"`
	Emphasis []string `json:"emphasis" validate:"max=4,dive,max=500"`
	Color    string   `json:"color" validate:"omitempty,hexcolor"`
}

type keyFactsDTO struct {
	Offense []annotation.KeyFact `json:"offense"`
	Defense []annotation.KeyFact `json:"defense"`
	AboutUs []annotation.KeyFact `json:"aboutUs"`
}

type matchupDTO struct {
	Home  string `json:"home" validate:"max=200"`
	Guest string `json:"guest" validate:"max=200"`
}

type annotationStateDTO struct {
	Players  map[string]annotationDTO `json:"players"`
	KeyFacts keyFactsDTO              `json:"keyFacts"`
	Matchup  matchupDTO               `json:"matchup"`
}

type importResultDTO struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Players int    `json:"players"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		Name:     t.Name,
		Division: string(t.Division),
		LogoURI:  t.LogoURI,
	}
}

func shotToDTO(s statline.ShotLine) shotDTO {
	return shotDTO{
		Made:        s.Made,
		Attempted:   s.Attempted,
		MadePerGame: s.MadePerGame,
		AttPerGame:  s.AttPerGame,
		Percentage:  s.Percentage,
	}
}

func lineToDTO(l statline.Line) lineDTO {
	return lineDTO{
		Games:             l.Games,
		Minutes:           l.MinutesPerGame(),
		PointsPerGame:     l.PointsPerGame,
		FieldGoal:         shotToDTO(l.FieldGoal),
		TwoPoint:          shotToDTO(l.TwoPoint),
		ThreePoint:        shotToDTO(l.ThreePoint),
		FreeThrow:         shotToDTO(l.FreeThrow),
		OffensiveRebounds: l.OffensiveReboundsPerGame,
		DefensiveRebounds: l.DefensiveReboundsPerGame,
		TotalRebounds:     l.TotalReboundsPerGame,
		Assists:           l.AssistsPerGame,
		Turnovers:         l.TurnoversPerGame,
		Steals:            l.StealsPerGame,
		Blocks:            l.BlocksPerGame,
		Fouls:             l.FoulsPerGame,
	}
}

func playerToDTO(p player.Player, line statline.Line) playerDTO {
	return playerDTO{
		ID:          p.ID,
		Name:        p.FullName(),
		ShirtNumber: p.ShirtNumber,
		Position:    p.Position,
		Height:      p.HeightDisplay(),
		Nations:     p.Nationalities,
		Line:        lineToDTO(line),
	}
}

func teamOverviewToDTO(o usecase.TeamOverview) teamOverviewDTO {
	players := make([]playerDTO, 0, len(o.Players))
	for _, item := range o.Players {
		players = append(players, playerToDTO(item.Player, item.Line))
	}
	return teamOverviewDTO{
		Team:     teamToDTO(o.Team),
		SeasonID: o.SeasonID,
		Average:  lineToDTO(o.Average),
		Players:  players,
		Notices:  o.Notices,
	}
}

func gameToDTO(g game.Game) gameDTO {
	out := gameDTO{
		ID:          g.ID,
		HomeTeamID:  g.HomeTeamID,
		GuestTeamID: g.GuestTeamID,
		HomeName:    g.HomeName,
		GuestName:   g.GuestName,
		Status:      string(g.Status),
	}
	if !g.ScheduledAt.IsZero() {
		out.ScheduledAt = g.ScheduledAt.UTC().Format(time.RFC3339)
	}
	if g.Result != nil {
		out.Result = &scoreDTO{Home: g.Result.HomeScore, Guest: g.Result.GuestScore}
	}
	return out
}

func standingsToDTO(t standing.Table) standingsDTO {
	rows := make([]standingRowDTO, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, standingRowDTO{
			Position: row.Position,
			TeamID:   row.TeamID,
			Team:     row.TeamName,
			Played:   row.Played,
			Wins:     row.Wins,
			Losses:   row.Losses,
			Diff:     row.DiffDisplay(),
		})
	}
	return standingsDTO{SeasonID: t.SeasonID, Division: string(t.Division), Rows: rows}
}

func annotationToDTO(a annotation.Annotation) annotationDTO {
	return annotationDTO{
		Notes:    append([]string(nil), a.Notes[:]...),
		Emphasis: append([]string(nil), a.Emphasis[:]...),
		Color:    a.Color,
	}
}

func annotationFromDTO(in annotationDTO) annotation.Annotation {
	var out annotation.Annotation
	copy(out.Notes[:], in.Notes)
	copy(out.Emphasis[:], in.Emphasis)
	out.Color = in.Color
	return out
}

func keyFactRows(rows []annotation.KeyFact) []annotation.KeyFact {
	if rows == nil {
		return []annotation.KeyFact{}
	}
	return rows
}

func stateToDTO(s annotation.State) annotationStateDTO {
	players := make(map[string]annotationDTO, len(s.Players))
	for id, a := range s.Players {
		players[id] = annotationToDTO(a)
	}
	return annotationStateDTO{
		Players: players,
		KeyFacts: keyFactsDTO{
			Offense: keyFactRows(s.KeyFacts.Offense),
			Defense: keyFactRows(s.KeyFacts.Defense),
			AboutUs: keyFactRows(s.KeyFacts.AboutUs),
		},
		Matchup: matchupDTO{Home: s.Matchup.Home, Guest: s.Matchup.Guest},
	}
}
