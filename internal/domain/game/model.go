package game

import (
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusRunning   Status = "RUNNING"
	StatusEnded     Status = "ENDED"
	StatusClosed    Status = "CLOSED"
	StatusCancelled Status = "CANCELLED"
	StatusPostponed Status = "POSTPONED"
	StatusUnknown   Status = "UNKNOWN"
)

func ParseStatus(v string) Status {
	switch s := Status(strings.ToUpper(strings.TrimSpace(v))); s {
	case StatusScheduled, StatusRunning, StatusEnded, StatusClosed, StatusCancelled, StatusPostponed:
		return s
	case "LIVE", "IN_PROGRESS":
		return StatusRunning
	case "FINISHED", "FINAL":
		return StatusEnded
	case "":
		return StatusScheduled
	default:
		return StatusUnknown
	}
}

// Final reports whether a result is official.
func (s Status) Final() bool {
	return s == StatusEnded || s == StatusClosed
}

func (s Status) Live() bool {
	return s == StatusRunning
}

type Result struct {
	HomeScore  int
	GuestScore int
}

// Game is one fixture. Result is set exactly when the status is final.
type Game struct {
	ID          string
	ScheduledAt time.Time
	HomeTeamID  int64
	GuestTeamID int64
	HomeName    string
	GuestName   string
	Status      Status
	Result      *Result
	Period      int
	GameClock   string
}

// Settle drops scores for non-final games, keeping the result/status identity.
func (g Game) Settle() Game {
	if !g.Status.Final() {
		g.Result = nil
	} else if g.Result == nil {
		g.Status = StatusUnknown
	}
	return g
}

// PlayerLine is one player's running totals in a single game.
type PlayerLine struct {
	PlayerID    string
	Name        string
	ShirtNumber string
	Starter     bool
	Totals      statline.Counters
}

type TeamBox struct {
	TeamID  int64
	Name    string
	Score   int
	Players []PlayerLine
}

// Boxscore is the live or final per-player view of one game.
type Boxscore struct {
	GameID    string
	Status    Status
	Period    int
	GameClock string
	GameTime  time.Time
	Result    *Result
	Home      TeamBox
	Guest     TeamBox
}

// InferStatus fills a missing status from the running score.
func (b Boxscore) InferStatus() Boxscore {
	if b.Status != "" {
		return b
	}
	if b.Home.Score > 0 || b.Guest.Score > 0 {
		b.Status = StatusRunning
	} else {
		b.Status = StatusScheduled
	}
	return b
}

// Merge copies schedule and result details into the boxscore. A final or
// running status from the details wins over the boxscore's own.
func (b Boxscore) Merge(details Game) Boxscore {
	b.GameTime = details.ScheduledAt
	if details.Period > 0 {
		b.Period = details.Period
	}
	if details.GameClock != "" {
		b.GameClock = details.GameClock
	}
	switch {
	case details.Status.Final():
		b.Status = details.Status
	case details.Status.Live() && !b.Status.Final():
		b.Status = details.Status
	case b.Status == "" || b.Status == StatusUnknown:
		b.Status = details.Status
	}
	b = b.InferStatus()
	if details.Result != nil {
		r := *details.Result
		b.Result = &r
	} else if b.Result == nil && b.Status.Live() {
		b.Result = &Result{HomeScore: b.Home.Score, GuestScore: b.Guest.Score}
	}
	if b.Home.TeamID == 0 {
		b.Home.TeamID = details.HomeTeamID
	}
	if b.Guest.TeamID == 0 {
		b.Guest.TeamID = details.GuestTeamID
	}
	if b.Home.Name == "" {
		b.Home.Name = details.HomeName
	}
	if b.Guest.Name == "" {
		b.Guest.Name = details.GuestName
	}
	return b
}
