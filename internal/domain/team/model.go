package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// Division is the regional grouping that decides which origin serves a team.
type Division string

const (
	DivisionNorth   Division = "North"
	DivisionSouth   Division = "South"
	DivisionUnknown Division = ""
)

func ParseDivision(v string) (Division, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "north", "nord", "n":
		return DivisionNorth, nil
	case "south", "süd", "sued", "s":
		return DivisionSouth, nil
	default:
		return DivisionUnknown, fmt.Errorf("unknown division %q", v)
	}
}

func (d Division) Valid() bool {
	return d == DivisionNorth || d == DivisionSouth
}

// Team is a club entered in one season.
type Team struct {
	ID       int64
	Name     string
	Division Division
	LogoURI  string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if !t.Division.Valid() {
		return fmt.Errorf("team %d has invalid division %q", t.ID, t.Division)
	}

	return nil
}

// SeasonStats holds a team's counting totals for one season.
type SeasonStats struct {
	TeamID   int64
	SeasonID int64
	Totals   statline.Counters
}

func (s SeasonStats) Line() statline.Line {
	return statline.Derive(s.Totals)
}
