package player

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/statline"
)

// Missing is rendered wherever a text attribute is absent upstream.
const Missing = "-"

// Player is an athlete. Identity persists across seasons.
type Player struct {
	ID            string
	TeamID        int64
	FirstName     string
	LastName      string
	ShirtNumber   string
	Position      string
	HeightMeters  float64
	BirthDate     time.Time
	Nationalities []string
	PortraitURI   string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, err := strconv.ParseInt(p.ID, 10, 64); err != nil {
		return fmt.Errorf("player id %q is not numeric", p.ID)
	}

	return nil
}

func (p Player) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" || name == Missing+" "+Missing {
		return Missing
	}
	return name
}

// AgeOn returns completed years at the given day, or -1 without a birth date.
func (p Player) AgeOn(day time.Time) int {
	if p.BirthDate.IsZero() {
		return -1
	}
	years := day.Year() - p.BirthDate.Year()
	if day.Month() < p.BirthDate.Month() ||
		(day.Month() == p.BirthDate.Month() && day.Day() < p.BirthDate.Day()) {
		years--
	}
	if years < 0 {
		return -1
	}
	return years
}

// HeightDisplay prints meters with a decimal comma, e.g. "1,95 m".
func (p Player) HeightDisplay() string {
	if p.HeightMeters <= 0 {
		return Missing
	}
	return strings.Replace(fmt.Sprintf("%.2f m", p.HeightMeters), ".", ",", 1)
}

// NumberKey orders shirt numbers numerically; non-numeric numbers sort last.
func (p Player) NumberKey() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.ShirtNumber))
	if err != nil || n < 0 {
		return math.MaxInt32
	}
	return n
}

func (p Player) Nationality() string {
	if len(p.Nationalities) == 0 {
		return Missing
	}
	return p.Nationalities[0]
}

// CanonicalID strips float coercion artifacts: "1234.0" becomes "1234".
func CanonicalID(raw string) string {
	id := strings.TrimSpace(raw)
	if whole, frac, ok := strings.Cut(id, "."); ok && strings.Trim(frac, "0") == "" && whole != "" {
		id = whole
	}
	return id
}

// NormalizeHeight converts centimeter values (anything above 3) to meters.
func NormalizeHeight(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v > 3 {
		return v / 100
	}
	return v
}

// SeasonStats pairs a player with one season of counting totals.
type SeasonStats struct {
	Player   Player
	SeasonID int64
	Totals   statline.Counters
}

func (s SeasonStats) Line() statline.Line {
	return statline.Derive(s.Totals)
}
