package annotation

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines is the number of note rows per column on a player card.
const Lines = 4

// DefaultColor is the neutral card header used until a color is tagged.
const DefaultColor = "#808080"

// Annotation is the user's free text and color tag for one player.
type Annotation struct {
	Notes    [Lines]string
	Emphasis [Lines]string
	Color    string
}

func (a Annotation) HeaderColor() string {
	if strings.TrimSpace(a.Color) == "" {
		return DefaultColor
	}
	return a.Color
}

func (a Annotation) IsZero() bool {
	return a == Annotation{}
}

// Column selects the left (coach notes) or right (reminders) side of a card.
type Column string

const (
	ColumnNotes    Column = "notes"
	ColumnEmphasis Column = "emphasis"
)

// Field addresses a single note line.
type Field struct {
	Column Column
	Index  int
}

// ParseField accepts "notes.0".."notes.3" and "emphasis.0".."emphasis.3".
func ParseField(v string) (Field, error) {
	col, idx, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), ".")
	if !ok {
		return Field{}, fmt.Errorf("field %q must look like notes.N or emphasis.N", v)
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 || n >= Lines {
		return Field{}, fmt.Errorf("field %q line must be between 0 and %d", v, Lines-1)
	}
	switch Column(col) {
	case ColumnNotes, ColumnEmphasis:
		return Field{Column: Column(col), Index: n}, nil
	default:
		return Field{}, fmt.Errorf("field %q has unknown column %q", v, col)
	}
}

// With returns a copy with one line replaced.
func (a Annotation) With(field Field, value string) Annotation {
	switch field.Column {
	case ColumnNotes:
		a.Notes[field.Index] = value
	case ColumnEmphasis:
		a.Emphasis[field.Index] = value
	}
	return a
}

// KeyFactTable names one of the free-form tables at the end of a report.
type KeyFactTable string

const (
	TableOffense KeyFactTable = "offense"
	TableDefense KeyFactTable = "defense"
	TableAboutUs KeyFactTable = "aboutUs"
)

var KeyFactTables = []KeyFactTable{TableOffense, TableDefense, TableAboutUs}

func ParseKeyFactTable(v string) (KeyFactTable, error) {
	for _, table := range KeyFactTables {
		if strings.EqualFold(strings.TrimSpace(v), string(table)) {
			return table, nil
		}
	}
	return "", fmt.Errorf("unknown key facts table %q", v)
}

func (t KeyFactTable) Title() string {
	switch t {
	case TableOffense:
		return "Offense"
	case TableDefense:
		return "Defense"
	case TableAboutUs:
		return "About Us"
	default:
		return string(t)
	}
}

type KeyFact struct {
	Title  string `json:"title" validate:"max=200"`
	Detail string `json:"detail" validate:"max=2000"`
}

type KeyFacts struct {
	Offense []KeyFact
	Defense []KeyFact
	AboutUs []KeyFact
}

func (k KeyFacts) Rows(table KeyFactTable) []KeyFact {
	switch table {
	case TableOffense:
		return k.Offense
	case TableDefense:
		return k.Defense
	case TableAboutUs:
		return k.AboutUs
	default:
		return nil
	}
}

func (k KeyFacts) With(table KeyFactTable, rows []KeyFact) KeyFacts {
	rows = append([]KeyFact(nil), rows...)
	switch table {
	case TableOffense:
		k.Offense = rows
	case TableDefense:
		k.Defense = rows
	case TableAboutUs:
		k.AboutUs = rows
	}
	return k
}

func (k KeyFacts) Clone() KeyFacts {
	return KeyFacts{
		Offense: append([]KeyFact(nil), k.Offense...),
		Defense: append([]KeyFact(nil), k.Defense...),
		AboutUs: append([]KeyFact(nil), k.AboutUs...),
	}
}

// Matchup remembers the last rendered fixture for human context in exports.
type Matchup struct {
	Home  string
	Guest string
}

// State is the full annotation set.
type State struct {
	Players  map[string]Annotation
	KeyFacts KeyFacts
	Matchup  Matchup
}

// ImportResult reports the outcome of loading an exported document.
type ImportResult struct {
	OK      bool
	Message string
	Players int
}
