package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

//go:embed teams.yaml
var embeddedTeams []byte

type registryFile struct {
	Teams []registryEntry `yaml:"teams"`
}

type registryEntry struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Division string `yaml:"division"`
}

// Registry is the read-only map of known teams to name and division.
type Registry struct {
	byID  map[int64]team.Team
	order []int64
}

// LoadRegistry reads path, or the compiled-in table when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return ParseRegistry(embeddedTeams)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseRegistry(raw)
}

// DefaultRegistry returns the compiled-in table.
func DefaultRegistry() *Registry {
	r, err := ParseRegistry(embeddedTeams)
	if err != nil {
		panic(fmt.Sprintf("embedded team registry is invalid: %v", err))
	}
	return r
}

func ParseRegistry(raw []byte) (*Registry, error) {
	var doc registryFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode team registry: %w", err)
	}
	if len(doc.Teams) == 0 {
		return nil, fmt.Errorf("team registry has no teams")
	}

	r := &Registry{byID: make(map[int64]team.Team, len(doc.Teams))}
	for _, entry := range doc.Teams {
		division, err := team.ParseDivision(entry.Division)
		if err != nil {
			return nil, fmt.Errorf("team %d: %w", entry.ID, err)
		}
		t := team.Team{ID: entry.ID, Name: strings.TrimSpace(entry.Name), Division: division}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("team %d listed twice", t.ID)
		}
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}

	sort.SliceStable(r.order, func(i, j int) bool {
		a, b := r.byID[r.order[i]], r.byID[r.order[j]]
		if a.Division != b.Division {
			return a.Division < b.Division
		}
		return a.Name < b.Name
	})

	return r, nil
}

func (r *Registry) Lookup(teamID int64) (team.Team, bool) {
	if r == nil {
		return team.Team{}, false
	}
	t, ok := r.byID[teamID]
	return t, ok
}

// Division returns the team's division, or DivisionUnknown for unlisted teams.
func (r *Registry) Division(teamID int64) team.Division {
	t, ok := r.Lookup(teamID)
	if !ok {
		return team.DivisionUnknown
	}
	return t.Division
}

func (r *Registry) Name(teamID int64) string {
	t, ok := r.Lookup(teamID)
	if !ok {
		return ""
	}
	return t.Name
}

// All lists teams by division, then name.
func (r *Registry) All() []team.Team {
	if r == nil {
		return nil
	}
	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) InDivision(d team.Division) []team.Team {
	out := make([]team.Team, 0)
	for _, t := range r.All() {
		if t.Division == d {
			out = append(out, t)
		}
	}
	return out
}
