package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

// DocumentVersion is written into every export.
const DocumentVersion = 1

const maxLineLength = 500

type annotationDocument struct {
	Version    int                     `json:"version"`
	ExportID   string                  `json:"exportId,omitempty"`
	ExportedAt string                  `json:"exportedAt,omitempty"`
	Notes      map[string]noteDocument `json:"notes"`
	Colors     map[string]string       `json:"colors"`
	KeyFacts   *keyFactsDocument       `json:"keyFacts"`
	Matchup    *matchupDocument        `json:"matchup"`
}

type noteDocument struct {
	Left  []string `json:"left" validate:"max=4,dive,max=500"`
	Right []string `json:"right" validate:"max=4,dive,max=500"`
}

type keyFactsDocument struct {
	Offense *[]annotation.KeyFact `json:"offense"`
	Defense *[]annotation.KeyFact `json:"defense"`
	AboutUs *[]annotation.KeyFact `json:"aboutUs"`
}

type matchupDocument struct {
	Home  string `json:"home" validate:"max=200"`
	Guest string `json:"guest" validate:"max=200"`
}

// AnnotationRepository keeps annotations in memory. One mutex serializes all
// writes, including whole-document imports.
type AnnotationRepository struct {
	mu       sync.RWMutex
	players  map[string]annotation.Annotation
	keyFacts annotation.KeyFacts
	matchup  annotation.Matchup

	validate *validator.Validate
	now      func() time.Time
	logger   *logging.Logger
}

func NewAnnotationRepository(logger *logging.Logger) *AnnotationRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnnotationRepository{
		players:  make(map[string]annotation.Annotation),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		logger:   logger.Named("annotations"),
	}
}

func (r *AnnotationRepository) Get(_ context.Context, playerID string) annotation.Annotation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.players[player.CanonicalID(playerID)]
}

func (r *AnnotationRepository) Set(ctx context.Context, playerID string, field annotation.Field, value string) error {
	id, err := r.playerKey(playerID)
	if err != nil {
		return err
	}
	if field.Index < 0 || field.Index >= annotation.Lines {
		return fmt.Errorf("note line %d out of range", field.Index)
	}
	if err := r.validate.VarCtx(ctx, value, fmt.Sprintf("max=%d", maxLineLength)); err != nil {
		return fmt.Errorf("note line: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(id, r.players[id].With(field, value))
	return nil
}

func (r *AnnotationRepository) SetColor(ctx context.Context, playerID, hex string) error {
	id, err := r.playerKey(playerID)
	if err != nil {
		return err
	}
	hex, err = r.color(ctx, hex)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.players[id]
	current.Color = hex
	r.store(id, current)
	return nil
}

func (r *AnnotationRepository) Put(ctx context.Context, playerID string, value annotation.Annotation) error {
	id, err := r.playerKey(playerID)
	if err != nil {
		return err
	}
	value.Color, err = r.color(ctx, value.Color)
	if err != nil {
		return err
	}
	for _, line := range append(value.Notes[:], value.Emphasis[:]...) {
		if err := r.validate.VarCtx(ctx, line, fmt.Sprintf("max=%d", maxLineLength)); err != nil {
			return fmt.Errorf("note line: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(id, value)
	return nil
}

func (r *AnnotationRepository) KeyFacts(_ context.Context) annotation.KeyFacts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.keyFacts.Clone()
}

func (r *AnnotationRepository) SetKeyFacts(ctx context.Context, table annotation.KeyFactTable, rows []annotation.KeyFact) error {
	if _, err := annotation.ParseKeyFactTable(string(table)); err != nil {
		return err
	}
	for i := range rows {
		if err := r.validate.StructCtx(ctx, rows[i]); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keyFacts = r.keyFacts.With(table, rows)
	return nil
}

func (r *AnnotationRepository) Matchup(_ context.Context) annotation.Matchup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.matchup
}

func (r *AnnotationRepository) SetMatchup(_ context.Context, m annotation.Matchup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matchup = annotation.Matchup{Home: strings.TrimSpace(m.Home), Guest: strings.TrimSpace(m.Guest)}
	return nil
}

func (r *AnnotationRepository) Snapshot(_ context.Context) annotation.State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make(map[string]annotation.Annotation, len(r.players))
	for id, a := range r.players {
		players[id] = a
	}
	return annotation.State{
		Players:  players,
		KeyFacts: r.keyFacts.Clone(),
		Matchup:  r.matchup,
	}
}

// ExportAll serializes the whole set. Map keys are written sorted.
func (r *AnnotationRepository) ExportAll(ctx context.Context) ([]byte, error) {
	state := r.Snapshot(ctx)

	doc := annotationDocument{
		Version:    DocumentVersion,
		ExportID:   uuid.NewString(),
		ExportedAt: r.now().UTC().Format(time.RFC3339),
		Notes:      make(map[string]noteDocument, len(state.Players)),
		Colors:     make(map[string]string, len(state.Players)),
		KeyFacts: &keyFactsDocument{
			Offense: rowsOrEmpty(state.KeyFacts.Offense),
			Defense: rowsOrEmpty(state.KeyFacts.Defense),
			AboutUs: rowsOrEmpty(state.KeyFacts.AboutUs),
		},
		Matchup: &matchupDocument{Home: state.Matchup.Home, Guest: state.Matchup.Guest},
	}
	for id, a := range state.Players {
		if a.Notes != [annotation.Lines]string{} || a.Emphasis != [annotation.Lines]string{} {
			doc.Notes[id] = noteDocument{Left: a.Notes[:], Right: a.Emphasis[:]}
		}
		if a.Color != "" {
			doc.Colors[id] = a.Color
		}
	}

	out, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode annotations: %w", err)
	}
	return out, nil
}

// importPlan is a parsed and validated document, ready to apply.
type importPlan struct {
	notes    map[string]noteDocument
	colors   map[string]string
	keyFacts map[annotation.KeyFactTable][]annotation.KeyFact
	matchup  *annotation.Matchup
}

// ImportAll loads an exported document. Absent sections leave state alone;
// any malformed record rejects the whole document and nothing changes.
func (r *AnnotationRepository) ImportAll(ctx context.Context, data []byte) annotation.ImportResult {
	plan, err := r.prepareImport(ctx, data)
	if err != nil {
		r.logger.WarnContext(ctx, "annotation import rejected", "error", err)
		return annotation.ImportResult{OK: false, Message: err.Error()}
	}

	r.mu.Lock()
	count := r.applyLocked(plan)
	r.mu.Unlock()

	return annotation.ImportResult{OK: true, Message: fmt.Sprintf("imported annotations for %d players", count), Players: count}
}

func (r *AnnotationRepository) prepareImport(ctx context.Context, data []byte) (importPlan, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return importPlan{}, fmt.Errorf("import file is empty")
	}

	var doc annotationDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return importPlan{}, fmt.Errorf("import file is not a valid annotation document: %w", err)
	}
	if doc.Version > DocumentVersion {
		return importPlan{}, fmt.Errorf("document version %d is newer than supported version %d", doc.Version, DocumentVersion)
	}

	plan := importPlan{
		notes:    make(map[string]noteDocument, len(doc.Notes)),
		colors:   make(map[string]string, len(doc.Colors)),
		keyFacts: make(map[annotation.KeyFactTable][]annotation.KeyFact, 3),
	}
	for rawID, n := range doc.Notes {
		id, err := r.playerKey(rawID)
		if err != nil {
			return importPlan{}, fmt.Errorf("notes: %w", err)
		}
		if err := r.validate.StructCtx(ctx, n); err != nil {
			return importPlan{}, fmt.Errorf("notes for player %s: %w", id, err)
		}
		plan.notes[id] = n
	}
	for rawID, hex := range doc.Colors {
		id, err := r.playerKey(rawID)
		if err != nil {
			return importPlan{}, fmt.Errorf("colors: %w", err)
		}
		normalized, err := r.color(ctx, hex)
		if err != nil {
			return importPlan{}, fmt.Errorf("color for player %s: %w", id, err)
		}
		plan.colors[id] = normalized
	}
	if doc.KeyFacts != nil {
		for table, rows := range map[annotation.KeyFactTable]*[]annotation.KeyFact{
			annotation.TableOffense: doc.KeyFacts.Offense,
			annotation.TableDefense: doc.KeyFacts.Defense,
			annotation.TableAboutUs: doc.KeyFacts.AboutUs,
		} {
			if rows == nil {
				continue
			}
			for i := range *rows {
				if err := r.validate.StructCtx(ctx, (*rows)[i]); err != nil {
					return importPlan{}, fmt.Errorf("key facts row %d: %w", i, err)
				}
			}
			plan.keyFacts[table] = *rows
		}
	}
	if doc.Matchup != nil {
		if err := r.validate.StructCtx(ctx, doc.Matchup); err != nil {
			return importPlan{}, fmt.Errorf("matchup: %w", err)
		}
		plan.matchup = &annotation.Matchup{Home: strings.TrimSpace(doc.Matchup.Home), Guest: strings.TrimSpace(doc.Matchup.Guest)}
	}

	return plan, nil
}

// applyLocked merges a validated plan into the live state and returns the
// number of players it touched. Callers hold the write lock.
func (r *AnnotationRepository) applyLocked(plan importPlan) int {
	touched := make(map[string]struct{}, len(plan.notes)+len(plan.colors))
	for id, n := range plan.notes {
		a := r.players[id]
		a.Notes = toLines(n.Left)
		a.Emphasis = toLines(n.Right)
		r.store(id, a)
		touched[id] = struct{}{}
	}
	for id, hex := range plan.colors {
		a := r.players[id]
		a.Color = hex
		r.store(id, a)
		touched[id] = struct{}{}
	}
	for table, rows := range plan.keyFacts {
		r.keyFacts = r.keyFacts.With(table, rows)
	}
	if plan.matchup != nil {
		r.matchup = *plan.matchup
	}
	return len(touched)
}

// store must be called with the write lock held. Empty annotations are
// dropped so snapshots stay canonical.
func (r *AnnotationRepository) store(id string, a annotation.Annotation) {
	if a.IsZero() {
		delete(r.players, id)
		return
	}
	r.players[id] = a
}

func (r *AnnotationRepository) playerKey(raw string) (string, error) {
	id := player.CanonicalID(raw)
	if err := r.validate.Var(id, "required,numeric"); err != nil {
		return "", fmt.Errorf("player id %q is not numeric", raw)
	}
	return id, nil
}

// color accepts #rgb or #rrggbb and lowercases it. Empty resets to default.
func (r *AnnotationRepository) color(ctx context.Context, hex string) (string, error) {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if hex == "" {
		return "", nil
	}
	if err := r.validate.VarCtx(ctx, hex, "hexcolor"); err != nil {
		return "", fmt.Errorf("color %q is not a hex color", hex)
	}
	return hex, nil
}

func toLines(in []string) [annotation.Lines]string {
	var out [annotation.Lines]string
	copy(out[:], in)
	return out
}

func rowsOrEmpty(rows []annotation.KeyFact) *[]annotation.KeyFact {
	out := append([]annotation.KeyFact{}, rows...)
	return &out
}
