package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/domain/player"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

type AnnotationService struct {
	store  annotation.Store
	now    func() time.Time
	logger *logging.Logger
}

func NewAnnotationService(store annotation.Store, logger *logging.Logger) *AnnotationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnnotationService{store: store, now: time.Now, logger: logger.Named("annotations")}
}

func (s *AnnotationService) Get(ctx context.Context, playerID string) annotation.Annotation {
	return s.store.Get(ctx, player.CanonicalID(playerID))
}

func (s *AnnotationService) State(ctx context.Context) annotation.State {
	return s.store.Snapshot(ctx)
}

// SetNote writes one line; field is "notes.N" or "emphasis.N".
func (s *AnnotationService) SetNote(ctx context.Context, playerID, field, value string) error {
	f, err := annotation.ParseField(field)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.store.Set(ctx, playerID, f, value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *AnnotationService) SetColor(ctx context.Context, playerID, hex string) error {
	if err := s.store.SetColor(ctx, playerID, hex); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Put replaces every line and the color of one player.
func (s *AnnotationService) Put(ctx context.Context, playerID string, value annotation.Annotation) error {
	if err := s.store.Put(ctx, playerID, value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *AnnotationService) SetKeyFacts(ctx context.Context, table string, rows []annotation.KeyFact) error {
	t, err := annotation.ParseKeyFactTable(table)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.store.SetKeyFacts(ctx, t, rows); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *AnnotationService) SetMatchup(ctx context.Context, m annotation.Matchup) error {
	return s.store.SetMatchup(ctx, m)
}

// Export returns the whole annotation set and a download file name.
func (s *AnnotationService) Export(ctx context.Context) ([]byte, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnotationService.Export")
	defer span.End()

	data, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("export annotations: %w", err)
	}
	return data, fmt.Sprintf("scouting_annotations_%s.json", s.now().UTC().Format("20060102_150405")), nil
}

// Import loads an exported document. A rejected document leaves the state
// untouched and yields ErrImportRejected alongside the result.
func (s *AnnotationService) Import(ctx context.Context, data []byte) (annotation.ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnotationService.Import")
	defer span.End()

	result := s.store.ImportAll(ctx, data)
	if !result.OK {
		return result, fmt.Errorf("%w: %s", ErrImportRejected, result.Message)
	}
	s.logger.InfoContext(ctx, "annotations imported", "players", result.Players)
	return result, nil
}

// ImportFile imports path when it exists. A missing file is not an error.
func (s *AnnotationService) ImportFile(ctx context.Context, path string) (annotation.ImportResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return annotation.ImportResult{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.InfoContext(ctx, "annotations file not found, starting empty", "path", path)
		return annotation.ImportResult{}, nil
	}
	if err != nil {
		return annotation.ImportResult{}, fmt.Errorf("read annotations file: %w", err)
	}
	return s.Import(ctx, data)
}
