package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoopscout/internal/domain/annotation"
	"github.com/riskibarqy/hoopscout/internal/infrastructure/repository/memory"
)

func TestAnnotationService_WritesAndValidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewAnnotationService(memory.NewAnnotationRepository(nil), nil)

	require.NoError(t, svc.SetNote(ctx, "42", "notes.1", "Left hand only"))
	require.NoError(t, svc.SetNote(ctx, "42", "emphasis.0", "Deny the ball"))
	require.NoError(t, svc.SetColor(ctx, "42", "#123456"))

	got := svc.Get(ctx, "42.0")
	assert.Equal(t, "Left hand only", got.Notes[1])
	assert.Equal(t, "Deny the ball", got.Emphasis[0])

	assert.True(t, errors.Is(svc.SetNote(ctx, "42", "notes.9", "x"), ErrInvalidInput))
	assert.True(t, errors.Is(svc.SetColor(ctx, "42", "green"), ErrInvalidInput))
	assert.True(t, errors.Is(svc.SetKeyFacts(ctx, "bench", nil), ErrInvalidInput))
}

func TestAnnotationService_ExportThenRejectedImportKeepsState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewAnnotationService(memory.NewAnnotationRepository(nil), nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, svc.SetNote(ctx, "42", "notes.0", "keep"))
	require.NoError(t, svc.SetKeyFacts(ctx, "offense", []annotation.KeyFact{{Title: "Press", Detail: "Full court"}}))

	data, filename, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "scouting_annotations_20260301_120000.json", filename)
	before := svc.State(ctx)

	result, err := svc.Import(ctx, []byte(`{"notes":{"42":{"left":["changed"],"right":[]},"x1":{"left":[],"right":[]}}}`))
	assert.True(t, errors.Is(err, ErrImportRejected))
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, before, svc.State(ctx))

	fresh := NewAnnotationService(memory.NewAnnotationRepository(nil), nil)
	result, err = fresh.Import(ctx, data)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, before, fresh.State(ctx))
}

func TestAnnotationService_ImportFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewAnnotationService(memory.NewAnnotationRepository(nil), nil)

	result, err := svc.ImportFile(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Zero(t, result)

	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"colors":{"7":"#fff"}}`), 0o600))
	result, err = svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Players)
	assert.Equal(t, "#fff", svc.Get(ctx, "7").Color)
}
