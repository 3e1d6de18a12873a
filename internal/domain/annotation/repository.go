package annotation

import "context"

// Store holds annotations for the process. Writes are serialized; Import is
// all or nothing.
type Store interface {
	Get(ctx context.Context, playerID string) Annotation
	Set(ctx context.Context, playerID string, field Field, value string) error
	SetColor(ctx context.Context, playerID, hex string) error
	Put(ctx context.Context, playerID string, value Annotation) error
	KeyFacts(ctx context.Context) KeyFacts
	SetKeyFacts(ctx context.Context, table KeyFactTable, rows []KeyFact) error
	Matchup(ctx context.Context) Matchup
	SetMatchup(ctx context.Context, m Matchup) error
	Snapshot(ctx context.Context) State
	ExportAll(ctx context.Context) ([]byte, error)
	ImportAll(ctx context.Context, data []byte) ImportResult
}
