package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

const defaultBatchWorkers = 4

// BatchItem is the outcome of one fixture in a batch run.
type BatchItem struct {
	Index      int
	Request    ReportRequest
	Filename   string
	Notices    int
	Err        error
	DurationMs int64
}

type BatchResult struct {
	Items     []BatchItem
	Succeeded int
	Failed    int
}

// ArtifactSink persists one rendered report. It is called from worker
// goroutines and must be safe for concurrent use.
type ArtifactSink func(ctx context.Context, artifact ReportArtifact) error

// BatchReportService renders many fixtures on a bounded worker pool. Every
// worker shares the upstream cache, the image cache and the annotation store.
type BatchReportService struct {
	reports *ReportService
	workers int
	logger  *logging.Logger
}

func NewBatchReportService(reports *ReportService, workers int, logger *logging.Logger) *BatchReportService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = defaultBatchWorkers
	}
	return &BatchReportService{reports: reports, workers: workers, logger: logger.Named("batch")}
}

func (s *BatchReportService) RenderAll(ctx context.Context, requests []ReportRequest, sink ArtifactSink) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchReportService.RenderAll")
	defer span.End()

	if len(requests) == 0 {
		return BatchResult{}, fmt.Errorf("%w: at least one fixture is required", ErrInvalidInput)
	}

	workerCount := min(s.workers, len(requests))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan BatchItem, len(requests))
	var workers sync.WaitGroup
	for i, req := range requests {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- s.renderOne(ctx, i, req, sink)
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit fixture to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	var out BatchResult
	for item := range results {
		if item.Err != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
		out.Items = append(out.Items, item)
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].Index < out.Items[j].Index })

	s.logger.InfoContext(ctx, "batch finished", "fixtures", len(requests), "succeeded", out.Succeeded, "failed", out.Failed)
	return out, nil
}

func (s *BatchReportService) renderOne(ctx context.Context, index int, req ReportRequest, sink ArtifactSink) BatchItem {
	start := time.Now()
	item := BatchItem{Index: index, Request: req}

	artifact, err := s.reports.Render(ctx, req)
	if err == nil {
		item.Filename = artifact.Filename
		item.Notices = len(artifact.Report.Notices)
		err = sink(ctx, artifact)
	}
	item.Err = err
	item.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		s.logger.WarnContext(ctx, "fixture failed", "home_team_id", req.HomeTeamID, "guest_team_id", req.GuestTeamID, "error", err)
	}
	return item
}
