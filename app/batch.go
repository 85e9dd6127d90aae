package app

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/semaphore"

	"civitrack/domain/core"
	"civitrack/ports"
)

// BatchResult is the outcome of one official's analysis in a batch run.
type BatchResult struct {
	OfficialID core.OfficialID
	Report     *Report
	Err        error
	StartedAt  core.Timestamp
	Duration   time.Duration
}

// BatchRunner analyzes many officials concurrently under a weighted
// semaphore bound. The analysis itself is CPU-only and deterministic;
// the bound exists so a batch over a large roster doesn't saturate the
// host. The pipeline's ID source must be safe for concurrent use.
type BatchRunner struct {
	pipeline    *Pipeline
	provider    ports.SnapshotProvider
	sem         *semaphore.Weighted
	maxParallel int64
}

// NewBatchRunner creates a runner with the given parallelism bound.
// A bound below 1 is raised to 1.
func NewBatchRunner(pipeline *Pipeline, provider ports.SnapshotProvider, maxParallel int) *BatchRunner {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &BatchRunner{
		pipeline:    pipeline,
		provider:    provider,
		sem:         semaphore.NewWeighted(int64(maxParallel)),
		maxParallel: int64(maxParallel),
	}
}

// Run analyzes every official the provider lists. Per-official load or
// analysis failures land in that official's result; only listing
// failure or context cancellation aborts the batch. Results preserve
// listing order.
func (r *BatchRunner) Run(ctx context.Context) ([]BatchResult, error) {
	officials, err := r.provider.ListOfficials(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(officials))
	for i, id := range officials {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(i int, id core.OfficialID) {
			defer r.sem.Release(1)
			results[i] = r.analyzeOne(ctx, id)
		}(i, id)
	}

	// Draining the full weight waits for every in-flight analysis.
	if err := r.sem.Acquire(ctx, r.maxParallel); err != nil {
		return nil, err
	}
	r.sem.Release(r.maxParallel)

	return results, nil
}

func (r *BatchRunner) analyzeOne(ctx context.Context, id core.OfficialID) BatchResult {
	start := core.Now()

	snapshots, err := r.provider.Load(ctx, id)
	if err != nil {
		log.Printf("batch: load failed for official %s: %v", id, err)
		return BatchResult{OfficialID: id, Err: err, StartedAt: start, Duration: time.Since(start.Time())}
	}

	report := r.pipeline.Analyze(snapshots)
	return BatchResult{OfficialID: id, Report: &report, StartedAt: start, Duration: time.Since(start.Time())}
}
