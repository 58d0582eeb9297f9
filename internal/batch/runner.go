package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"namesake/domain/core"
	"namesake/domain/features"
	"namesake/internal"
	"namesake/internal/extract"
)

// BatchExtractor runs entity feature extraction over a roster with bounded
// parallelism. The core extractor is pure, so entries are independent; output
// order always matches input order regardless of scheduling.
type BatchExtractor struct {
	extractor   *extract.ComprehensiveFeatureExtractor
	concurrency int64
	logger      *internal.Logger
}

// NewBatchExtractor creates a batch extractor with the given worker bound.
// A bound below 1 is raised to 1.
func NewBatchExtractor(concurrency int) *BatchExtractor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchExtractor{
		extractor:   extract.NewComprehensiveFeatureExtractor(),
		concurrency: int64(concurrency),
		logger:      internal.DefaultLogger,
	}
}

// Request bundles one extraction input. Optional fields may be nil.
type Request struct {
	Entity   features.EntityDescriptor
	Opponent *features.EntityDescriptor
	Context  features.GameContext
	Market   *features.MarketData
	History  *features.PerformanceHistory
}

// Run extracts features for every request. Returns early only on context
// cancellation; extraction itself cannot fail.
func (b *BatchExtractor) Run(ctx context.Context, requests []Request) ([]features.ExtractedEntity, error) {
	results := make([]features.ExtractedEntity, len(requests))
	sem := semaphore.NewWeighted(b.concurrency)
	var wg sync.WaitGroup

	for i := range requests {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer sem.Release(1)
			req := requests[idx]
			fv := b.extractor.ExtractAllFeatures(req.Entity, req.Opponent, req.Context, req.Market, req.History)
			results[idx] = features.ExtractedEntity{
				Entity:     req.Entity,
				Features:   fv,
				ComputedAt: core.Now(),
			}
		}(i)
	}

	wg.Wait()
	b.logger.Debug("batch extraction complete: %d entities", len(requests))
	return results, nil
}
