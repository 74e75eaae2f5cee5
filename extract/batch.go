package extract

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchFailure records a catalog whose extraction run failed outright.
type BatchFailure struct {
	CatalogPath string
	Err         error
}

// BatchResult aggregates the outcomes over a set of catalogs. Results
// and failures keep the input catalog order.
type BatchResult struct {
	Results  []*Result
	Failures []BatchFailure
}

// RunBatch extracts sheets from several catalogs concurrently. Runs are
// fully independent (each operates on its own working copy and output
// subdirectory), so the only shared constraint is the external API
// budget, which callers enforce by wrapping the Detector with
// NewLimitedDetector. A failed catalog is recorded and does not stop
// the others; only context cancellation aborts the batch.
func (e *Extractor) RunBatch(ctx context.Context, pdfPaths []string, outputDir string, concurrency int) (*BatchResult, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]*Result, len(pdfPaths))
	errs := make([]error, len(pdfPaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range pdfPaths {
		g.Go(func() error {
			res, err := e.Run(ctx, path, outputDir)
			if err != nil {
				errs[i] = err
				return ctx.Err()
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{}
	for i, path := range pdfPaths {
		if errs[i] != nil {
			batch.Failures = append(batch.Failures, BatchFailure{CatalogPath: path, Err: errs[i]})
			continue
		}
		batch.Results = append(batch.Results, results[i])
	}
	return batch, nil
}
